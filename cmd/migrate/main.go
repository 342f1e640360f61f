package main

import (
	"crypto/sha1"
	"encoding/hex"
	"log"
	"os"

	"catering/internal/app/ds"
	"catering/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	// Получение DSN строки подключения
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	// Подключение к базе данных
	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Миграция всех моделей
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Profile{},
		&ds.Province{},
		&ds.Barrio{},
		&ds.Client{},
		&ds.Responsible{},
		&ds.ProductType{},
		&ds.Product{},
		&ds.Invoice{},
		&ds.Event{},
		&ds.MenuLine{},
		&ds.StaffMember{},
		&ds.StaffService{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	if err := seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Database seed completed successfully")
}

// seed заполняет справочники и создает суперпользователя при пустой базе
func seed(db *gorm.DB) error {
	var count int64

	db.Model(&ds.Province{}).Count(&count)
	if count == 0 {
		provinces := []ds.Province{
			{Name: "Buenos Aires", Code: "BA", Active: true},
			{Name: "Córdoba", Code: "CB", Active: true},
			{Name: "Santa Fe", Code: "SF", Active: true},
			{Name: "Mendoza", Code: "MZ", Active: true},
		}
		if err := db.Create(&provinces).Error; err != nil {
			return err
		}

		barrios := []ds.Barrio{
			{ProvinceID: provinces[0].ID, Name: "Palermo", Active: true},
			{ProvinceID: provinces[0].ID, Name: "Recoleta", Active: true},
			{ProvinceID: provinces[0].ID, Name: "La Plata Centro", Active: true},
			{ProvinceID: provinces[1].ID, Name: "Nueva Córdoba", Active: true},
			{ProvinceID: provinces[2].ID, Name: "Rosario Centro", Active: true},
		}
		if err := db.Create(&barrios).Error; err != nil {
			return err
		}
	}

	db.Model(&ds.ProductType{}).Count(&count)
	if count == 0 {
		types := []ds.ProductType{
			{Description: "Entrada"},
			{Description: "Plato principal"},
			{Description: "Postre"},
			{Description: "Bebida"},
		}
		if err := db.Create(&types).Error; err != nil {
			return err
		}
	}

	// Суперпользователь создается только если задан пароль
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword != "" {
		db.Model(&ds.User{}).Where("login = ?", "admin").Count(&count)
		if count == 0 {
			hash := sha1.New()
			hash.Write([]byte(adminPassword))
			admin := ds.User{
				Login:       "admin",
				Password:    hex.EncodeToString(hash.Sum(nil)),
				FullName:    "Administrador",
				IsSuperuser: true,
			}
			if err := db.Create(&admin).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
