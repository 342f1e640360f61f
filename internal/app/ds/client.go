package ds

import "time"

// Таблица клиентов компании
type Client struct {
	ID         uint       `gorm:"primaryKey"`
	Name       string     `gorm:"type:varchar(100);not null"`
	Surname    string     `gorm:"type:varchar(100);not null"`
	DocType    string     `gorm:"type:varchar(10);not null"` // DNI, CUIL, PASAPORTE
	DocNumber  string     `gorm:"type:varchar(20);unique;not null"`
	Email      string     `gorm:"type:varchar(100);not null"`
	Address    string     `gorm:"type:varchar(200)"`
	ProvinceID *uint      `gorm:"index"`
	BarrioID   *uint      `gorm:"index"`
	BirthDate  *time.Time `gorm:"type:date"`
	CreatedAt  time.Time  `gorm:"not null"`
	UserID     *uint      `gorm:"uniqueIndex"` // привязанная учетная запись (опционально)

	Province *Province `gorm:"foreignKey:ProvinceID"`
	Barrio   *Barrio   `gorm:"foreignKey:BarrioID"`
	User     *User     `gorm:"foreignKey:UserID"`
}

// Типы документов клиента
const (
	DocTypeDNI      = "DNI"
	DocTypeCUIL     = "CUIL"
	DocTypePassport = "PASAPORTE"
)

// Справочник провинций
type Province struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"type:varchar(100);unique;not null"`
	Code   string `gorm:"type:varchar(10);unique;not null"`
	Active bool   `gorm:"type:boolean;default:true;not null"`
}

// Справочник районов (вместо разбора адреса строкой)
type Barrio struct {
	ID         uint   `gorm:"primaryKey"`
	ProvinceID uint   `gorm:"not null;index"`
	Name       string `gorm:"type:varchar(100);not null"`
	Active     bool   `gorm:"type:boolean;default:true;not null"`

	Province Province `gorm:"foreignKey:ProvinceID"`
}
