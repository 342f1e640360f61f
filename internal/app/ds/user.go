package ds

import "time"

// Таблица пользователей (учетные записи)
type User struct {
	ID          uint   `gorm:"primaryKey"`
	Login       string `gorm:"type:varchar(50);unique;not null"`
	Password    string `gorm:"type:varchar(255);not null"`
	Email       string `gorm:"type:varchar(100)"`
	FullName    string `gorm:"type:varchar(100)"`
	IsSuperuser bool   `gorm:"type:boolean;default:false;not null"` // fallback если профиля нет
}

// Профиль пользователя: максимум один на учетную запись
type Profile struct {
	ID          uint       `gorm:"primaryKey"`
	UserID      uint       `gorm:"not null;uniqueIndex"`
	ProfileType string     `gorm:"type:varchar(20);not null;default:'EMPLEADO'"` // ADMIN, EMPLEADO, RESPONSABLE, CLIENTE
	Status      string     `gorm:"type:varchar(20);not null;default:'ACTIVO'"`   // ACTIVO, INACTIVO, SUSPENDIDO
	Phone       string     `gorm:"type:varchar(20)"`
	BirthDate   *time.Time `gorm:"type:date"`
	Address     string     `gorm:"type:varchar(200)"`
	Notes       string     `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null"`

	User User `gorm:"foreignKey:UserID"`
}

// Статусы профиля
const (
	ProfileStatusActive    = "ACTIVO"
	ProfileStatusInactive  = "INACTIVO"
	ProfileStatusSuspended = "SUSPENDIDO"
)
