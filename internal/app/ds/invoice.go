package ds

import "time"

// Таблица компробанте (финансовый документ события)
type Invoice struct {
	ID             uint      `gorm:"primaryKey"`
	ClientID       uint      `gorm:"not null;index"`
	OrderDate      time.Time `gorm:"type:date;not null"`
	TotalProducts  float64   `gorm:"type:decimal(12,2);default:0"` // сумма позиций меню
	TotalService   float64   `gorm:"type:decimal(12,2);default:0"` // TotalProducts * ServiceMargin
	PricePerPerson float64   `gorm:"type:decimal(10,2);default:0"` // TotalService / Headcount
	ValidUntil     time.Time `gorm:"type:date;not null"`           // OrderDate + InvoiceValidityDays

	Client Client `gorm:"foreignKey:ClientID"`
}
