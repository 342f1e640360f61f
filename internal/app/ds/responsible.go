package ds

// Таблица ответственных за события
type Responsible struct {
	ID       uint   `gorm:"primaryKey"`
	FullName string `gorm:"type:varchar(200);not null"`
	Phone    string `gorm:"type:varchar(20)"`
	Email    string `gorm:"type:varchar(100)"`
	UserID   *uint  `gorm:"uniqueIndex"` // привязанная учетная запись (опционально)

	User *User `gorm:"foreignKey:UserID"`
}
