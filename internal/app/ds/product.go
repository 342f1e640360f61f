package ds

// Справочник типов продуктов (напитки, закуски и т.д.)
type ProductType struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"type:varchar(100);unique;not null"`
}

// Таблица продуктов каталога
type Product struct {
	ID            uint    `gorm:"primaryKey"`
	ProductTypeID uint    `gorm:"not null;index"`
	Description   string  `gorm:"type:varchar(200);not null"`
	Price         float64 `gorm:"type:decimal(10,2);not null"`
	Available     bool    `gorm:"type:boolean;default:true;not null"`
	IsDeleted     bool    `gorm:"type:boolean;default:false;not null"` // логическое удаление
	ImageURL      *string `gorm:"type:varchar(255)"`                   // Nullable

	ProductType ProductType `gorm:"foreignKey:ProductTypeID"`
}
