package ds

// Таблица позиций меню события.
// Уникальность по (событие, тип продукта, продукт): повторное добавление
// того же продукта увеличивает количество, а не создает новую строку.
type MenuLine struct {
	ID            uint    `gorm:"primaryKey"`
	EventID       uint    `gorm:"not null;index;uniqueIndex:idx_event_type_product"`
	ProductTypeID uint    `gorm:"not null;uniqueIndex:idx_event_type_product"`
	ProductID     uint    `gorm:"not null;uniqueIndex:idx_event_type_product"`
	Quantity      int     `gorm:"type:int;not null"`
	UnitPrice     float64 `gorm:"type:decimal(10,2);not null"` // копируется из продукта при создании
	LineTotal     float64 `gorm:"type:decimal(12,2);not null"` // UnitPrice * Quantity

	Event       Event       `gorm:"foreignKey:EventID"`
	ProductType ProductType `gorm:"foreignKey:ProductTypeID"`
	Product     Product     `gorm:"foreignKey:ProductID"`
}
