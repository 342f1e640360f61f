package ds

import "time"

// Бизнес-константы предметной области
const (
	ServiceMargin       = 1.3  // наценка сервиса на сумму продуктов
	DepositRate         = 0.30 // доля предоплаты (сеньи) от стоимости сервиса
	DayCapacity         = 10   // максимум событий на одну дату
	InvoiceValidityDays = 10   // срок действия компробанте от даты создания
)

// Таблица событий (бронирований)
type Event struct {
	ID            uint      `gorm:"primaryKey"`
	ClientID      uint      `gorm:"not null;index"`
	ResponsibleID uint      `gorm:"not null;index"`
	InvoiceID     uint      `gorm:"not null;uniqueIndex"`
	EventType     string    `gorm:"type:varchar(20);not null"` // CASAMIENTO, CUMPLEANOS, EVENTO_COMERCIAL, OTRO
	Date          time.Time `gorm:"type:date;not null;index"`
	Time          string    `gorm:"type:varchar(5);not null"` // HH:MM
	Location      string    `gorm:"type:varchar(300);not null"`
	Headcount     int       `gorm:"type:int;not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'SOLICITADO'"`
	CreatedAt     time.Time `gorm:"not null"`
	// Кэшированные расчетные поля (дублируют компробанте)
	TotalPrice     float64 `gorm:"type:decimal(12,2);default:0"`
	PricePerPerson float64 `gorm:"type:decimal(10,2);default:0"`
	// Поля сеньи (если HasDeposit=false, остальные должны быть пустыми)
	HasDeposit    bool       `gorm:"type:boolean;default:false;not null"`
	DepositAmount *float64   `gorm:"type:decimal(10,2);default:null"`
	DepositDate   *time.Time `gorm:"type:date;default:null"`
	DepositNotes  string     `gorm:"type:varchar(500)"`

	Client      Client      `gorm:"foreignKey:ClientID"`
	Responsible Responsible `gorm:"foreignKey:ResponsibleID"`
	Invoice     Invoice     `gorm:"foreignKey:InvoiceID"`
}

// Типы событий
const (
	EventTypeWedding    = "CASAMIENTO"
	EventTypeBirthday   = "CUMPLEANOS"
	EventTypeCommercial = "EVENTO_COMERCIAL"
	EventTypeOther      = "OTRO"
)

// Статусы событий
const (
	EventStatusRequested  = "SOLICITADO"
	EventStatusConfirmed  = "CONFIRMADO"
	EventStatusInProgress = "EN_PROCESO"
	EventStatusFinished   = "FINALIZADO"
	EventStatusCancelled  = "CANCELADO"
	EventStatusExpired    = "VENCIDO"
)

// ActiveEventStatuses — статусы, занимающие место на дате
var ActiveEventStatuses = []string{EventStatusRequested, EventStatusConfirmed, EventStatusInProgress}

// EventStatuses — допустимые значения статуса
var EventStatuses = []string{
	EventStatusRequested, EventStatusConfirmed, EventStatusInProgress,
	EventStatusFinished, EventStatusCancelled, EventStatusExpired,
}

// EventTypes — допустимые типы событий
var EventTypes = []string{EventTypeWedding, EventTypeBirthday, EventTypeCommercial, EventTypeOther}
