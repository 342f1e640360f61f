package ds

import "time"

// Таблица персонала компании
type StaffMember struct {
	ID       uint   `gorm:"primaryKey"`
	Kind     string `gorm:"type:varchar(20);not null"` // MOZO, COCINERO, ASISTENTE, SUPERVISOR
	FullName string `gorm:"type:varchar(200);not null"`
	Phone    string `gorm:"type:varchar(20)"`
	Email    string `gorm:"type:varchar(100)"`
	Status   string `gorm:"type:varchar(20);not null;default:'ACTIVO'"` // ACTIVO, INACTIVO, VACACIONES, LICENCIA
	UserID   *uint  `gorm:"uniqueIndex"`

	User *User `gorm:"foreignKey:UserID"`
}

// Категории персонала
const (
	StaffKindWaiter     = "MOZO"
	StaffKindCook       = "COCINERO"
	StaffKindAssistant  = "ASISTENTE"
	StaffKindSupervisor = "SUPERVISOR"
)

// Статусы персонала
const (
	StaffStatusActive   = "ACTIVO"
	StaffStatusInactive = "INACTIVO"
	StaffStatusVacation = "VACACIONES"
	StaffStatusOnLeave  = "LICENCIA"
)

// Таблица назначений персонала на события.
// Не более одной записи на пару (событие, сотрудник).
type StaffService struct {
	ID            uint      `gorm:"primaryKey"`
	EventID       uint      `gorm:"not null;index;uniqueIndex:idx_event_staff"`
	StaffMemberID uint      `gorm:"not null;index;uniqueIndex:idx_event_staff"`
	PeopleCount   int       `gorm:"type:int;not null;default:1"`
	Status        string    `gorm:"type:varchar(20);not null;default:'ASIGNADO'"` // ASIGNADO, EN_SERVICIO, COMPLETADO, CANCELADO
	AssignedAt    time.Time `gorm:"type:date;not null"`

	Event       Event       `gorm:"foreignKey:EventID"`
	StaffMember StaffMember `gorm:"foreignKey:StaffMemberID"`
}

// Статусы назначений
const (
	ServiceStatusAssigned  = "ASIGNADO"
	ServiceStatusInService = "EN_SERVICIO"
	ServiceStatusCompleted = "COMPLETADO"
	ServiceStatusCancelled = "CANCELADO"
)
