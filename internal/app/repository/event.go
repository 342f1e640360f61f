package repository

import (
	"errors"
	"time"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для событий

// Availability — результат проверки доступности даты
type Availability struct {
	Available bool
	Count     int
	Capacity  int
}

// CheckDateAvailability считает события на дату со статусами, занимающими место.
// excludeEventID позволяет исключить само событие при повторной проверке.
func (r *Repository) CheckDateAvailability(date time.Time, excludeEventID uint) (Availability, error) {
	var count int64
	query := r.db.Model(&ds.Event{}).
		Where("date = ?", dateOnly(date)).
		Where("status IN ?", ds.ActiveEventStatuses)
	if excludeEventID != 0 {
		query = query.Where("id != ?", excludeEventID)
	}

	if err := query.Count(&count).Error; err != nil {
		return Availability{}, err
	}

	return Availability{
		Available: int(count) < ds.DayCapacity,
		Count:     int(count),
		Capacity:  ds.DayCapacity,
	}, nil
}

// CreateEvent создает событие вместе с компробанте в одной транзакции.
// Событие всегда начинает жизнь в статусе SOLICITADO.
func (r *Repository) CreateEvent(event *ds.Event) error {
	if event.Headcount <= 0 {
		return apperr.Validationf("количество персон должно быть больше нуля")
	}

	if _, err := r.GetClientByID(event.ClientID); err != nil {
		return err
	}
	if _, err := r.GetResponsibleByID(event.ResponsibleID); err != nil {
		return err
	}

	event.Date = dateOnly(event.Date)

	availability, err := r.CheckDateAvailability(event.Date, 0)
	if err != nil {
		return err
	}
	if !availability.Available {
		return apperr.Conflictf("на дату %s уже запланировано %d событий из %d",
			event.Date.Format("2006-01-02"), availability.Count, availability.Capacity)
	}

	event.Status = ds.EventStatusRequested
	event.CreatedAt = time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		orderDate := dateOnly(time.Now())
		invoice := ds.Invoice{
			ClientID:   event.ClientID,
			OrderDate:  orderDate,
			ValidUntil: orderDate.AddDate(0, 0, ds.InvoiceValidityDays),
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		event.InvoiceID = invoice.ID
		return tx.Create(event).Error
	})
}

func (r *Repository) GetEventByID(id uint) (*ds.Event, error) {
	var event ds.Event
	err := r.db.Preload("Client").Preload("Responsible").Preload("Invoice").First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("событие не найдено")
		}
		return nil, err
	}
	return &event, nil
}

// EventFilter — параметры фильтрации списка событий
type EventFilter struct {
	Status        string
	DateFrom      *time.Time
	DateTo        *time.Time
	ClientID      *uint
	ResponsibleID *uint
}

func (r *Repository) GetEvents(filter EventFilter) ([]ds.Event, error) {
	var events []ds.Event
	query := r.db.Preload("Client").Preload("Responsible").Preload("Invoice").Order("date, time")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", dateOnly(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", dateOnly(*filter.DateTo))
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.ResponsibleID != nil {
		query = query.Where("responsible_id = ?", *filter.ResponsibleID)
	}

	err := query.Find(&events).Error
	return events, err
}

// EventChanges — изменяемые поля события (nil — поле не трогаем)
type EventChanges struct {
	EventType *string
	Date      *time.Time
	Time      *string
	Location  *string
	Headcount *int
}

// UpdateEvent обновляет событие; смена даты заново проверяет доступность
// (исключая само событие), смена числа персон пересчитывает компробанте
func (r *Repository) UpdateEvent(id uint, changes EventChanges) error {
	event, err := r.GetEventByID(id)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}

	if changes.Date != nil {
		newDate := dateOnly(*changes.Date)
		if !newDate.Equal(event.Date) {
			availability, err := r.CheckDateAvailability(newDate, event.ID)
			if err != nil {
				return err
			}
			if !availability.Available {
				return apperr.Conflictf("на дату %s уже запланировано %d событий из %d",
					newDate.Format("2006-01-02"), availability.Count, availability.Capacity)
			}
			updates["date"] = newDate
		}
	}
	if changes.EventType != nil {
		updates["event_type"] = *changes.EventType
	}
	if changes.Time != nil {
		updates["time"] = *changes.Time
	}
	if changes.Location != nil {
		updates["location"] = *changes.Location
	}
	if changes.Headcount != nil {
		if *changes.Headcount <= 0 {
			return apperr.Validationf("количество персон должно быть больше нуля")
		}
		updates["headcount"] = *changes.Headcount
	}

	if len(updates) == 0 {
		return nil
	}

	if err := r.db.Model(&ds.Event{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return err
	}

	// Число персон влияет на цену за персону
	if changes.Headcount != nil {
		return r.RecalculateInvoice(id)
	}
	return nil
}

// UpdateEventStatus меняет статус; допустимые значения проверяет DTO,
// сам переход свободный (жесткой машины состояний в домене нет)
func (r *Repository) UpdateEventStatus(id uint, status string) error {
	if _, err := r.GetEventByID(id); err != nil {
		return err
	}
	return r.db.Model(&ds.Event{}).Where("id = ?", id).Update("status", status).Error
}

// DeleteEvent удаляет событие вместе с меню и компробанте.
// Блокируется пока на событие назначен персонал.
func (r *Repository) DeleteEvent(id uint) error {
	event, err := r.GetEventByID(id)
	if err != nil {
		return err
	}

	var serviceCount int64
	if err := r.db.Model(&ds.StaffService{}).Where("event_id = ?", id).Count(&serviceCount).Error; err != nil {
		return err
	}
	if serviceCount > 0 {
		return apperr.Conflictf("нельзя удалить событие: на него назначен персонал (%d)", serviceCount)
	}

	// Явный порядок удаления: позиции меню, затем событие, затем компробанте
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&ds.MenuLine{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&ds.Event{}, id).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Invoice{}, event.InvoiceID).Error
	})
}
