package repository

import (
	"time"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"
)

// DepositInput — данные о сенье от клиента
type DepositInput struct {
	HasDeposit bool
	Amount     *float64
	Date       *time.Time
	Notes      string
}

// UpdateDeposit фиксирует данные о сенье события.
// Без сеньи поля принудительно очищаются независимо от присланных значений.
func (r *Repository) UpdateDeposit(eventID uint, input DepositInput, now time.Time) error {
	if _, err := r.GetEventByID(eventID); err != nil {
		return err
	}

	if !input.HasDeposit {
		return r.db.Model(&ds.Event{}).Where("id = ?", eventID).Updates(map[string]interface{}{
			"has_deposit":    false,
			"deposit_amount": nil,
			"deposit_date":   nil,
			"deposit_notes":  "",
		}).Error
	}

	if input.Amount == nil || *input.Amount <= 0 {
		return apperr.Validationf("сумма сеньи должна быть больше нуля")
	}
	if input.Date == nil {
		return apperr.Validationf("не указана дата сеньи")
	}
	depositDate := dateOnly(*input.Date)
	if depositDate.After(dateOnly(now)) {
		return apperr.Validationf("дата сеньи не может быть в будущем")
	}

	return r.db.Model(&ds.Event{}).Where("id = ?", eventID).Updates(map[string]interface{}{
		"has_deposit":    true,
		"deposit_amount": *input.Amount,
		"deposit_date":   depositDate,
		"deposit_notes":  input.Notes,
	}).Error
}
