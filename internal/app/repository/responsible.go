package repository

import (
	"errors"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для ответственных

func (r *Repository) GetAllResponsibles() ([]ds.Responsible, error) {
	var responsibles []ds.Responsible
	err := r.db.Order("full_name").Find(&responsibles).Error
	return responsibles, err
}

func (r *Repository) GetResponsibleByID(id uint) (*ds.Responsible, error) {
	var responsible ds.Responsible
	err := r.db.First(&responsible, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("ответственный не найден")
		}
		return nil, err
	}
	return &responsible, nil
}

// GetResponsibleByUserID находит ответственного по привязанной учетной записи
func (r *Repository) GetResponsibleByUserID(userID uint) (*ds.Responsible, error) {
	var responsible ds.Responsible
	err := r.db.Where("user_id = ?", userID).First(&responsible).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("ответственный для пользователя не найден")
		}
		return nil, err
	}
	return &responsible, nil
}

func (r *Repository) CreateResponsible(fullName, phone, email string, userID *uint) (*ds.Responsible, error) {
	if userID != nil {
		if _, err := r.GetUserByID(*userID); err != nil {
			return nil, err
		}
	}

	responsible := ds.Responsible{
		FullName: fullName,
		Phone:    phone,
		Email:    email,
		UserID:   userID,
	}
	err := r.db.Create(&responsible).Error
	if err != nil {
		return nil, err
	}
	return &responsible, nil
}

// DeleteResponsible удаляет ответственного; блокируется пока на него ссылаются события
func (r *Repository) DeleteResponsible(id uint) error {
	if _, err := r.GetResponsibleByID(id); err != nil {
		return err
	}

	var count int64
	if err := r.db.Model(&ds.Event{}).Where("responsible_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflictf("нельзя удалить ответственного: за ним числятся события (%d)", count)
	}

	return r.db.Delete(&ds.Responsible{}, id).Error
}
