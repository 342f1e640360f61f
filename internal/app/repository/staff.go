package repository

import (
	"errors"
	"time"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для персонала и назначений на события

func (r *Repository) GetAllStaff(kind, status string) ([]ds.StaffMember, error) {
	var staff []ds.StaffMember
	query := r.db.Order("kind, full_name")
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&staff).Error
	return staff, err
}

func (r *Repository) GetStaffByID(id uint) (*ds.StaffMember, error) {
	var staff ds.StaffMember
	err := r.db.First(&staff, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("сотрудник не найден")
		}
		return nil, err
	}
	return &staff, nil
}

// GetStaffByUserID находит сотрудника по привязанной учетной записи
func (r *Repository) GetStaffByUserID(userID uint) (*ds.StaffMember, error) {
	var staff ds.StaffMember
	err := r.db.Where("user_id = ?", userID).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("за учетной записью не закреплен сотрудник")
		}
		return nil, err
	}
	return &staff, nil
}

func (r *Repository) CreateStaff(kind, fullName, phone, email string) (*ds.StaffMember, error) {
	staff := ds.StaffMember{
		Kind:     kind,
		FullName: fullName,
		Phone:    phone,
		Email:    email,
		Status:   ds.StaffStatusActive,
	}
	err := r.db.Create(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *Repository) UpdateStaff(id uint, kind, fullName, phone, email, status *string) error {
	if _, err := r.GetStaffByID(id); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if kind != nil {
		updates["kind"] = *kind
	}
	if fullName != nil {
		updates["full_name"] = *fullName
	}
	if phone != nil {
		updates["phone"] = *phone
	}
	if email != nil {
		updates["email"] = *email
	}
	if status != nil {
		updates["status"] = *status
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.Model(&ds.StaffMember{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteStaff удаляет сотрудника; блокируется пока есть назначения на события
func (r *Repository) DeleteStaff(id uint) error {
	if _, err := r.GetStaffByID(id); err != nil {
		return err
	}

	var count int64
	if err := r.db.Model(&ds.StaffService{}).Where("staff_member_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflictf("нельзя удалить сотрудника: есть назначения на события (%d)", count)
	}

	return r.db.Delete(&ds.StaffMember{}, id).Error
}

// AssignStaffToEvent назначает сотрудника на событие.
// Не более одного назначения на пару (событие, сотрудник).
func (r *Repository) AssignStaffToEvent(eventID, staffID uint, peopleCount int) (*ds.StaffService, error) {
	if peopleCount <= 0 {
		peopleCount = 1
	}

	if _, err := r.GetEventByID(eventID); err != nil {
		return nil, err
	}

	staff, err := r.GetStaffByID(staffID)
	if err != nil {
		return nil, err
	}
	if staff.Status != ds.StaffStatusActive {
		return nil, apperr.Validationf("сотрудник не активен и не может быть назначен")
	}

	var existing ds.StaffService
	findErr := r.db.Where("event_id = ? AND staff_member_id = ?", eventID, staffID).First(&existing).Error
	if findErr == nil {
		return nil, apperr.Conflictf("сотрудник уже назначен на это событие")
	}
	if !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return nil, findErr
	}

	service := ds.StaffService{
		EventID:       eventID,
		StaffMemberID: staffID,
		PeopleCount:   peopleCount,
		Status:        ds.ServiceStatusAssigned,
		AssignedAt:    dateOnly(time.Now()),
	}
	if err := r.db.Create(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *Repository) GetServicesByEvent(eventID uint) ([]ds.StaffService, error) {
	if _, err := r.GetEventByID(eventID); err != nil {
		return nil, err
	}

	var services []ds.StaffService
	err := r.db.Preload("StaffMember").Where("event_id = ?", eventID).
		Order("assigned_at desc").Find(&services).Error
	return services, err
}

// GetServicesByStaff возвращает назначения сотрудника (его рабочая сводка)
func (r *Repository) GetServicesByStaff(staffID uint) ([]ds.StaffService, error) {
	if _, err := r.GetStaffByID(staffID); err != nil {
		return nil, err
	}

	var services []ds.StaffService
	err := r.db.Preload("StaffMember").Where("staff_member_id = ?", staffID).
		Order("assigned_at desc").Find(&services).Error
	return services, err
}

func (r *Repository) UpdateServiceStatus(serviceID uint, status string) error {
	var service ds.StaffService
	err := r.db.First(&service, serviceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("назначение не найдено")
		}
		return err
	}
	return r.db.Model(&ds.StaffService{}).Where("id = ?", serviceID).Update("status", status).Error
}

func (r *Repository) RemoveService(serviceID uint) error {
	var service ds.StaffService
	err := r.db.First(&service, serviceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("назначение не найдено")
		}
		return err
	}
	return r.db.Delete(&ds.StaffService{}, serviceID).Error
}
