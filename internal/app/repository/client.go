package repository

import (
	"errors"
	"time"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"
	"catering/internal/app/role"

	"gorm.io/gorm"
)

// Методы для клиентов

func (r *Repository) GetAllClients(search string) ([]ds.Client, error) {
	var clients []ds.Client
	query := r.db.Preload("Province").Preload("Barrio").Order("surname, name")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("surname LIKE ? OR name LIKE ? OR doc_number LIKE ?", pattern, pattern, pattern)
	}
	err := query.Find(&clients).Error
	return clients, err
}

func (r *Repository) GetClientByID(id uint) (*ds.Client, error) {
	var client ds.Client
	err := r.db.Preload("Province").Preload("Barrio").First(&client, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("клиент не найден")
		}
		return nil, err
	}
	return &client, nil
}

// GetClientByUserID находит клиента по привязанной учетной записи
func (r *Repository) GetClientByUserID(userID uint) (*ds.Client, error) {
	var client ds.Client
	err := r.db.Where("user_id = ?", userID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("клиент для пользователя не найден")
		}
		return nil, err
	}
	return &client, nil
}

// CreateClient создает клиента; при непустом userLogin в той же транзакции
// создается учетная запись с профилем CLIENTE и привязывается к клиенту
func (r *Repository) CreateClient(client *ds.Client, userLogin, hashedPassword string) error {
	exists, err := r.clientExistsByDoc(client.DocNumber)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflictf("клиент с таким номером документа уже существует")
	}

	if err := r.checkClientRefs(client.ProvinceID, client.BarrioID); err != nil {
		return err
	}

	client.CreatedAt = time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		if userLogin != "" {
			user := ds.User{
				Login:    userLogin,
				Password: hashedPassword,
				Email:    client.Email,
				FullName: client.Name + " " + client.Surname,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			profile := ds.Profile{
				UserID:      user.ID,
				ProfileType: role.ProfileClient,
				Status:      ds.ProfileStatusActive,
				Address:     client.Address,
				BirthDate:   client.BirthDate,
				CreatedAt:   time.Now(),
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}

			client.UserID = &user.ID
		}

		return tx.Create(client).Error
	})
}

func (r *Repository) UpdateClient(id uint, updates map[string]interface{}) error {
	if _, err := r.GetClientByID(id); err != nil {
		return err
	}

	if provinceID, ok := updates["province_id"].(*uint); ok {
		barrioID, _ := updates["barrio_id"].(*uint)
		if err := r.checkClientRefs(provinceID, barrioID); err != nil {
			return err
		}
	}

	return r.db.Model(&ds.Client{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteClient удаляет клиента; блокируется пока на него ссылаются события
func (r *Repository) DeleteClient(id uint) error {
	if _, err := r.GetClientByID(id); err != nil {
		return err
	}

	var count int64
	if err := r.db.Model(&ds.Event{}).Where("client_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflictf("нельзя удалить клиента: за ним числятся события (%d)", count)
	}

	return r.db.Delete(&ds.Client{}, id).Error
}

func (r *Repository) clientExistsByDoc(docNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Client{}).Where("doc_number = ?", docNumber).Count(&count).Error
	return count > 0, err
}

// checkClientRefs проверяет существование справочных ссылок клиента
func (r *Repository) checkClientRefs(provinceID, barrioID *uint) error {
	if provinceID != nil {
		var count int64
		if err := r.db.Model(&ds.Province{}).Where("id = ?", *provinceID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperr.NotFoundf("провинция не найдена")
		}
	}
	if barrioID != nil {
		var barrio ds.Barrio
		if err := r.db.First(&barrio, *barrioID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("район не найден")
			}
			return err
		}
		if provinceID != nil && barrio.ProvinceID != *provinceID {
			return apperr.Validationf("район не относится к выбранной провинции")
		}
	}
	return nil
}

// Справочники провинций и районов

func (r *Repository) GetAllProvinces() ([]ds.Province, error) {
	var provinces []ds.Province
	err := r.db.Where("active = ?", true).Order("name").Find(&provinces).Error
	return provinces, err
}

func (r *Repository) GetBarrios(provinceID uint) ([]ds.Barrio, error) {
	var barrios []ds.Barrio
	query := r.db.Where("active = ?", true).Order("name")
	if provinceID != 0 {
		query = query.Where("province_id = ?", provinceID)
	}
	err := query.Find(&barrios).Error
	return barrios, err
}
