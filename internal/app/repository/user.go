package repository

import (
	"errors"
	"time"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"
	"catering/internal/app/role"

	"gorm.io/gorm"
)

// Методы для пользователей и профилей

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("пользователь не найден")
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByLogin(login string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("login = ?", login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("пользователь не найден")
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByLogin(login string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

// CreateUser создает пользователя вместе с профилем в одной транзакции
func (r *Repository) CreateUser(login, hashedPassword, fullName, email, profileType string) (*ds.User, error) {
	user := ds.User{
		Login:    login,
		Password: hashedPassword,
		FullName: fullName,
		Email:    email,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := ds.Profile{
			UserID:      user.ID,
			ProfileType: profileType,
			Status:      ds.ProfileStatusActive,
			CreatedAt:   time.Now(),
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetProfileByUserID(userID uint) (*ds.Profile, error) {
	var profile ds.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("профиль не найден")
		}
		return nil, err
	}
	return &profile, nil
}

// ResolveRole определяет типизированную роль пользователя.
// Профиль отсутствует — fallback на флаг суперпользователя.
// Неактивный или заблокированный профиль доступа не дает.
func (r *Repository) ResolveRole(userID uint) (role.Role, error) {
	user, err := r.GetUserByID(userID)
	if err != nil {
		return role.Anonymous, err
	}

	profile, err := r.GetProfileByUserID(userID)
	if err != nil {
		if apperr.Is(err, apperr.NotFound) {
			if user.IsSuperuser {
				return role.Admin, nil
			}
			return role.Anonymous, apperr.Authorizationf("у пользователя нет профиля")
		}
		return role.Anonymous, err
	}

	if profile.Status != ds.ProfileStatusActive {
		return role.Anonymous, apperr.Authorizationf("профиль пользователя не активен")
	}

	resolved := role.FromProfile(profile.ProfileType)
	if resolved == role.Anonymous && user.IsSuperuser {
		return role.Admin, nil
	}
	return resolved, nil
}

// UpdateProfileStatus меняет статус профиля (блокировка и разблокировка)
func (r *Repository) UpdateProfileStatus(userID uint, status string) error {
	if _, err := r.GetProfileByUserID(userID); err != nil {
		return err
	}
	return r.db.Model(&ds.Profile{}).Where("user_id = ?", userID).
		Update("status", status).Error
}

// UpdateUser обновляет данные пользователя и профиля
func (r *Repository) UpdateUser(userID uint, fullName, hashedPassword, phone, address *string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		userUpdates := map[string]interface{}{}
		if fullName != nil {
			userUpdates["full_name"] = *fullName
		}
		if hashedPassword != nil {
			userUpdates["password"] = *hashedPassword
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&ds.User{}).Where("id = ?", userID).Updates(userUpdates).Error; err != nil {
				return err
			}
		}

		profileUpdates := map[string]interface{}{}
		if phone != nil {
			profileUpdates["phone"] = *phone
		}
		if address != nil {
			profileUpdates["address"] = *address
		}
		if len(profileUpdates) > 0 {
			if err := tx.Model(&ds.Profile{}).Where("user_id = ?", userID).Updates(profileUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
