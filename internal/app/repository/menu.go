package repository

import (
	"errors"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для меню события и пересчета компробанте

func (r *Repository) GetMenu(eventID uint) ([]ds.MenuLine, error) {
	if _, err := r.GetEventByID(eventID); err != nil {
		return nil, err
	}

	var lines []ds.MenuLine
	err := r.db.Preload("Product").Preload("ProductType").
		Where("event_id = ?", eventID).
		Order("product_type_id, product_id").
		Find(&lines).Error
	return lines, err
}

// AddProductToMenu добавляет продукт в меню события.
// Повторное добавление той же тройки (событие, тип, продукт) увеличивает
// количество существующей позиции вместо создания дубликата.
func (r *Repository) AddProductToMenu(eventID, productTypeID, productID uint, quantity int) (*ds.MenuLine, error) {
	if quantity <= 0 {
		return nil, apperr.Validationf("количество должно быть больше нуля")
	}

	if _, err := r.GetEventByID(eventID); err != nil {
		return nil, err
	}

	product, err := r.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	if product.ProductTypeID != productTypeID {
		return nil, apperr.Validationf("продукт не относится к выбранному типу")
	}
	if !product.Available {
		return nil, apperr.Validationf("продукт сейчас недоступен")
	}

	var line ds.MenuLine
	err = r.db.Transaction(func(tx *gorm.DB) error {
		findErr := tx.Where("event_id = ? AND product_type_id = ? AND product_id = ?",
			eventID, productTypeID, productID).First(&line).Error

		switch {
		case findErr == nil:
			// Позиция уже есть — наращиваем количество
			line.Quantity += quantity
			line.LineTotal = line.UnitPrice * float64(line.Quantity)
			if err := tx.Save(&line).Error; err != nil {
				return err
			}
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			line = ds.MenuLine{
				EventID:       eventID,
				ProductTypeID: productTypeID,
				ProductID:     productID,
				Quantity:      quantity,
				UnitPrice:     product.Price, // цена копируется в момент добавления
				LineTotal:     product.Price * float64(quantity),
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		default:
			return findErr
		}

		return r.recalculateInvoiceTx(tx, eventID)
	})
	if err != nil {
		return nil, err
	}

	return &line, nil
}

// UpdateMenuLineQuantity задает новое количество для позиции меню
func (r *Repository) UpdateMenuLineQuantity(eventID, lineID uint, quantity int) error {
	if quantity <= 0 {
		return apperr.Validationf("количество должно быть больше нуля")
	}

	var line ds.MenuLine
	err := r.db.Where("id = ? AND event_id = ?", lineID, eventID).First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("позиция меню не найдена")
		}
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		line.Quantity = quantity
		line.LineTotal = line.UnitPrice * float64(quantity)
		if err := tx.Save(&line).Error; err != nil {
			return err
		}
		return r.recalculateInvoiceTx(tx, eventID)
	})
}

// RemoveMenuLine удаляет позицию меню
func (r *Repository) RemoveMenuLine(eventID, lineID uint) error {
	var line ds.MenuLine
	err := r.db.Where("id = ? AND event_id = ?", lineID, eventID).First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("позиция меню не найдена")
		}
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ds.MenuLine{}, line.ID).Error; err != nil {
			return err
		}
		return r.recalculateInvoiceTx(tx, eventID)
	})
}

// RecalculateInvoice пересчитывает компробанте события с нуля.
// Идемпотентна: каждый вызов суммирует актуальные позиции меню,
// поэтому восстанавливает согласованность после любых правок.
func (r *Repository) RecalculateInvoice(eventID uint) error {
	if _, err := r.GetEventByID(eventID); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return r.recalculateInvoiceTx(tx, eventID)
	})
}

func (r *Repository) recalculateInvoiceTx(tx *gorm.DB, eventID uint) error {
	var event ds.Event
	if err := tx.First(&event, eventID).Error; err != nil {
		return err
	}

	var totalProducts float64
	err := tx.Model(&ds.MenuLine{}).
		Where("event_id = ?", eventID).
		Select("COALESCE(SUM(line_total), 0)").
		Scan(&totalProducts).Error
	if err != nil {
		return err
	}

	totalService := totalProducts * ds.ServiceMargin

	pricePerPerson := 0.0
	if event.Headcount > 0 {
		pricePerPerson = totalService / float64(event.Headcount)
	}

	err = tx.Model(&ds.Invoice{}).Where("id = ?", event.InvoiceID).Updates(map[string]interface{}{
		"total_products":   totalProducts,
		"total_service":    totalService,
		"price_per_person": pricePerPerson,
	}).Error
	if err != nil {
		return err
	}

	return tx.Model(&ds.Event{}).Where("id = ?", eventID).Updates(map[string]interface{}{
		"total_price":      totalService,
		"price_per_person": pricePerPerson,
	}).Error
}
