package repository

import (
	"errors"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для каталога продуктов

func (r *Repository) GetAllProductTypes() ([]ds.ProductType, error) {
	var types []ds.ProductType
	err := r.db.Order("description").Find(&types).Error
	return types, err
}

func (r *Repository) GetProductTypeByID(id uint) (*ds.ProductType, error) {
	var productType ds.ProductType
	err := r.db.First(&productType, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("тип продукта не найден")
		}
		return nil, err
	}
	return &productType, nil
}

func (r *Repository) CreateProductType(description string) (*ds.ProductType, error) {
	productType := ds.ProductType{Description: description}
	err := r.db.Create(&productType).Error
	if err != nil {
		return nil, err
	}
	return &productType, nil
}

// GetAllProducts возвращает продукты каталога; фильтры по типу и поиск по описанию
func (r *Repository) GetAllProducts(search string, productTypeID uint, onlyAvailable bool) ([]ds.Product, error) {
	var products []ds.Product
	query := r.db.Preload("ProductType").Where("is_deleted = ?", false).Order("product_type_id, description")
	if search != "" {
		query = query.Where("description LIKE ?", "%"+search+"%")
	}
	if productTypeID != 0 {
		query = query.Where("product_type_id = ?", productTypeID)
	}
	if onlyAvailable {
		query = query.Where("available = ?", true)
	}
	err := query.Find(&products).Error
	return products, err
}

func (r *Repository) GetProductByID(id uint) (*ds.Product, error) {
	var product ds.Product
	err := r.db.Preload("ProductType").Where("id = ? AND is_deleted = ?", id, false).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("продукт не найден")
		}
		return nil, err
	}
	return &product, nil
}

func (r *Repository) CreateProduct(productTypeID uint, description string, price float64, available bool) (*ds.Product, error) {
	if _, err := r.GetProductTypeByID(productTypeID); err != nil {
		return nil, err
	}

	product := ds.Product{
		ProductTypeID: productTypeID,
		Description:   description,
		Price:         price,
		Available:     available,
	}
	err := r.db.Create(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repository) UpdateProduct(id uint, productTypeID *uint, description *string, price *float64, available *bool) error {
	if _, err := r.GetProductByID(id); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if productTypeID != nil {
		if _, err := r.GetProductTypeByID(*productTypeID); err != nil {
			return err
		}
		updates["product_type_id"] = *productTypeID
	}
	if description != nil {
		updates["description"] = *description
	}
	if price != nil {
		updates["price"] = *price
	}
	if available != nil {
		updates["available"] = *available
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.Model(&ds.Product{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteProduct выполняет логическое удаление продукта
func (r *Repository) DeleteProduct(id uint) error {
	if _, err := r.GetProductByID(id); err != nil {
		return err
	}
	return r.db.Model(&ds.Product{}).Where("id = ?", id).Update("is_deleted", true).Error
}

func (r *Repository) UpdateProductImage(id uint, imageURL string) error {
	return r.db.Model(&ds.Product{}).Where("id = ?", id).Update("image_url", imageURL).Error
}

func (r *Repository) DeleteProductImage(id uint) error {
	return r.db.Model(&ds.Product{}).Where("id = ?", id).Update("image_url", nil).Error
}
