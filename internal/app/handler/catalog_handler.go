package handler

import (
	"io"
	"net/http"
	"strconv"

	"catering/internal/app/ds"
	"catering/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН КАТАЛОГ ============

func (h *APIHandler) productToDTO(p ds.Product) dto.ProductResponse {
	imageURL := ""
	if p.ImageURL != nil {
		imageURL = *p.ImageURL
	}
	return dto.ProductResponse{
		ID:            p.ID,
		ProductTypeID: p.ProductTypeID,
		ProductType:   p.ProductType.Description,
		Description:   p.Description,
		Price:         p.Price,
		Available:     p.Available,
		ImageURL:      imageURL,
	}
}

// GetProductTypes получает список типов продуктов
// @Summary Получение типов продуктов
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.ProductTypeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/product-types [get]
func (h *APIHandler) GetProductTypes(c *gin.Context) {
	types, err := h.Repository.GetAllProductTypes()
	if err != nil {
		logrus.Error("Error getting product types: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения типов продуктов")
		return
	}

	response := make([]dto.ProductTypeResponse, len(types))
	for i, t := range types {
		response[i] = dto.ProductTypeResponse{ID: t.ID, Description: t.Description}
	}

	c.JSON(http.StatusOK, response)
}

// CreateProductType создает тип продукта
// @Summary Создание типа продукта
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProductTypeRequest true "Данные типа"
// @Success 201 {object} dto.ProductTypeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/product-types [post]
func (h *APIHandler) CreateProductType(c *gin.Context) {
	var req dto.CreateProductTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	productType, err := h.Repository.CreateProductType(req.Description)
	if err != nil {
		logrus.Error("Error creating product type: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка создания типа продукта")
		return
	}

	c.JSON(http.StatusCreated, dto.ProductTypeResponse{ID: productType.ID, Description: productType.Description})
}

// GetProducts получает список продуктов
// @Summary Получение списка продуктов
// @Description Список продуктов каталога с поиском и фильтром по типу
// @Tags Catalog
// @Produce json
// @Param query query string false "Поиск по описанию"
// @Param type_id query int false "Фильтр по типу продукта"
// @Param available query bool false "Только доступные"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/products [get]
func (h *APIHandler) GetProducts(c *gin.Context) {
	searchQuery := c.Query("query")
	typeID, _ := strconv.ParseUint(c.Query("type_id"), 10, 32)
	onlyAvailable := c.Query("available") == "true"

	products, err := h.Repository.GetAllProducts(searchQuery, uint(typeID), onlyAvailable)
	if err != nil {
		logrus.Error("Error getting products: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения продуктов")
		return
	}

	dtoProducts := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		dtoProducts[i] = h.productToDTO(p)
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Products: dtoProducts,
		Total:    len(dtoProducts),
	})
}

// GetProduct получает один продукт
// @Summary Получение продукта по ID
// @Tags Catalog
// @Produce json
// @Param id path int true "ID продукта"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [get]
func (h *APIHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID продукта")
		return
	}

	product, err := h.Repository.GetProductByID(uint(id))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.productToDTO(*product))
}

// CreateProduct создает продукт
// @Summary Создание продукта
// @Description Создает продукт каталога (только для администратора)
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProductRequest true "Данные продукта"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products [post]
func (h *APIHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	product, err := h.Repository.CreateProduct(req.ProductTypeID, req.Description, req.Price, available)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ProductResponse{
		ID:            product.ID,
		ProductTypeID: product.ProductTypeID,
		Description:   product.Description,
		Price:         product.Price,
		Available:     product.Available,
	})
}

// UpdateProduct обновляет продукт
// @Summary Обновление продукта
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID продукта"
// @Param request body dto.UpdateProductRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [put]
func (h *APIHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID продукта")
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	var typeID *uint
	var description *string
	if req.ProductTypeID != 0 {
		typeID = &req.ProductTypeID
	}
	if req.Description != "" {
		description = &req.Description
	}

	err = h.Repository.UpdateProduct(uint(id), typeID, description, req.Price, req.Available)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "продукт успешно обновлен", nil)
}

// DeleteProduct удаляет продукт
// @Summary Удаление продукта
// @Description Логическое удаление продукта (только для администратора)
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID продукта"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [delete]
func (h *APIHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID продукта")
		return
	}

	// Сначала получаем продукт чтобы удалить изображение
	product, _ := h.Repository.GetProductByID(uint(id))
	if product != nil && product.ImageURL != nil && *product.ImageURL != "" {
		if h.MinIOClient != nil {
			if err := h.MinIOClient.DeleteFile(*product.ImageURL); err != nil {
				logrus.Warnf("Failed to delete image from MinIO: %v", err)
			}
		}
		h.Repository.DeleteProductImage(uint(id))
	}

	if err := h.Repository.DeleteProduct(uint(id)); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "продукт успешно удален", nil)
}

// UploadProductImage загружает изображение продукта
// @Summary Загрузка изображения продукта
// @Description Загружает изображение продукта в MinIO (только для администратора)
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID продукта"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id}/image [post]
func (h *APIHandler) UploadProductImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID продукта")
		return
	}

	product, err := h.Repository.GetProductByID(uint(id))
	if err != nil {
		h.handleError(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "файл не найден в запросе")
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "ошибка чтения файла")
		return
	}
	defer openedFile.Close()

	fileData, err := io.ReadAll(openedFile)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "ошибка чтения файла")
		return
	}

	// Удаляем старое изображение из MinIO (если есть)
	if product.ImageURL != nil && *product.ImageURL != "" && h.MinIOClient != nil {
		if err := h.MinIOClient.DeleteFile(*product.ImageURL); err != nil {
			logrus.Warnf("Failed to delete old image %s: %v", *product.ImageURL, err)
		}
	}

	var imageURL string
	if h.MinIOClient != nil {
		imageURL, err = h.MinIOClient.UploadFile(fileData, file.Filename)
		if err != nil {
			logrus.Error("Error uploading to MinIO: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "ошибка загрузки изображения")
			return
		}
	} else {
		// Fallback если MinIO не настроен
		imageURL = "uploaded_" + file.Filename
	}

	if err := h.Repository.UpdateProductImage(uint(id), imageURL); err != nil {
		logrus.Error("Error updating product image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка обновления изображения")
		return
	}

	h.successResponse(c, http.StatusOK, "изображение успешно загружено", gin.H{
		"image_url": imageURL,
	})
}
