package handler

import (
	"net/http"
	"strconv"

	"catering/internal/app/ds"
	"catering/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН МЕНЮ СОБЫТИЯ ============

func menuLineToDTO(line ds.MenuLine) dto.MenuLineResponse {
	return dto.MenuLineResponse{
		ID:          line.ID,
		ProductType: line.ProductType.Description,
		ProductID:   line.ProductID,
		Product:     line.Product.Description,
		Quantity:    line.Quantity,
		UnitPrice:   line.UnitPrice,
		LineTotal:   line.LineTotal,
	}
}

// requireEventAccess загружает событие и проверяет доступ текущего пользователя
func (h *APIHandler) requireEventAccess(c *gin.Context) (*ds.Event, bool) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "необходима авторизация")
		return nil, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID события")
		return nil, false
	}

	event, err := h.Repository.GetEventByID(uint(id))
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}

	if !h.eventAccessAllowed(userID, userRole, event) {
		h.errorResponse(c, http.StatusForbidden, "нет доступа к этому событию")
		return nil, false
	}

	return event, true
}

// GetMenu получает меню события
// @Summary Получение меню события
// @Tags Menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Success 200 {object} dto.MenuResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id}/menu [get]
func (h *APIHandler) GetMenu(c *gin.Context) {
	event, ok := h.requireEventAccess(c)
	if !ok {
		return
	}

	lines, err := h.Repository.GetMenu(event.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	dtoLines := make([]dto.MenuLineResponse, len(lines))
	var totalProducts float64
	for i, line := range lines {
		dtoLines[i] = menuLineToDTO(line)
		totalProducts += line.LineTotal
	}

	c.JSON(http.StatusOK, dto.MenuResponse{
		EventID:       event.ID,
		Lines:         dtoLines,
		TotalProducts: totalProducts,
	})
}

// AddMenuLine добавляет продукт в меню события
// @Summary Добавление продукта в меню
// @Description Добавляет продукт в меню события. Повторное добавление увеличивает количество. Компробанте пересчитывается
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Param request body dto.AddMenuLineRequest true "Продукт и количество"
// @Success 201 {object} dto.MenuLineResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id}/menu [post]
func (h *APIHandler) AddMenuLine(c *gin.Context) {
	event, ok := h.requireEventAccess(c)
	if !ok {
		return
	}

	var req dto.AddMenuLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	line, err := h.Repository.AddProductToMenu(event.ID, req.ProductTypeID, req.ProductID, req.Quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, menuLineToDTO(*line))
}

// UpdateMenuLine изменяет количество в строке меню
// @Summary Изменение количества в строке меню
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Param line_id path int true "ID строки меню"
// @Param request body dto.UpdateMenuLineRequest true "Новое количество"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id}/menu/{line_id} [put]
func (h *APIHandler) UpdateMenuLine(c *gin.Context) {
	event, ok := h.requireEventAccess(c)
	if !ok {
		return
	}

	lineID, err := strconv.ParseUint(c.Param("line_id"), 10, 32)
	if err != nil || lineID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID строки меню")
		return
	}

	var req dto.UpdateMenuLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	if err := h.Repository.UpdateMenuLineQuantity(event.ID, uint(lineID), req.Quantity); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "строка меню обновлена", nil)
}

// RemoveMenuLine удаляет строку меню
// @Summary Удаление строки меню
// @Description Удаляет строку меню события. Компробанте пересчитывается
// @Tags Menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Param line_id path int true "ID строки меню"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id}/menu/{line_id} [delete]
func (h *APIHandler) RemoveMenuLine(c *gin.Context) {
	event, ok := h.requireEventAccess(c)
	if !ok {
		return
	}

	lineID, err := strconv.ParseUint(c.Param("line_id"), 10, 32)
	if err != nil || lineID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID строки меню")
		return
	}

	if err := h.Repository.RemoveMenuLine(event.ID, uint(lineID)); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "строка меню удалена", nil)
}
