package handler

import (
	"net/http"
	"strconv"

	"catering/internal/app/ds"
	"catering/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ПЕРСОНАЛ ============

func staffToDTO(s ds.StaffMember) dto.StaffResponse {
	return dto.StaffResponse{
		ID:       s.ID,
		Kind:     s.Kind,
		FullName: s.FullName,
		Phone:    s.Phone,
		Email:    s.Email,
		Status:   s.Status,
	}
}

func serviceToDTO(s ds.StaffService) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:            s.ID,
		EventID:       s.EventID,
		StaffMemberID: s.StaffMemberID,
		StaffMember:   s.StaffMember.FullName,
		PeopleCount:   s.PeopleCount,
		Status:        s.Status,
		AssignedAt:    s.AssignedAt,
	}
}

// GetStaff получает список персонала
// @Summary Получение списка персонала
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param kind query string false "Фильтр по категории (MOZO, COCINERO, ASISTENTE, SUPERVISOR)"
// @Param status query string false "Фильтр по статусу"
// @Success 200 {object} dto.StaffListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/staff [get]
func (h *APIHandler) GetStaff(c *gin.Context) {
	staff, err := h.Repository.GetAllStaff(c.Query("kind"), c.Query("status"))
	if err != nil {
		logrus.Error("Error getting staff: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения персонала")
		return
	}

	dtoStaff := make([]dto.StaffResponse, len(staff))
	for i, s := range staff {
		dtoStaff[i] = staffToDTO(s)
	}

	c.JSON(http.StatusOK, dto.StaffListResponse{
		Staff: dtoStaff,
		Total: len(dtoStaff),
	})
}

// GetStaffMember получает сотрудника по ID
// @Summary Получение сотрудника по ID
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID сотрудника"
// @Success 200 {object} dto.StaffResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/staff/{id} [get]
func (h *APIHandler) GetStaffMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID сотрудника")
		return
	}

	staff, err := h.Repository.GetStaffByID(uint(id))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, staffToDTO(*staff))
}

// CreateStaff создает сотрудника
// @Summary Создание сотрудника
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStaffRequest true "Данные сотрудника"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/staff [post]
func (h *APIHandler) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	staff, err := h.Repository.CreateStaff(req.Kind, req.FullName, req.Phone, req.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, staffToDTO(*staff))
}

// UpdateStaff обновляет сотрудника
// @Summary Обновление сотрудника
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID сотрудника"
// @Param request body dto.UpdateStaffRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/staff/{id} [put]
func (h *APIHandler) UpdateStaff(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID сотрудника")
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	var kind, fullName, phone, email, status *string
	if req.Kind != "" {
		kind = &req.Kind
	}
	if req.FullName != "" {
		fullName = &req.FullName
	}
	if req.Phone != "" {
		phone = &req.Phone
	}
	if req.Email != "" {
		email = &req.Email
	}
	if req.Status != "" {
		status = &req.Status
	}

	if err := h.Repository.UpdateStaff(uint(id), kind, fullName, phone, email, status); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "сотрудник успешно обновлен", nil)
}

// DeleteStaff удаляет сотрудника
// @Summary Удаление сотрудника
// @Description Удаляет сотрудника. Запрещено при наличии назначений на события
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID сотрудника"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/staff/{id} [delete]
func (h *APIHandler) DeleteStaff(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID сотрудника")
		return
	}

	if err := h.Repository.DeleteStaff(uint(id)); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "сотрудник успешно удален", nil)
}

// ============ НАЗНАЧЕНИЯ НА СОБЫТИЯ ============

// AssignStaff назначает сотрудника на событие
// @Summary Назначение сотрудника на событие
// @Description Назначает активного сотрудника на событие. Повторное назначение той же пары запрещено
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Param request body dto.AssignStaffRequest true "Сотрудник и число обслуживаемых персон"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/events/{id}/staff [post]
func (h *APIHandler) AssignStaff(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID события")
		return
	}

	var req dto.AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	service, err := h.Repository.AssignStaffToEvent(uint(id), req.StaffMemberID, req.PeopleCount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serviceToDTO(*service))
}

// GetEventStaff получает назначения по событию
// @Summary Получение назначений персонала на событие
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id}/staff [get]
func (h *APIHandler) GetEventStaff(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID события")
		return
	}

	if _, err := h.Repository.GetEventByID(uint(id)); err != nil {
		h.handleError(c, err)
		return
	}

	services, err := h.Repository.GetServicesByEvent(uint(id))
	if err != nil {
		h.handleError(c, err)
		return
	}

	dtoServices := make([]dto.ServiceResponse, len(services))
	for i, s := range services {
		dtoServices[i] = serviceToDTO(s)
	}

	c.JSON(http.StatusOK, dto.ServiceListResponse{
		Services: dtoServices,
		Total:    len(dtoServices),
	})
}

// GetMyServices получает назначения текущего сотрудника
// @Summary Получение своих назначений
// @Description Возвращает назначения сотрудника, привязанного к текущей учетной записи
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ServiceListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/staff/my-services [get]
func (h *APIHandler) GetMyServices(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "необходима авторизация")
		return
	}

	staff, err := h.Repository.GetStaffByUserID(userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	services, err := h.Repository.GetServicesByStaff(staff.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	dtoServices := make([]dto.ServiceResponse, len(services))
	for i, s := range services {
		dtoServices[i] = serviceToDTO(s)
	}

	c.JSON(http.StatusOK, dto.ServiceListResponse{
		Services: dtoServices,
		Total:    len(dtoServices),
	})
}

// UpdateServiceStatus изменяет статус назначения
// @Summary Изменение статуса назначения
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param service_id path int true "ID назначения"
// @Param request body dto.UpdateServiceStatusRequest true "Новый статус"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{service_id}/status [put]
func (h *APIHandler) UpdateServiceStatus(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("service_id"), 10, 32)
	if err != nil || serviceID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID назначения")
		return
	}

	var req dto.UpdateServiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	if err := h.Repository.UpdateServiceStatus(uint(serviceID), req.Status); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "статус назначения обновлен", nil)
}

// RemoveService снимает назначение
// @Summary Снятие назначения
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param service_id path int true "ID назначения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{service_id} [delete]
func (h *APIHandler) RemoveService(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("service_id"), 10, 32)
	if err != nil || serviceID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID назначения")
		return
	}

	if err := h.Repository.RemoveService(uint(serviceID)); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "назначение снято", nil)
}
