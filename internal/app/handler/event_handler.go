package handler

import (
	"net/http"
	"strconv"
	"time"

	"catering/internal/app/ds"
	"catering/internal/app/dto"
	"catering/internal/app/repository"
	"catering/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН СОБЫТИЯ ============

func (h *APIHandler) eventToDTO(e ds.Event, withInvoice bool) dto.EventResponse {
	resp := dto.EventResponse{
		ID:             e.ID,
		ClientID:       e.ClientID,
		Client:         e.Client.Name + " " + e.Client.Surname,
		ResponsibleID:  e.ResponsibleID,
		Responsible:    e.Responsible.FullName,
		EventType:      e.EventType,
		Date:           e.Date.Format("2006-01-02"),
		Time:           e.Time,
		Location:       e.Location,
		Headcount:      e.Headcount,
		Status:         e.Status,
		TotalPrice:     e.TotalPrice,
		PricePerPerson: e.PricePerPerson,
		Deposit: dto.DepositResponse{
			HasDeposit:      e.HasDeposit,
			Amount:          e.DepositAmount,
			Notes:           e.DepositNotes,
			SuggestedAmount: e.TotalPrice * ds.DepositRate,
		},
	}
	if e.DepositDate != nil {
		resp.Deposit.Date = e.DepositDate.Format("2006-01-02")
	}
	if withInvoice {
		resp.Invoice = &dto.InvoiceResponse{
			ID:             e.Invoice.ID,
			OrderDate:      e.Invoice.OrderDate.Format("2006-01-02"),
			TotalProducts:  e.Invoice.TotalProducts,
			TotalService:   e.Invoice.TotalService,
			PricePerPerson: e.Invoice.PricePerPerson,
			ValidUntil:     e.Invoice.ValidUntil.Format("2006-01-02"),
		}
	}
	return resp
}

// CheckAvailability проверяет доступность даты
// @Summary Проверка доступности даты
// @Description Возвращает занятость даты с учетом лимита событий в день
// @Tags Events
// @Produce json
// @Param date query string true "Дата в формате ГГГГ-ММ-ДД"
// @Param exclude query int false "ID события, исключаемого из подсчета (при переносе)"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/events/availability [get]
func (h *APIHandler) CheckAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверный формат даты, ожидается ГГГГ-ММ-ДД")
		return
	}
	excludeID, _ := strconv.ParseUint(c.Query("exclude"), 10, 32)

	availability, err := h.Repository.CheckDateAvailability(date, uint(excludeID))
	if err != nil {
		logrus.Error("Error checking availability: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка проверки доступности")
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		Date:      date.Format("2006-01-02"),
		Available: availability.Available,
		Count:     availability.Count,
		Capacity:  availability.Capacity,
	})
}

// GetEvents получает список событий
// @Summary Получение списка событий
// @Description Список событий с фильтрами. Клиент видит только свои события, ответственный только назначенные ему
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу"
// @Param date_from query string false "Начало периода (ГГГГ-ММ-ДД)"
// @Param date_to query string false "Конец периода (ГГГГ-ММ-ДД)"
// @Param client_id query int false "Фильтр по клиенту"
// @Success 200 {object} dto.EventListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/events [get]
func (h *APIHandler) GetEvents(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "необходима авторизация")
		return
	}

	var filter repository.EventFilter
	filter.Status = c.Query("status")

	if dateStr := c.Query("date_from"); dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "неверный формат date_from, ожидается ГГГГ-ММ-ДД")
			return
		}
		filter.DateFrom = &d
	}
	if dateStr := c.Query("date_to"); dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "неверный формат date_to, ожидается ГГГГ-ММ-ДД")
			return
		}
		filter.DateTo = &d
	}
	if idStr := c.Query("client_id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err == nil && id > 0 {
			clientID := uint(id)
			filter.ClientID = &clientID
		}
	}

	// Ограничение видимости по роли
	switch userRole {
	case role.Client:
		client, err := h.Repository.GetClientByUserID(userID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		filter.ClientID = &client.ID
	case role.Responsible:
		responsible, err := h.Repository.GetResponsibleByUserID(userID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		filter.ResponsibleID = &responsible.ID
	}

	events, err := h.Repository.GetEvents(filter)
	if err != nil {
		logrus.Error("Error getting events: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения событий")
		return
	}

	dtoEvents := make([]dto.EventResponse, len(events))
	for i, e := range events {
		dtoEvents[i] = h.eventToDTO(e, false)
	}

	c.JSON(http.StatusOK, dto.EventListResponse{
		Events: dtoEvents,
		Total:  len(dtoEvents),
	})
}

// GetEvent получает событие по ID
// @Summary Получение события по ID
// @Description Возвращает событие вместе с компробанте и меню
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id} [get]
func (h *APIHandler) GetEvent(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "необходима авторизация")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID события")
		return
	}

	event, err := h.Repository.GetEventByID(uint(id))
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !h.eventAccessAllowed(userID, userRole, event) {
		h.errorResponse(c, http.StatusForbidden, "нет доступа к этому событию")
		return
	}

	response := h.eventToDTO(*event, true)

	menu, err := h.Repository.GetMenu(event.ID)
	if err == nil {
		response.Menu = make([]dto.MenuLineResponse, len(menu))
		for i, line := range menu {
			response.Menu[i] = menuLineToDTO(line)
		}
	}

	c.JSON(http.StatusOK, response)
}

// CreateEvent создает событие
// @Summary Создание события
// @Description Создает событие и связанный компробанте. Дата проверяется на доступность
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Данные события"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/events [post]
func (h *APIHandler) CreateEvent(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "необходима авторизация")
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверный формат даты, ожидается ГГГГ-ММ-ДД")
		return
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверный формат времени, ожидается ЧЧ:ММ")
		return
	}

	clientID := req.ClientID
	if userRole == role.Client {
		// Клиент создает события только от своего имени
		client, err := h.Repository.GetClientByUserID(userID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		clientID = client.ID
	}
	if clientID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "не указан клиент события")
		return
	}

	event := ds.Event{
		ClientID:      clientID,
		ResponsibleID: req.ResponsibleID,
		EventType:     req.EventType,
		Date:          date,
		Time:          req.Time,
		Location:      req.Location,
		Headcount:     req.Headcount,
	}

	if err := h.Repository.CreateEvent(&event); err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.Repository.GetEventByID(event.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.eventToDTO(*created, true))
}

// UpdateEvent обновляет событие
// @Summary Обновление события
// @Description Смена даты заново проверяет доступность, смена числа персон пересчитывает компробанте
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Param request body dto.UpdateEventRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/events/{id} [put]
func (h *APIHandler) UpdateEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID события")
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	var changes repository.EventChanges
	if req.EventType != "" {
		changes.EventType = &req.EventType
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "неверный формат даты, ожидается ГГГГ-ММ-ДД")
			return
		}
		changes.Date = &date
	}
	if req.Time != "" {
		if _, err := time.Parse("15:04", req.Time); err != nil {
			h.errorResponse(c, http.StatusBadRequest, "неверный формат времени, ожидается ЧЧ:ММ")
			return
		}
		changes.Time = &req.Time
	}
	if req.Location != "" {
		changes.Location = &req.Location
	}
	if req.Headcount != nil {
		changes.Headcount = req.Headcount
	}

	if err := h.Repository.UpdateEvent(uint(id), changes); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "событие успешно обновлено", nil)
}

// UpdateEventStatus изменяет статус события
// @Summary Изменение статуса события
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Param request body dto.UpdateEventStatusRequest true "Новый статус"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id}/status [put]
func (h *APIHandler) UpdateEventStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID события")
		return
	}

	var req dto.UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	if err := h.Repository.UpdateEventStatus(uint(id), req.Status); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "статус события обновлен", nil)
}

// DeleteEvent удаляет событие
// @Summary Удаление события
// @Description Удаляет событие вместе с меню и компробанте. Запрещено при наличии назначенного персонала
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/events/{id} [delete]
func (h *APIHandler) DeleteEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID события")
		return
	}

	if err := h.Repository.DeleteEvent(uint(id)); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "событие успешно удалено", nil)
}

// RecalculateInvoice пересчитывает компробанте события
// @Summary Пересчет компробанте
// @Description Принудительный пересчет сумм по строкам меню
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id}/recalculate [post]
func (h *APIHandler) RecalculateInvoice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID события")
		return
	}

	if err := h.Repository.RecalculateInvoice(uint(id)); err != nil {
		h.handleError(c, err)
		return
	}

	event, err := h.Repository.GetEventByID(uint(id))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.InvoiceResponse{
		ID:             event.Invoice.ID,
		OrderDate:      event.Invoice.OrderDate.Format("2006-01-02"),
		TotalProducts:  event.Invoice.TotalProducts,
		TotalService:   event.Invoice.TotalService,
		PricePerPerson: event.Invoice.PricePerPerson,
		ValidUntil:     event.Invoice.ValidUntil.Format("2006-01-02"),
	})
}

// UpdateDeposit фиксирует сенью события
// @Summary Регистрация сеньи
// @Description Фиксирует предоплату события. Доступно администратору и назначенному ответственному
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Param request body dto.UpdateDepositRequest true "Данные сеньи"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id}/deposit [put]
func (h *APIHandler) UpdateDeposit(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "необходима авторизация")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID события")
		return
	}

	event, err := h.Repository.GetEventByID(uint(id))
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Сенью регистрирует администратор или назначенный ответственный
	if userRole != role.Admin {
		responsible, err := h.Repository.GetResponsibleByUserID(userID)
		if err != nil || responsible.ID != event.ResponsibleID {
			h.errorResponse(c, http.StatusForbidden, "сенью регистрирует только ответственный события или администратор")
			return
		}
	}

	var req dto.UpdateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	input := repository.DepositInput{
		HasDeposit: *req.HasDeposit,
		Amount:     req.Amount,
		Notes:      req.Notes,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "неверный формат даты, ожидается ГГГГ-ММ-ДД")
			return
		}
		input.Date = &date
	}

	if err := h.Repository.UpdateDeposit(uint(id), input, time.Now()); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "данные сеньи обновлены", nil)
}
