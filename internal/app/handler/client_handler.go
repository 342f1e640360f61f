package handler

import (
	"net/http"
	"strconv"
	"time"

	"catering/internal/app/ds"
	"catering/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН КЛИЕНТЫ ============

func (h *APIHandler) clientToDTO(cl ds.Client) dto.ClientResponse {
	resp := dto.ClientResponse{
		ID:        cl.ID,
		Name:      cl.Name,
		Surname:   cl.Surname,
		DocType:   cl.DocType,
		DocNumber: cl.DocNumber,
		Email:     cl.Email,
		Address:   cl.Address,
		HasUser:   cl.UserID != nil,
	}
	if cl.Province != nil {
		resp.Province = cl.Province.Name
	}
	if cl.Barrio != nil {
		resp.Barrio = cl.Barrio.Name
	}
	if cl.BirthDate != nil {
		resp.BirthDate = cl.BirthDate.Format("2006-01-02")
	}
	return resp
}

// GetClients получает список клиентов
// @Summary Получение списка клиентов
// @Description Список клиентов с поиском по имени, фамилии и номеру документа
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param query query string false "Поиск"
// @Success 200 {object} dto.ClientListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/clients [get]
func (h *APIHandler) GetClients(c *gin.Context) {
	searchQuery := c.Query("query")

	clients, err := h.Repository.GetAllClients(searchQuery)
	if err != nil {
		logrus.Error("Error getting clients: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения клиентов")
		return
	}

	dtoClients := make([]dto.ClientResponse, len(clients))
	for i, cl := range clients {
		dtoClients[i] = h.clientToDTO(cl)
	}

	c.JSON(http.StatusOK, dto.ClientListResponse{
		Clients: dtoClients,
		Total:   len(dtoClients),
	})
}

// GetClient получает клиента по ID
// @Summary Получение клиента по ID
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID клиента"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{id} [get]
func (h *APIHandler) GetClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID клиента")
		return
	}

	client, err := h.Repository.GetClientByID(uint(id))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.clientToDTO(*client))
}

// CreateClient создает клиента
// @Summary Создание клиента
// @Description Создает клиента. При create_user=true также создается учетная запись cliente_<номер документа>
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClientRequest true "Данные клиента"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/clients [post]
func (h *APIHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	client := ds.Client{
		Name:       req.Name,
		Surname:    req.Surname,
		DocType:    req.DocType,
		DocNumber:  req.DocNumber,
		Email:      req.Email,
		Address:    req.Address,
		ProvinceID: req.ProvinceID,
		BarrioID:   req.BarrioID,
	}

	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "неверный формат даты рождения, ожидается ГГГГ-ММ-ДД")
			return
		}
		client.BirthDate = &birthDate
	}

	var userLogin, hashedPassword string
	if req.CreateUser {
		// Логин и начальный пароль формируются из номера документа
		userLogin = "cliente_" + req.DocNumber
		hashedPassword = generateHashString(req.DocNumber)
	}

	if err := h.Repository.CreateClient(&client, userLogin, hashedPassword); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.clientToDTO(client))
}

// UpdateClient обновляет клиента
// @Summary Обновление клиента
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID клиента"
// @Param request body dto.UpdateClientRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{id} [put]
func (h *APIHandler) UpdateClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID клиента")
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Surname != "" {
		updates["surname"] = req.Surname
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.ProvinceID != nil {
		updates["province_id"] = *req.ProvinceID
	}
	if req.BarrioID != nil {
		updates["barrio_id"] = *req.BarrioID
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "неверный формат даты рождения, ожидается ГГГГ-ММ-ДД")
			return
		}
		updates["birth_date"] = birthDate
	}

	if len(updates) == 0 {
		h.errorResponse(c, http.StatusBadRequest, "нет данных для обновления")
		return
	}

	if err := h.Repository.UpdateClient(uint(id), updates); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "клиент успешно обновлен", nil)
}

// DeleteClient удаляет клиента
// @Summary Удаление клиента
// @Description Удаляет клиента. Запрещено при наличии связанных событий
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID клиента"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/clients/{id} [delete]
func (h *APIHandler) DeleteClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID клиента")
		return
	}

	if err := h.Repository.DeleteClient(uint(id)); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "клиент успешно удален", nil)
}

// GetProvinces получает справочник провинций
// @Summary Получение списка провинций
// @Tags Clients
// @Produce json
// @Success 200 {array} dto.ProvinceResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/provinces [get]
func (h *APIHandler) GetProvinces(c *gin.Context) {
	provinces, err := h.Repository.GetAllProvinces()
	if err != nil {
		logrus.Error("Error getting provinces: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения провинций")
		return
	}

	response := make([]dto.ProvinceResponse, len(provinces))
	for i, p := range provinces {
		response[i] = dto.ProvinceResponse{ID: p.ID, Name: p.Name, Code: p.Code}
	}

	c.JSON(http.StatusOK, response)
}

// GetBarrios получает районы провинции
// @Summary Получение районов провинции
// @Tags Clients
// @Produce json
// @Param id path int true "ID провинции"
// @Success 200 {array} dto.BarrioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/provinces/{id}/barrios [get]
func (h *APIHandler) GetBarrios(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID провинции")
		return
	}

	barrios, err := h.Repository.GetBarrios(uint(id))
	if err != nil {
		logrus.Error("Error getting barrios: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения районов")
		return
	}

	response := make([]dto.BarrioResponse, len(barrios))
	for i, b := range barrios {
		response[i] = dto.BarrioResponse{ID: b.ID, ProvinceID: b.ProvinceID, Name: b.Name}
	}

	c.JSON(http.StatusOK, response)
}

// ============ ДОМЕН ОТВЕТСТВЕННЫЕ ============

// GetResponsibles получает список ответственных
// @Summary Получение списка ответственных
// @Tags Responsibles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResponsibleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/responsibles [get]
func (h *APIHandler) GetResponsibles(c *gin.Context) {
	responsibles, err := h.Repository.GetAllResponsibles()
	if err != nil {
		logrus.Error("Error getting responsibles: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения ответственных")
		return
	}

	response := make([]dto.ResponsibleResponse, len(responsibles))
	for i, r := range responsibles {
		response[i] = dto.ResponsibleResponse{ID: r.ID, FullName: r.FullName, Phone: r.Phone, Email: r.Email}
	}

	c.JSON(http.StatusOK, response)
}

// CreateResponsible создает ответственного
// @Summary Создание ответственного
// @Tags Responsibles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateResponsibleRequest true "Данные ответственного"
// @Success 201 {object} dto.ResponsibleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/responsibles [post]
func (h *APIHandler) CreateResponsible(c *gin.Context) {
	var req dto.CreateResponsibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	responsible, err := h.Repository.CreateResponsible(req.FullName, req.Phone, req.Email, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ResponsibleResponse{
		ID:       responsible.ID,
		FullName: responsible.FullName,
		Phone:    responsible.Phone,
		Email:    responsible.Email,
	})
}

// DeleteResponsible удаляет ответственного
// @Summary Удаление ответственного
// @Description Удаляет ответственного. Запрещено при наличии связанных событий
// @Tags Responsibles
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID ответственного"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/responsibles/{id} [delete]
func (h *APIHandler) DeleteResponsible(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID ответственного")
		return
	}

	if err := h.Repository.DeleteResponsible(uint(id)); err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "ответственный успешно удален", nil)
}
