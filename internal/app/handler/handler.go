package handler

import (
	"fmt"
	"net/http"

	"catering/internal/app/apperr"
	"catering/internal/app/ds"
	"catering/internal/app/dto"
	"catering/internal/app/repository"
	"catering/internal/app/role"
	"catering/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// Получение текущего пользователя из контекста
func (h *APIHandler) getUserFromContext(c *gin.Context) (uint, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, role.Anonymous, fmt.Errorf("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return 0, r, fmt.Errorf("invalid user ID")
	}

	return id, r, nil
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// handleError переводит категорию доменной ошибки в HTTP статус
func (h *APIHandler) handleError(c *gin.Context, err error) {
	kind, ok := apperr.KindOf(err)
	if !ok {
		logrus.Error(err)
		h.errorResponse(c, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	switch kind {
	case apperr.Validation:
		h.errorResponse(c, http.StatusBadRequest, err.Error())
	case apperr.NotFound:
		h.errorResponse(c, http.StatusNotFound, err.Error())
	case apperr.Authorization:
		h.errorResponse(c, http.StatusForbidden, err.Error())
	case apperr.Conflict:
		h.errorResponse(c, http.StatusConflict, err.Error())
	default:
		logrus.Error(err)
		h.errorResponse(c, http.StatusInternalServerError, "внутренняя ошибка сервера")
	}
}

// eventAccessAllowed проверяет, имеет ли вызывающий доступ к событию:
// админ и сотрудник видят все, ответственный и клиент — только свои
func (h *APIHandler) eventAccessAllowed(userID uint, userRole role.Role, event *ds.Event) bool {
	switch userRole {
	case role.Admin, role.Employee:
		return true
	case role.Responsible:
		responsible, err := h.Repository.GetResponsibleByUserID(userID)
		return err == nil && responsible.ID == event.ResponsibleID
	case role.Client:
		client, err := h.Repository.GetClientByUserID(userID)
		return err == nil && client.ID == event.ClientID
	default:
		return false
	}
}
