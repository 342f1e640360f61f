package handler

import (
	"net/http"

	"catering/internal/app/dto"
	"catering/internal/app/middleware"
	"catering/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Каталог (Products) - публичный просмотр, управление для администратора ============
	products := api.Group("/products")
	{
		// Публичные эндпоинты (без авторизации)
		products.GET("", h.GetProducts)    // GET список с фильтрацией
		products.GET("/:id", h.GetProduct) // GET одна запись

		// Только для администратора (управление каталогом)
		products.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateProduct)                // POST создание
		products.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateProduct)             // PUT изменение
		products.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteProduct)          // DELETE логическое удаление
		products.POST("/:id/image", authMiddleware.WithAuthCheck(role.Admin), h.UploadProductImage) // POST изображение
	}

	productTypes := api.Group("/product-types")
	{
		productTypes.GET("", h.GetProductTypes)
		productTypes.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateProductType)
	}

	// ============ Справочники (Provinces / Barrios) - публичные ============
	provinces := api.Group("/provinces")
	{
		provinces.GET("", h.GetProvinces)
		provinces.GET("/:id/barrios", h.GetBarrios)
	}

	// ============ Клиенты (Clients) - для персонала компании ============
	clients := api.Group("/clients")
	{
		clients.GET("", authMiddleware.WithAuthCheck(role.Employee, role.Responsible, role.Admin), h.GetClients)
		clients.GET("/:id", authMiddleware.WithAuthCheck(role.Employee, role.Responsible, role.Admin), h.GetClient)
		clients.POST("", authMiddleware.WithAuthCheck(role.Employee, role.Admin), h.CreateClient)
		clients.PUT("/:id", authMiddleware.WithAuthCheck(role.Employee, role.Admin), h.UpdateClient)

		// Удаление только для администратора
		clients.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteClient)
	}

	// ============ Ответственные (Responsibles) ============
	responsibles := api.Group("/responsibles")
	{
		responsibles.GET("", authMiddleware.WithAuthCheck(role.Client, role.Employee, role.Responsible, role.Admin), h.GetResponsibles)
		responsibles.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateResponsible)
		responsibles.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteResponsible)
	}

	// ============ События (Events) - видимость ограничена ролью ============
	events := api.Group("/events")
	{
		// Доступность даты - публичный эндпоинт
		events.GET("/availability", h.CheckAvailability)

		allRoles := authMiddleware.WithAuthCheck(role.Client, role.Employee, role.Responsible, role.Admin)
		events.GET("", allRoles, h.GetEvents)
		events.GET("/:id", allRoles, h.GetEvent)
		events.POST("", allRoles, h.CreateEvent)

		// Изменение события - для персонала
		events.PUT("/:id", authMiddleware.WithAuthCheck(role.Employee, role.Responsible, role.Admin), h.UpdateEvent)
		events.PUT("/:id/status", authMiddleware.WithAuthCheck(role.Responsible, role.Admin), h.UpdateEventStatus)
		events.POST("/:id/recalculate", authMiddleware.WithAuthCheck(role.Employee, role.Responsible, role.Admin), h.RecalculateInvoice)

		// Сенья - ответственный события или администратор (проверка внутри)
		events.PUT("/:id/deposit", authMiddleware.WithAuthCheck(role.Responsible, role.Admin), h.UpdateDeposit)

		// Удаление только для администратора
		events.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteEvent)

		// Меню события - доступ проверяется по владению событием
		events.GET("/:id/menu", allRoles, h.GetMenu)
		events.POST("/:id/menu", allRoles, h.AddMenuLine)
		events.PUT("/:id/menu/:line_id", allRoles, h.UpdateMenuLine)
		events.DELETE("/:id/menu/:line_id", allRoles, h.RemoveMenuLine)

		// Назначения персонала
		events.GET("/:id/staff", authMiddleware.WithAuthCheck(role.Employee, role.Responsible, role.Admin), h.GetEventStaff)
		events.POST("/:id/staff", authMiddleware.WithAuthCheck(role.Responsible, role.Admin), h.AssignStaff)
	}

	// ============ Персонал (Staff) ============
	staff := api.Group("/staff")
	{
		staff.GET("/my-services", authMiddleware.WithAuthCheck(role.Employee, role.Admin), h.GetMyServices)

		staff.GET("", authMiddleware.WithAuthCheck(role.Employee, role.Responsible, role.Admin), h.GetStaff)
		staff.GET("/:id", authMiddleware.WithAuthCheck(role.Employee, role.Responsible, role.Admin), h.GetStaffMember)

		// Управление персоналом только для администратора
		staff.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateStaff)
		staff.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateStaff)
		staff.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteStaff)
	}

	// Назначения (Staff Services)
	services := api.Group("/services")
	services.Use(authMiddleware.WithAuthCheck(role.Responsible, role.Admin))
	{
		services.PUT("/:service_id/status", h.UpdateServiceStatus) // PUT изменение статуса
		services.DELETE("/:service_id", h.RemoveService)           // DELETE снятие назначения
	}

	// ============ Аутентификация (публичные эндпоинты) ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser) // POST регистрация
		auth.POST("/login", h.AuthHandler.LoginUser)       // POST аутентификация JWT

		// Защищенные эндпоинты
		authorized := authMiddleware.WithAuthCheck(role.Client, role.Employee, role.Responsible, role.Admin)
		auth.GET("/profile", authorized, h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authorized, h.UpdateProfile) // PUT обновление профиля
		auth.POST("/logout", authorized, h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}

// UpdateProfile обновляет профиль пользователя
// @Summary Обновление профиля
// @Description Обновляет данные профиля текущего пользователя
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateUserRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/profile [put]
func (h *APIHandler) UpdateProfile(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "ошибка авторизации")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	var fullName, hashedPassword, phone, address *string
	if req.FullName != "" {
		fullName = &req.FullName
	}
	if req.Password != "" {
		hashed := generateHashString(req.Password)
		hashedPassword = &hashed
	}
	if req.Phone != "" {
		phone = &req.Phone
	}
	if req.Address != "" {
		address = &req.Address
	}

	if err := h.Repository.UpdateUser(userID, fullName, hashedPassword, phone, address); err != nil {
		logrus.Error("Error updating user: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка обновления профиля")
		return
	}

	h.successResponse(c, http.StatusOK, "профиль успешно обновлен", nil)
}
