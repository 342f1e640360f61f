package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"catering/internal/app/config"
	"catering/internal/app/ds"
	"catering/internal/app/dto"
	"catering/internal/app/redis"
	"catering/internal/app/repository"
	"catering/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(r *repository.Repository, redisClient *redis.Client, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      config,
	}
}

// generateHashString генерирует SHA-1 хеш из строки
func generateHashString(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// generateToken выпускает JWT с ролью, определенной по профилю
func (h *AuthHandler) generateToken(userID uint, userRole role.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "catering-backend",
		},
		UserID: userID,
		Role:   userRole,
	})
	return token.SignedString([]byte(h.Config.JWT.Token))
}

// RegisterUser регистрация нового пользователя
// @Summary Регистрация пользователя
// @Description Создание нового пользователя с профилем (по умолчанию CLIENTE)
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные для регистрации"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	// Проверяем существует ли пользователь
	exists, _ := h.Repository.UserExistsByLogin(request.Login)
	if exists {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("пользователь с таким логином уже существует"))
		return
	}

	// Хешируем пароль
	hashedPassword := generateHashString(request.Password)

	// Тип профиля по умолчанию — клиент
	profileType := request.ProfileType
	if profileType == "" {
		profileType = role.ProfileClient
	}

	user, err := h.Repository.CreateUser(request.Login, hashedPassword, request.FullName, request.Email, profileType)
	if err != nil {
		logrus.Error("Error creating user: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("ошибка регистрации пользователя"))
		return
	}

	userRole := role.FromProfile(profileType)

	// Генерируем JWT токен сразу при регистрации
	accessToken, err := h.generateToken(user.ID, userRole)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	response := dto.UserResponse{
		ID:       user.ID,
		Login:    user.Login,
		FullName: user.FullName,
		Role:     userRole.String(),
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "пользователь успешно зарегистрирован",
		"user":    response,
		"data":    accessToken, // JWT токен
	})
}

// LoginUser аутентификация пользователя
// @Summary Вход в систему
// @Description Аутентификация пользователя с возвратом JWT токена
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	// Хешируем входной пароль
	hashedPassword := generateHashString(request.Password)

	// Проверяем пользователя в базе данных
	user, err := h.Repository.GetUserByLogin(request.Login)
	if err != nil || user.Password != hashedPassword {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("неверный логин или пароль"))
		return
	}

	// Роль определяется по профилю (или флагу суперпользователя)
	userRole, err := h.Repository.ResolveRole(user.ID)
	if err != nil {
		h.errorHandler(ctx, http.StatusForbidden, errors.New("учетная запись не активна"))
		return
	}

	accessToken, err := h.generateToken(user.ID, userRole)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"message":    "пользователь успешно авторизован",
		"user_id":    user.ID,
		"role":       userRole.String(),
		"token":      accessToken,
		"login":      user.Login,
		"expires_in": int(h.Config.JWT.ExpiresIn.Seconds()),
		"token_type": "Bearer",
	})
}

// LogoutUser выход пользователя из системы
// @Summary Выход из системы
// @Description Завершение сеанса пользователя с добавлением токена в blacklist
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	// Получение токена из заголовка
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("authorization header missing"))
		return
	}

	// Удаление префикса "Bearer "
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	// Парсинг токена для получения TTL
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})

	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid token claims"))
		return
	}

	// Вычисление TTL до истечения токена
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 || h.RedisClient == nil {
		// Токен уже истек либо blacklist не настроен
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "пользователь успешно вышел из системы",
		})
		return
	}

	// Добавление токена в blacklist
	err = h.RedisClient.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "пользователь успешно вышел из системы",
	})
}

// GetUserProfile получение профиля пользователя
// @Summary Получение профиля пользователя
// @Description Возвращает информацию о текущем пользователе
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	// Получаем ID пользователя из контекста (установлен middleware)
	userID, exists := ctx.Get("userID")
	if !exists {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("пользователь не авторизован"))
		return
	}

	// Получаем роль из контекста
	userRole, roleExists := ctx.Get("userRole")
	if !roleExists {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("роль пользователя не найдена"))
		return
	}

	// Получаем пользователя из БД для полной информации
	user, err := h.Repository.GetUserByID(userID.(uint))
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("пользователь не найден"))
		return
	}

	resolvedRole, _ := userRole.(role.Role)

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user": gin.H{
			"id":        user.ID,
			"login":     user.Login,
			"full_name": user.FullName,
			"role":      resolvedRole.String(),
		},
	})
}

// errorHandler централизованная обработка ошибок
func (h *AuthHandler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}
