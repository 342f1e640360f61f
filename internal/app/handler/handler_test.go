package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"catering/internal/app/config"
	"catering/internal/app/ds"
	"catering/internal/app/middleware"
	"catering/internal/app/repository"
	"catering/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestAPI(t *testing.T) (*gin.Engine, *repository.Repository, *AuthHandler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:api_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	repo, err := repository.NewWithDB(db)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Token:         "test-secret",
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}

	authHandler := NewAuthHandler(repo, nil, cfg)
	apiHandler := NewAPIHandler(repo, nil, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(nil, cfg, repo)

	r := gin.New()
	apiHandler.RegisterAPIRoutes(r, authMiddleware)
	return r, repo, authHandler
}

func registerAndLogin(t *testing.T, router *gin.Engine, login, profileType string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"login":        login,
		"password":     "secreto1",
		"full_name":    "Usuario " + login,
		"profile_type": profileType,
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", login, rec.Code, rec.Body.String())
	}

	body, _ = json.Marshal(map[string]string{"login": login, "password": "secreto1"})
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", login, rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login %s: no token in response %s", login, rec.Body.String())
	}
	return resp.Token
}

func doJSON(router *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	router, _, _ := setupTestAPI(t)

	rec := doJSON(router, http.MethodGet, "/ping", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router, _, _ := setupTestAPI(t)

	rec := doJSON(router, http.MethodGet, "/api/clients", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRoleGating(t *testing.T) {
	router, _, _ := setupTestAPI(t)

	clientToken := registerAndLogin(t, router, "cliente1", role.ProfileClient)
	adminToken := registerAndLogin(t, router, "admin1", role.ProfileAdmin)

	// Клиенту запрещено управление персоналом
	rec := doJSON(router, http.MethodPost, "/api/staff", clientToken, map[string]string{
		"kind": "MOZO", "full_name": "Nuevo Mozo",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for client, got %d", rec.Code)
	}

	// Администратору разрешено
	rec = doJSON(router, http.MethodPost, "/api/staff", adminToken, map[string]string{
		"kind": "MOZO", "full_name": "Nuevo Mozo",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for admin, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRoleComesFromDatabaseNotToken(t *testing.T) {
	router, repo, _ := setupTestAPI(t)

	token := registerAndLogin(t, router, "empleado2", role.ProfileEmployee)

	// Профиль блокируется после выдачи токена
	user, err := repo.GetUserByLogin("empleado2")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	profile, err := repo.GetProfileByUserID(user.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if err := repo.UpdateProfileStatus(profile.UserID, ds.ProfileStatusSuspended); err != nil {
		t.Fatalf("suspend profile: %v", err)
	}

	rec := doJSON(router, http.MethodGet, "/api/clients", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for suspended profile, got %d", rec.Code)
	}
}

func TestPublicCatalogRoutes(t *testing.T) {
	router, repo, _ := setupTestAPI(t)

	productType, err := repo.CreateProductType("Entrada")
	if err != nil {
		t.Fatalf("create type: %v", err)
	}
	if _, err := repo.CreateProduct(productType.ID, "Empanadas", 50, true); err != nil {
		t.Fatalf("create product: %v", err)
	}

	rec := doJSON(router, http.MethodGet, "/api/products", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for public catalog, got %d", rec.Code)
	}

	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Total != 1 {
		t.Fatalf("expected one product, got %s", rec.Body.String())
	}

	// Мутации каталога без токена закрыты
	rec = doJSON(router, http.MethodPost, "/api/products", "", map[string]interface{}{
		"product_type_id": productType.ID, "description": "Pizza", "price": 80,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous mutation, got %d", rec.Code)
	}
}

func TestEventOwnershipVisibility(t *testing.T) {
	router, repo, _ := setupTestAPI(t)

	adminToken := registerAndLogin(t, router, "admin2", role.ProfileAdmin)
	clientToken := registerAndLogin(t, router, "cliente2", role.ProfileClient)

	// Клиент с привязанной учетной записью и чужой клиент
	user, err := repo.GetUserByLogin("cliente2")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	own := ds.Client{Name: "Propio", Surname: "Cliente", DocType: ds.DocTypeDNI, DocNumber: "40000001", Email: "p@example.com", UserID: &user.ID}
	if err := repo.CreateClient(&own, "", ""); err != nil {
		t.Fatalf("create own client: %v", err)
	}
	foreign := ds.Client{Name: "Ajeno", Surname: "Cliente", DocType: ds.DocTypeDNI, DocNumber: "40000002", Email: "a@example.com"}
	if err := repo.CreateClient(&foreign, "", ""); err != nil {
		t.Fatalf("create foreign client: %v", err)
	}
	responsible, err := repo.CreateResponsible("Resp Uno", "", "", nil)
	if err != nil {
		t.Fatalf("create responsible: %v", err)
	}

	// Администратор создает по событию каждому клиенту
	for _, c := range []ds.Client{own, foreign} {
		rec := doJSON(router, http.MethodPost, "/api/events", adminToken, map[string]interface{}{
			"client_id":      c.ID,
			"responsible_id": responsible.ID,
			"event_type":     "CUMPLEANOS",
			"date":           "2027-03-01",
			"time":           "20:00",
			"location":       "Salón",
			"headcount":      15,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create event: status %d, body %s", rec.Code, rec.Body.String())
		}
	}

	// Клиент видит только свое событие
	rec := doJSON(router, http.MethodGet, "/api/events", clientToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list events: status %d", rec.Code)
	}
	var resp struct {
		Total  int `json:"total"`
		Events []struct {
			ClientID uint `json:"client_id"`
		} `json:"events"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || resp.Events[0].ClientID != own.ID {
		t.Fatalf("expected client to see only own event, got %s", rec.Body.String())
	}

	// Администратор видит оба
	rec = doJSON(router, http.MethodGet, "/api/events", adminToken, nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("expected admin to see both events, got %d", resp.Total)
	}
}

func TestDepositOnlyForAssignedResponsible(t *testing.T) {
	router, repo, _ := setupTestAPI(t)

	respToken := registerAndLogin(t, router, "responsable1", role.ProfileResponsible)
	otherToken := registerAndLogin(t, router, "responsable2", role.ProfileResponsible)

	user1, _ := repo.GetUserByLogin("responsable1")
	user2, _ := repo.GetUserByLogin("responsable2")
	assigned, err := repo.CreateResponsible("Resp Asignado", "", "", &user1.ID)
	if err != nil {
		t.Fatalf("create responsible: %v", err)
	}
	if _, err := repo.CreateResponsible("Resp Ajeno", "", "", &user2.ID); err != nil {
		t.Fatalf("create responsible: %v", err)
	}

	client := ds.Client{Name: "C", Surname: "D", DocType: ds.DocTypeDNI, DocNumber: "40000003", Email: "cd@example.com"}
	if err := repo.CreateClient(&client, "", ""); err != nil {
		t.Fatalf("create client: %v", err)
	}
	event := ds.Event{
		ClientID: client.ID, ResponsibleID: assigned.ID,
		EventType: ds.EventTypeWedding,
		Date:      time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC),
		Time:      "19:00", Location: "Quinta", Headcount: 50,
	}
	if err := repo.CreateEvent(&event); err != nil {
		t.Fatalf("create event: %v", err)
	}

	hasDeposit := true
	payload := map[string]interface{}{
		"has_deposit": hasDeposit,
		"amount":      1000,
		"date":        time.Now().UTC().Format("2006-01-02"),
	}
	path := "/api/events/" + itoa(event.ID) + "/deposit"

	// Чужой ответственный получает отказ
	rec := doJSON(router, http.MethodPut, path, otherToken, payload)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign responsible, got %d: %s", rec.Code, rec.Body.String())
	}

	// Назначенный ответственный регистрирует сенью
	rec = doJSON(router, http.MethodPut, path, respToken, payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for assigned responsible, got %d: %s", rec.Code, rec.Body.String())
	}
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
