package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/api/v1/auth"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/models"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noopNotifier struct{}

func (noopNotifier) Enqueue(kind, to string, data map[string]string) error { return nil }

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.Migrator().DropTable(&models.User{}, &models.Proposal{}, &models.LoginHistory{})
	if err := db.AutoMigrate(&models.User{}, &models.Proposal{}, &models.LoginHistory{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	accounts := services.NewAccountService(db, noopNotifier{}, "http://localhost:8080")

	router := gin.New()
	v1 := router.Group("/api/v1")
	passthrough := func(c *gin.Context) { c.Next() }
	auth.RegisterRoutes(v1, auth.NewHandler(accounts, nil), passthrough, passthrough)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(router, "/api/v1/auth/register", gin.H{
		"email":            "user@example.com",
		"password":         "Str0ng!pass",
		"confirm_password": "Str0ng!pass",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status  int                  `json:"status"`
		Message string               `json:"message"`
		Data    auth.SessionResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user@example.com", resp.Data.Email)
	assert.False(t, resp.Data.IsVerified)
	assert.Empty(t, resp.Data.Token)
}

func TestRegisterEndpointPasswordMismatch(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(router, "/api/v1/auth/register", gin.H{
		"email":            "user@example.com",
		"password":         "Str0ng!pass",
		"confirm_password": "Different!1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match")
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	router := setupRouter(t)

	body := gin.H{
		"email":            "user@example.com",
		"password":         "Str0ng!pass",
		"confirm_password": "Str0ng!pass",
	}
	assert.Equal(t, http.StatusCreated, postJSON(router, "/api/v1/auth/register", body).Code)
	assert.Equal(t, http.StatusConflict, postJSON(router, "/api/v1/auth/register", body).Code)
}

func TestRegisterEndpointWeakPassword(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(router, "/api/v1/auth/register", gin.H{
		"email":            "user@example.com",
		"password":         "weakpass",
		"confirm_password": "weakpass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "uppercase")
}

func TestLoginEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := setupRouter(t)

	assert.Equal(t, http.StatusCreated, postJSON(router, "/api/v1/auth/register", gin.H{
		"email":            "user@example.com",
		"password":         "Str0ng!pass",
		"confirm_password": "Str0ng!pass",
	}).Code)

	w := postJSON(router, "/api/v1/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "Str0ng!pass",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data auth.SessionResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)

	w = postJSON(router, "/api/v1/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}
