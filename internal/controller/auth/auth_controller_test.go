package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	authpkg "github.com/lshigami/studyaid/internal/auth"
	"github.com/lshigami/studyaid/internal/dto"
	"github.com/lshigami/studyaid/internal/model"
	"github.com/lshigami/studyaid/internal/repository"
	"github.com/lshigami/studyaid/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRouter(t *testing.T) (*gin.Engine, *authpkg.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.Models()...))

	issuer, err := authpkg.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	api := r.Group("/api")
	NewAuthController(service.NewAuthService(repository.NewUserRepository(db), issuer)).RegisterRoutes(api, nil)
	return r, issuer
}

func post(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthController_RegisterAndLogin(t *testing.T) {
	r, issuer := newRouter(t)

	w := post(r, "/api/register", dto.RegisterRequest{Name: "Minh", Phone: "0912345678", Password: "secret1", Grade: "8"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var registered dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "Minh", registered.User.Name)
	assert.NotContains(t, w.Body.String(), "secret1")

	userID, err := issuer.Verify(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, userID)

	w = post(r, "/api/login", dto.LoginRequest{Phone: "0912345678", Password: "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var loggedIn dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loggedIn))
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestAuthController_Rejections(t *testing.T) {
	r, _ := newRouter(t)
	require.Equal(t, http.StatusCreated, post(r, "/api/register", dto.RegisterRequest{Name: "Lan", Phone: "0987654321", Password: "secret1"}).Code)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"duplicate phone", "/api/register", dto.RegisterRequest{Name: "Other", Phone: "0987654321", Password: "secret2"}, http.StatusConflict},
		{"short password", "/api/register", dto.RegisterRequest{Name: "New", Phone: "0900000000", Password: "123"}, http.StatusBadRequest},
		{"password over 72 bytes", "/api/register", dto.RegisterRequest{Name: "Long", Phone: "0900000002", Password: strings.Repeat("a", 80)}, http.StatusBadRequest},
		{"multibyte password over 72 bytes", "/api/register", dto.RegisterRequest{Name: "Long", Phone: "0900000003", Password: strings.Repeat("é", 40)}, http.StatusBadRequest},
		{"missing name", "/api/register", map[string]string{"phone": "0900000001", "password": "secret1"}, http.StatusBadRequest},
		{"wrong password", "/api/login", dto.LoginRequest{Phone: "0987654321", Password: "nope123"}, http.StatusUnauthorized},
		{"unknown phone", "/api/login", dto.LoginRequest{Phone: "0000000000", Password: "secret1"}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(r, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}
