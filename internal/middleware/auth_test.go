package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quiz_api_backend/internal/config"
	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret-0123456789abcdef"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func newAuthRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := r.Group("/", AuthMiddleware(cfg))
	auth.GET("/me", func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	admin := auth.Group("/admin", RoleMiddleware(model.Admin))
	admin.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r := newAuthRouter(testConfig())
	if w := doRequest(r, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := testConfig()
	r := newAuthRouter(cfg)

	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Username: "bob", Role: model.NormalUser}
	token, err := util.GenerateAccessToken(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	w := doRequest(r, "/me", token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	cfg := testConfig()
	r := newAuthRouter(cfg)

	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Username: "bob", Role: model.NormalUser}
	pair, err := util.GenerateTokenPair(user, cfg.JWT.Secret, time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if w := doRequest(r, "/me", pair.Refresh); w.Code != http.StatusUnauthorized {
		t.Fatalf("refresh token must not pass as access token, got %d", w.Code)
	}
}

func TestAuthMiddlewareTamperedToken(t *testing.T) {
	cfg := testConfig()
	r := newAuthRouter(cfg)

	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Username: "bob", Role: model.NormalUser}
	token, err := util.GenerateAccessToken(user, "some-other-secret", cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if w := doRequest(r, "/me", token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for foreign signature, got %d", w.Code)
	}
}

func TestRoleMiddlewareForbidsNormalUser(t *testing.T) {
	cfg := testConfig()
	r := newAuthRouter(cfg)

	user := &model.User{BaseModel: model.BaseModel{ID: 2}, Username: "carol", Role: model.NormalUser}
	token, err := util.GenerateAccessToken(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if w := doRequest(r, "/admin/ping", token); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRoleMiddlewareAllowsAdmin(t *testing.T) {
	cfg := testConfig()
	r := newAuthRouter(cfg)

	user := &model.User{BaseModel: model.BaseModel{ID: 3}, Username: "root", Role: model.Admin}
	token, err := util.GenerateAccessToken(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if w := doRequest(r, "/admin/ping", token); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
