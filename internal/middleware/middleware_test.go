package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sumaiya48/summer-camp-server/internal/config"
	"github.com/sumaiya48/summer-camp-server/internal/model"
	"github.com/sumaiya48/summer-camp-server/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testAuthService() *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWTSecret: "middleware-test-secret",
		JWTExpiry: time.Hour,
	})
}

type roleMap map[string]model.Role

func (m roleMap) ResolveRole(_ context.Context, email string) (model.Role, error) {
	if role, ok := m[email]; ok {
		return role, nil
	}
	return model.RoleStudent, nil
}

func newGatedRouter(auth *service.AuthService, roles roleMap, required model.Role) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{RequireToken(auth)}
	if required != "" {
		handlers = append(handlers, RequireRole(roles, required))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetUserEmail(c)})
	})
	r.GET("/protected", handlers...)
	return r
}

func doGet(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func assertErrorBody(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	var body struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	if !body.Error || body.Message == "" {
		t.Errorf("want {error:true,message:...}, got %s", w.Body.String())
	}
}

func TestRequireTokenMissingHeader(t *testing.T) {
	r := newGatedRouter(testAuthService(), nil, "")

	w := doGet(t, r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	assertErrorBody(t, w)
}

func TestRequireTokenInvalidToken(t *testing.T) {
	r := newGatedRouter(testAuthService(), nil, "")

	w := doGet(t, r, "Bearer not-a-real-token")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	assertErrorBody(t, w)
}

func TestRequireTokenExpiredToken(t *testing.T) {
	expiredIssuer := service.NewAuthService(&config.Config{
		JWTSecret: "middleware-test-secret",
		JWTExpiry: -time.Minute,
	})
	token, err := expiredIssuer.IssueToken(&model.User{Email: "late@example.com"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	r := newGatedRouter(testAuthService(), nil, "")

	w := doGet(t, r, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	assertErrorBody(t, w)
}

func TestRequireTokenValid(t *testing.T) {
	auth := testAuthService()
	token, err := auth.IssueToken(&model.User{Email: "ok@example.com"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	r := newGatedRouter(auth, nil, "")

	w := doGet(t, r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["email"] != "ok@example.com" {
		t.Errorf("handler saw email %q", body["email"])
	}
}

func TestRequireRoleMismatch(t *testing.T) {
	auth := testAuthService()
	token, err := auth.IssueToken(&model.User{Email: "student@example.com"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	roles := roleMap{"student@example.com": model.RoleStudent}
	r := newGatedRouter(auth, roles, model.RoleAdmin)

	w := doGet(t, r, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	assertErrorBody(t, w)
}

func TestRequireRoleUnknownUserDenied(t *testing.T) {
	auth := testAuthService()
	token, err := auth.IssueToken(&model.User{Email: "ghost@example.com"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	r := newGatedRouter(auth, roleMap{}, model.RoleInstructor)

	w := doGet(t, r, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRequireRoleMatch(t *testing.T) {
	auth := testAuthService()
	token, err := auth.IssueToken(&model.User{Email: "admin@example.com"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	roles := roleMap{"admin@example.com": model.RoleAdmin}
	r := newGatedRouter(auth, roles, model.RoleAdmin)

	w := doGet(t, r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
}
