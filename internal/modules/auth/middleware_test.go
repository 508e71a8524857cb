package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/lacarta/lacarta-backend/internal/modules/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, role string, secret []byte) string {
	t.Helper()
	claims := &Claims{
		Role: role,
		StandardClaims: jwt.StandardClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

type staticRoleService struct{ role user.Role }

func (s staticRoleService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	return nil, ErrInvalidCredentials
}

func (s staticRoleService) RoleFor(ctx context.Context, userID string) (user.Role, error) {
	return s.role, nil
}

func roleEcho() (http.Handler, *user.Role) {
	var seen user.Role
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}), &seen
}

func TestWithRoleAnnotatesValidToken(t *testing.T) {
	mw := NewMiddleware(staticRoleService{}, testSecret)
	next, seen := roleEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", testSecret))
	rec := httptest.NewRecorder()
	mw.WithRole(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.RoleAdmin, *seen)
}

func TestWithRoleAnonymousDefaultsToCliente(t *testing.T) {
	mw := NewMiddleware(staticRoleService{}, testSecret)
	next, seen := roleEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mw.WithRole(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.RoleCliente, *seen)
}

func TestWithRoleFallsBackToRoleServiceForLegacyTokens(t *testing.T) {
	// Tokens issued before roles travelled in claims carry no role; the
	// session cache (or the user store behind it) resolves it.
	mw := NewMiddleware(staticRoleService{role: user.RoleSupervisorVentas}, testSecret)
	next, seen := roleEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "", testSecret))
	rec := httptest.NewRecorder()
	mw.WithRole(next).ServeHTTP(rec, req)

	assert.Equal(t, user.RoleSupervisorVentas, *seen)
}

func TestRequireAuthRejectsMissingOrBadTokens(t *testing.T) {
	mw := NewMiddleware(staticRoleService{}, testSecret)
	next, _ := roleEcho()

	tests := []struct {
		name  string
		setup func(*http.Request)
	}{
		{"no header", func(r *http.Request) {}},
		{"wrong scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") }},
		{"wrong key", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, "admin", []byte("other")))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			mw.RequireAuth(next).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireAdminLevel(t *testing.T) {
	mw := NewMiddleware(staticRoleService{}, testSecret)
	next, _ := roleEcho()

	tests := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"supervisor_cocina", http.StatusOK},
		{"supervisor_ventas", http.StatusOK},
		{"cliente", http.StatusForbidden},
		{"repartidor", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, tt.role, testSecret))
			rec := httptest.NewRecorder()
			mw.RequireAdminLevel(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
