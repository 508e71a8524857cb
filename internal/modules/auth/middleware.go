package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/lacarta/lacarta-backend/internal/modules/user"
)

type contextKey string

const (
	userIDKey contextKey = "auth.userID"
	roleKey   contextKey = "auth.role"
)

// Middleware authenticates requests from bearer tokens and exposes the
// caller's role to downstream handlers.
type Middleware struct {
	service Service
	secret  []byte
}

func NewMiddleware(service Service, secret []byte) *Middleware {
	return &Middleware{service: service, secret: secret}
}

// RoleFromContext returns the caller's role. Anonymous callers are treated as
// cliente, the least-privileged role.
func RoleFromContext(ctx context.Context) user.Role {
	if role, ok := ctx.Value(roleKey).(user.Role); ok {
		return role
	}
	return user.RoleCliente
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

func (m *Middleware) parse(r *http.Request) (*Claims, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.secret, nil
		})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}

func (m *Middleware) resolve(r *http.Request) (context.Context, bool) {
	claims, ok := m.parse(r)
	if !ok {
		return r.Context(), false
	}
	role := user.Role(claims.Role)
	if !role.Valid() {
		resolved, err := m.service.RoleFor(r.Context(), claims.Subject)
		if err != nil {
			return r.Context(), false
		}
		role = resolved
	}
	ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
	ctx = context.WithValue(ctx, roleKey, role)
	return ctx, true
}

// WithRole annotates the request with the caller's role when a valid token is
// present and lets the request through either way. Listing endpoints use this
// to scope what unprivileged callers can see.
func (m *Middleware) WithRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctx, ok := m.resolve(r); ok {
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects requests without a valid token.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, ok := m.resolve(r)
		if !ok {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdminLevel rejects callers whose role lacks admin-level permissions.
func (m *Middleware) RequireAdminLevel(next http.Handler) http.Handler {
	return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !RoleFromContext(r.Context()).AdminLevel() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}
