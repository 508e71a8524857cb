package auth

import (
	"context"

	"github.com/dgrijalva/jwt-go"
	"github.com/lacarta/lacarta-backend/internal/modules/user"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// RoleFor resolves the role of a logged-in user, preferring the
	// session-scoped role cache over a repository lookup.
	RoleFor(ctx context.Context, userID string) (user.Role, error)
}

// LoginResult carries the signed token and the authenticated user.
type LoginResult struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// Claims is the JWT payload issued at login. Role travels in the token so
// most requests never touch the user store.
type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}
