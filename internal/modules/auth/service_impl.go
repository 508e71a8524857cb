package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/lacarta/lacarta-backend/internal/modules/user"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the email/password pair does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenLifetime = 24 * time.Hour

type service struct {
	userRepo user.Repository
	roles    *RoleCache
	secret   []byte
}

// NewService creates a new auth service. roles may be nil, in which case every
// RoleFor call falls through to the user repository.
func NewService(userRepo user.Repository, roles *RoleCache, secret []byte) Service {
	return &service{userRepo: userRepo, roles: roles, secret: secret}
}

func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(tokenLifetime)
	claims := &Claims{
		Role: string(u.Role),
		StandardClaims: jwt.StandardClaims{
			Subject:   u.ID.String(),
			ExpiresAt: expirationTime.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	if s.roles != nil {
		if err := s.roles.Set(ctx, u.ID.String(), u.Role); err != nil {
			// Cache misses fall back to the repository; not fatal.
			log.Printf("auth: role cache set failed for %s: %v", u.ID, err)
		}
	}

	return &LoginResult{Token: tokenString, User: u}, nil
}

func (s *service) RoleFor(ctx context.Context, userID string) (user.Role, error) {
	if s.roles != nil {
		if role, ok, err := s.roles.Get(ctx, userID); err == nil && ok {
			return role, nil
		}
	}

	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if s.roles != nil {
		if err := s.roles.Set(ctx, userID, u.Role); err != nil {
			log.Printf("auth: role cache set failed for %s: %v", userID, err)
		}
	}
	return u.Role, nil
}
