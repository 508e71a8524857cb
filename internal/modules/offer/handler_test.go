package offer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lacarta/lacarta-backend/internal/modules/auth"
	"github.com/lacarta/lacarta-backend/internal/modules/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var handlerSecret = []byte("handler-secret")

type noopAuthService struct{}

func (noopAuthService) Login(ctx context.Context, email, password string) (*auth.LoginResult, error) {
	return nil, auth.ErrInvalidCredentials
}

func (noopAuthService) RoleFor(ctx context.Context, userID string) (user.Role, error) {
	return user.RoleCliente, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	router := chi.NewRouter()
	mw := auth.NewMiddleware(noopAuthService{}, handlerSecret)
	NewHandler(NewService(repo)).RegisterRoutes(router, mw)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, repo
}

func token(t *testing.T, role string) string {
	t.Helper()
	claims := &auth.Claims{
		Role: role,
		StandardClaims: jwt.StandardClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handlerSecret)
	require.NoError(t, err)
	return signed
}

func seed(t *testing.T, repo *fakeRepo) (active, inactive *Offer) {
	t.Helper()
	active = &Offer{ID: uuid.New(), Name: "active", Active: true}
	inactive = &Offer{ID: uuid.New(), Name: "inactive", Active: false}
	require.NoError(t, repo.Create(context.Background(), active))
	require.NoError(t, repo.Create(context.Background(), inactive))
	return active, inactive
}

func get(t *testing.T, url, bearer string) (*http.Response, []*Offer) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var offers []*Offer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&offers))
	return resp, offers
}

func TestListScopesByRole(t *testing.T) {
	srv, repo := newTestServer(t)
	seed(t, repo)

	t.Run("anonymous sees active only", func(t *testing.T) {
		resp, offers := get(t, srv.URL+"/api/v1/offers", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, offers, 1)
		assert.Equal(t, "active", offers[0].Name)
	})

	t.Run("cliente sees active only", func(t *testing.T) {
		_, offers := get(t, srv.URL+"/api/v1/offers", token(t, "cliente"))
		require.Len(t, offers, 1)
		assert.Equal(t, "active", offers[0].Name)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		_, offers := get(t, srv.URL+"/api/v1/offers", token(t, "admin"))
		assert.Len(t, offers, 2)
	})
}

func TestMutationsRequireAdminLevel(t *testing.T) {
	srv, repo := newTestServer(t)
	active, _ := seed(t, repo)
	url := srv.URL + "/api/v1/offers/" + active.ID.String() + "/deactivate"

	patch := func(bearer string) int {
		req, err := http.NewRequest(http.MethodPatch, url, nil)
		require.NoError(t, err)
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusUnauthorized, patch(""))
	assert.Equal(t, http.StatusForbidden, patch(token(t, "cliente")))
	assert.Equal(t, http.StatusOK, patch(token(t, "supervisor_ventas")))

	o, err := repo.GetByID(context.Background(), active.ID.String())
	require.NoError(t, err)
	assert.False(t, o.Active)
}

func TestCreateRejectsInvalidWindow(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"name":"x","discount_percent":10,"valid_from":"2024-02-01T00:00:00Z","valid_to":"2024-01-01T00:00:00Z"}`
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/offers", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token(t, "admin"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
