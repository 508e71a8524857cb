package offerclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lacarta/lacarta-backend/internal/modules/offer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAndSearch(t *testing.T) {
	o := &offer.Offer{ID: uuid.New(), Name: "dos por uno", Active: true}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/offers":
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode([]*offer.Offer{o})
		case "/api/v1/offers/search":
			assert.Equal(t, "dos", r.URL.Query().Get("q"))
			json.NewEncoder(w).Encode([]*offer.Offer{o})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "secret")

	offers, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, o.ID, offers[0].ID)

	offers, err = c.Search(context.Background(), "dos")
	require.NoError(t, err)
	require.Len(t, offers, 1)
}

func TestDeactivate(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/offers/"+id.String()+"/deactivate", r.URL.Path)
		json.NewEncoder(w).Encode(&offer.Offer{ID: id, Active: false})
	}))
	defer srv.Close()

	o, err := New(srv.URL, "secret").Deactivate(context.Background(), id.String())
	require.NoError(t, err)
	assert.False(t, o.Active)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(t *testing.T, err error)
	}{
		{http.StatusUnauthorized, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrUnauthenticated)
		}},
		{http.StatusForbidden, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrForbidden)
		}},
		{http.StatusInternalServerError, func(t *testing.T, err error) {
			var se *StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, http.StatusInternalServerError, se.Code)
		}},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tt.status)
		}))
		_, err := New(srv.URL, "").List(context.Background())
		require.Error(t, err)
		tt.check(t, err)
		srv.Close()
	}
}

func TestCreateSendsPayload(t *testing.T) {
	validTo := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req offer.OfferRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "happy hour", req.Name)
		require.NotNil(t, req.ValidTo)
		assert.True(t, req.ValidTo.Equal(validTo))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(&offer.Offer{ID: uuid.New(), Name: req.Name})
	}))
	defer srv.Close()

	o, err := New(srv.URL, "secret").Create(context.Background(), offer.OfferRequest{
		Name:    "happy hour",
		ValidTo: &validTo,
	})
	require.NoError(t, err)
	assert.Equal(t, "happy hour", o.Name)
}
