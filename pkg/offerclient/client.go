// Package offerclient is an HTTP client for the offer API. It satisfies
// lifecycle.Source, so the reconciliation engine can run against a remote
// backend.
package offerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lacarta/lacarta-backend/internal/modules/offer"
)

// Authentication failures are surfaced distinctly because the engine treats
// them as non-retryable.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// StatusError is any other non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("offer api: unexpected status %d: %s", e.Code, e.Body)
}

// Client talks to one offer API backend.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the backend at baseURL. token may be empty for
// read-only anonymous access.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) List(ctx context.Context) ([]*offer.Offer, error) {
	var offers []*offer.Offer
	err := c.do(ctx, http.MethodGet, "/api/v1/offers", nil, &offers)
	return offers, err
}

func (c *Client) Search(ctx context.Context, term string) ([]*offer.Offer, error) {
	var offers []*offer.Offer
	path := "/api/v1/offers/search?q=" + url.QueryEscape(term)
	err := c.do(ctx, http.MethodGet, path, nil, &offers)
	return offers, err
}

func (c *Client) Get(ctx context.Context, id string) (*offer.Offer, error) {
	o := &offer.Offer{}
	err := c.do(ctx, http.MethodGet, "/api/v1/offers/"+id, nil, o)
	return o, err
}

func (c *Client) Create(ctx context.Context, req offer.OfferRequest) (*offer.Offer, error) {
	o := &offer.Offer{}
	err := c.do(ctx, http.MethodPost, "/api/v1/offers", req, o)
	return o, err
}

func (c *Client) Update(ctx context.Context, id string, req offer.OfferRequest) (*offer.Offer, error) {
	o := &offer.Offer{}
	err := c.do(ctx, http.MethodPut, "/api/v1/offers/"+id, req, o)
	return o, err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/offers/"+id, nil, nil)
}

func (c *Client) Activate(ctx context.Context, id string) (*offer.Offer, error) {
	o := &offer.Offer{}
	err := c.do(ctx, http.MethodPatch, "/api/v1/offers/"+id+"/activate", nil, o)
	return o, err
}

func (c *Client) Deactivate(ctx context.Context, id string) (*offer.Offer, error) {
	o := &offer.Offer{}
	err := c.do(ctx, http.MethodPatch, "/api/v1/offers/"+id+"/deactivate", nil, o)
	return o, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthenticated
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
