package offer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidWindow is returned when valid_from is after valid_to.
	ErrInvalidWindow = errors.New("valid_from must not be after valid_to")
	// ErrInvalidDiscount is returned for a discount outside 0-100.
	ErrInvalidDiscount = errors.New("discount_percent must be between 0 and 100")
)

// Service defines offer business logic.
type Service interface {
	List(ctx context.Context) ([]*Offer, error)
	ListActive(ctx context.Context) ([]*Offer, error)
	Search(ctx context.Context, term string) ([]*Offer, error)
	Get(ctx context.Context, id string) (*Offer, error)
	Create(ctx context.Context, req OfferRequest) (*Offer, error)
	Update(ctx context.Context, id string, req OfferRequest) (*Offer, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) (*Offer, error)
	Deactivate(ctx context.Context, id string) (*Offer, error)
}

// OfferRequest holds the data for creating or updating an offer.
type OfferRequest struct {
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	DiscountPercent      float64    `json:"discount_percent"`
	ValidFrom            *time.Time `json:"valid_from"`
	ValidTo              *time.Time `json:"valid_to"`
	Active               *bool      `json:"active"`
	ApplicableProducts   []string   `json:"applicable_products"`
	ApplicableCategories []string   `json:"applicable_categories"`
}

func (r OfferRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if r.DiscountPercent < 0 || r.DiscountPercent > 100 {
		return ErrInvalidDiscount
	}
	if r.ValidFrom != nil && r.ValidTo != nil && r.ValidFrom.After(*r.ValidTo) {
		return ErrInvalidWindow
	}
	return nil
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) List(ctx context.Context) ([]*Offer, error) {
	return s.repo.List(ctx, false)
}

func (s *service) ListActive(ctx context.Context) ([]*Offer, error) {
	return s.repo.List(ctx, true)
}

func (s *service) Search(ctx context.Context, term string) ([]*Offer, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.repo.List(ctx, false)
	}
	return s.repo.Search(ctx, term, false)
}

func (s *service) Get(ctx context.Context, id string) (*Offer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req OfferRequest) (*Offer, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	o := &Offer{
		ID:                   uuid.New(),
		Name:                 req.Name,
		Description:          req.Description,
		DiscountPercent:      req.DiscountPercent,
		ValidFrom:            req.ValidFrom,
		ValidTo:              req.ValidTo,
		Active:               active,
		ApplicableProducts:   req.ApplicableProducts,
		ApplicableCategories: req.ApplicableCategories,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Update(ctx context.Context, id string, req OfferRequest) (*Offer, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Name = req.Name
	o.Description = req.Description
	o.DiscountPercent = req.DiscountPercent
	o.ValidFrom = req.ValidFrom
	o.ValidTo = req.ValidTo
	if req.Active != nil {
		o.Active = *req.Active
	}
	o.ApplicableProducts = req.ApplicableProducts
	o.ApplicableCategories = req.ApplicableCategories
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Activate and Deactivate are idempotent: flipping an offer that is already
// in the requested state succeeds and returns the current row.
func (s *service) Activate(ctx context.Context, id string) (*Offer, error) {
	return s.repo.SetActive(ctx, id, true)
}

func (s *service) Deactivate(ctx context.Context, id string) (*Offer, error) {
	return s.repo.SetActive(ctx, id, false)
}
