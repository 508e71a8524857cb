package combo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines combo business logic.
type Service interface {
	List(ctx context.Context, activeOnly bool) ([]*Combo, error)
	Get(ctx context.Context, id string) (*Combo, error)
	Create(ctx context.Context, req ComboRequest) (*Combo, error)
	Update(ctx context.Context, id string, req ComboRequest) (*Combo, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) (*Combo, error)
	Deactivate(ctx context.Context, id string) (*Combo, error)
}

// ComboRequest holds the data for creating or updating a combo.
type ComboRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ProductIDs  []string `json:"product_ids"`
	ImageURL    string   `json:"image_url"`
	Active      *bool    `json:"active"`
}

func (r ComboRequest) validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Price <= 0 {
		return fmt.Errorf("price must be greater than 0")
	}
	if len(r.ProductIDs) < 2 {
		return fmt.Errorf("a combo needs at least two products")
	}
	return nil
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) List(ctx context.Context, activeOnly bool) ([]*Combo, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *service) Get(ctx context.Context, id string) (*Combo, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req ComboRequest) (*Combo, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	c := &Combo{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ProductIDs:  req.ProductIDs,
		ImageURL:    req.ImageURL,
		Active:      active,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, req ComboRequest) (*Combo, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = req.Name
	c.Description = req.Description
	c.Price = req.Price
	c.ProductIDs = req.ProductIDs
	c.ImageURL = req.ImageURL
	if req.Active != nil {
		c.Active = *req.Active
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Activate(ctx context.Context, id string) (*Combo, error) {
	return s.repo.SetActive(ctx, id, true)
}

func (s *service) Deactivate(ctx context.Context, id string) (*Combo, error) {
	return s.repo.SetActive(ctx, id, false)
}
