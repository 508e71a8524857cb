package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req ProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, categoryID string, activeOnly bool) ([]*Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, req CategoryRequest) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ResolveProductRefs(ctx context.Context, ids []string) ([]ResolvedRef, error)
	ResolveCategoryRefs(ctx context.Context, ids []string) ([]ResolvedRef, error)
}

// ProductRequest holds the data for creating or updating a product.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  string  `json:"category_id"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"image_url"`
	Active      *bool   `json:"active"`
}

// CategoryRequest holds the data for creating a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, err
	}
	currency := req.Currency
	if currency == "" {
		currency = "ARS"
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	p := &Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  categoryID,
		Price:       req.Price,
		Currency:    currency,
		ImageURL:    req.ImageURL,
		Active:      active,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, categoryID string, activeOnly bool) ([]*Product, error) {
	return s.repo.ListProducts(ctx, categoryID, activeOnly)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	p, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, err
		}
		p.CategoryID = categoryID
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	if req.Currency != "" {
		p.Currency = req.Currency
	}
	p.ImageURL = req.ImageURL
	if req.Active != nil {
		p.Active = *req.Active
	}
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *service) CreateCategory(ctx context.Context, req CategoryRequest) (*Category, error) {
	c := &Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *service) ResolveProductRefs(ctx context.Context, ids []string) ([]ResolvedRef, error) {
	names, err := s.repo.ProductNames(ctx, ids)
	if err != nil {
		return nil, err
	}
	return resolve(ids, names), nil
}

func (s *service) ResolveCategoryRefs(ctx context.Context, ids []string) ([]ResolvedRef, error) {
	names, err := s.repo.CategoryNames(ctx, ids)
	if err != nil {
		return nil, err
	}
	return resolve(ids, names), nil
}

func resolve(ids []string, names map[string]string) []ResolvedRef {
	refs := make([]ResolvedRef, 0, len(ids))
	for _, id := range ids {
		name, ok := names[id]
		refs = append(refs, ResolvedRef{ID: id, Name: name, Populated: ok})
	}
	return refs
}
