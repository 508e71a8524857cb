package catalog

import "context"

// Repository defines the interface for catalog data storage.
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProductByID(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, categoryID string, activeOnly bool) ([]*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, c *Category) error
	ListCategories(ctx context.Context) ([]*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// ProductNames and CategoryNames return display names keyed by id for
	// the subset of ids that exist.
	ProductNames(ctx context.Context, ids []string) (map[string]string, error)
	CategoryNames(ctx context.Context, ids []string) (map[string]string, error)
}
