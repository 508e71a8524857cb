package rating

import "context"

// Repository defines the interface for rating data storage.
type Repository interface {
	Create(ctx context.Context, rt *Rating) error
	ListByProduct(ctx context.Context, productID string) ([]*Rating, error)
	Summarize(ctx context.Context, productID string) (*Summary, error)
}
