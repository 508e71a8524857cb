package sales

import (
	"context"
	"time"
)

// Repository defines the interface for sales record storage.
type Repository interface {
	CreateSale(ctx context.Context, s *Sale) error
	GetSaleByID(ctx context.Context, id string) (*Sale, error)
	ListSales(ctx context.Context, from, to time.Time) ([]*Sale, error)
	ListSalesByCustomer(ctx context.Context, customerID string) ([]*Sale, error)
}
