package offer

import "context"

// Repository defines the interface for offer data storage.
type Repository interface {
	Create(ctx context.Context, o *Offer) error
	GetByID(ctx context.Context, id string) (*Offer, error)
	List(ctx context.Context, activeOnly bool) ([]*Offer, error)
	Search(ctx context.Context, term string, activeOnly bool) ([]*Offer, error)
	Update(ctx context.Context, o *Offer) error
	SetActive(ctx context.Context, id string, active bool) (*Offer, error)
	Delete(ctx context.Context, id string) error
}
