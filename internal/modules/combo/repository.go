package combo

import "context"

// Repository defines the interface for combo data storage.
type Repository interface {
	Create(ctx context.Context, c *Combo) error
	GetByID(ctx context.Context, id string) (*Combo, error)
	List(ctx context.Context, activeOnly bool) ([]*Combo, error)
	Update(ctx context.Context, c *Combo) error
	SetActive(ctx context.Context, id string, active bool) (*Combo, error)
	Delete(ctx context.Context, id string) error
}
