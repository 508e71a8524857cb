package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products on the menu.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Product is a menu item.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CategoryID  uuid.UUID `json:"category_id"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"image_url,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ResolvedRef is a foreign reference resolved at the catalog boundary: either
// populated with the entity's display name or left as a bare id when the
// entity is unknown. Callers never pass around an ambiguous id-or-entity
// value.
type ResolvedRef struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Populated bool   `json:"populated"`
}
