package combo

import (
	"time"

	"github.com/google/uuid"
)

// Combo is a fixed-price bundle of products sold as one promotion.
type Combo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ProductIDs  []string  `json:"product_ids"`
	ImageURL    string    `json:"image_url,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
