package rating

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a customer's score for a product, 1 to 5, with an optional
// comment.
type Rating struct {
	ID        uuid.UUID `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary aggregates the ratings of one product.
type Summary struct {
	ProductID string  `json:"product_id"`
	Count     int     `json:"count"`
	Average   float64 `json:"average"`
}
