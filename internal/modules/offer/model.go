package offer

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a time-bounded discount promotion applicable to products and/or
// categories. An empty applicability set means the offer applies to everything.
type Offer struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description,omitempty"`
	DiscountPercent      float64    `json:"discount_percent"`
	ValidFrom            *time.Time `json:"valid_from,omitempty"`
	ValidTo              *time.Time `json:"valid_to,omitempty"`
	Active               bool       `json:"active"`
	ApplicableProducts   []string   `json:"applicable_products,omitempty"`
	ApplicableCategories []string   `json:"applicable_categories,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// Window reports the validity interval. ok is false when the offer has no
// closing date, in which case it never expires.
func (o *Offer) Window() (from, to *time.Time, ok bool) {
	return o.ValidFrom, o.ValidTo, o.ValidTo != nil
}
