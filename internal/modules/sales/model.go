package sales

import (
	"time"

	"github.com/google/uuid"
)

// SaleChannel indicates how the sale was placed.
type SaleChannel string

const (
	ChannelLocal    SaleChannel = "LOCAL"
	ChannelDelivery SaleChannel = "DELIVERY"
	ChannelTakeaway SaleChannel = "TAKEAWAY"
)

// Sale is an immutable record of a completed sale. Records are written once
// and never edited; corrections are new records.
type Sale struct {
	ID         uuid.UUID   `json:"id"`
	CustomerID *uuid.UUID  `json:"customer_id,omitempty"` // nil for walk-in sales
	SaleNumber string      `json:"sale_number"`
	Channel    SaleChannel `json:"channel"`
	Subtotal   float64     `json:"subtotal"`
	Discount   float64     `json:"discount"`
	Total      float64     `json:"total"`
	Currency   string      `json:"currency"`
	OfferIDs   []string    `json:"offer_ids,omitempty"` // offers applied at checkout
	Notes      string      `json:"notes,omitempty"`
	Items      []*SaleItem `json:"items,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// SaleItem is a single line within a sale.
type SaleItem struct {
	ID          uuid.UUID `json:"id"`
	SaleID      uuid.UUID `json:"sale_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	LineTotal   float64   `json:"line_total"`
}
