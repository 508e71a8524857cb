package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service defines sales business logic.
type Service interface {
	RecordSale(ctx context.Context, req SaleRequest) (*Sale, error)
	GetSale(ctx context.Context, id string) (*Sale, error)
	ListSales(ctx context.Context, from, to time.Time) ([]*Sale, error)
	ListSalesByCustomer(ctx context.Context, customerID string) ([]*Sale, error)
}

// SaleRequest holds the data for recording a sale.
type SaleRequest struct {
	CustomerID string            `json:"customer_id"`
	Channel    SaleChannel       `json:"channel"`
	Discount   float64           `json:"discount"`
	Currency   string            `json:"currency"`
	OfferIDs   []string          `json:"offer_ids"`
	Notes      string            `json:"notes"`
	Items      []SaleItemRequest `json:"items"`
}

// SaleItemRequest is one line of a sale being recorded.
type SaleItemRequest struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) RecordSale(ctx context.Context, req SaleRequest) (*Sale, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("a sale needs at least one item")
	}
	if req.Channel == "" {
		req.Channel = ChannelLocal
	}
	currency := req.Currency
	if currency == "" {
		currency = "ARS"
	}

	sale := &Sale{
		ID:         uuid.New(),
		SaleNumber: newSaleNumber(),
		Channel:    req.Channel,
		Discount:   req.Discount,
		Currency:   currency,
		OfferIDs:   req.OfferIDs,
		Notes:      req.Notes,
	}
	if req.CustomerID != "" {
		customerID, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, err
		}
		sale.CustomerID = &customerID
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item %s: quantity must be positive", item.ProductID)
		}
		line := &SaleItem{
			ID:          uuid.New(),
			SaleID:      sale.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   float64(item.Quantity) * item.UnitPrice,
		}
		sale.Items = append(sale.Items, line)
		sale.Subtotal += line.LineTotal
	}
	sale.Total = sale.Subtotal - sale.Discount
	if sale.Total < 0 {
		return nil, fmt.Errorf("discount exceeds subtotal")
	}

	if err := s.repo.CreateSale(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *service) GetSale(ctx context.Context, id string) (*Sale, error) {
	return s.repo.GetSaleByID(ctx, id)
}

func (s *service) ListSales(ctx context.Context, from, to time.Time) ([]*Sale, error) {
	return s.repo.ListSales(ctx, from, to)
}

func (s *service) ListSalesByCustomer(ctx context.Context, customerID string) ([]*Sale, error) {
	return s.repo.ListSalesByCustomer(ctx, customerID)
}

func newSaleNumber() string {
	return fmt.Sprintf("V-%s", time.Now().Format("20060102-150405.000"))
}
