package rating

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines rating business logic.
type Service interface {
	RateProduct(ctx context.Context, req RateRequest) (*Rating, error)
	ListByProduct(ctx context.Context, productID string) ([]*Rating, error)
	Summarize(ctx context.Context, productID string) (*Summary, error)
}

// RateRequest holds the data for rating a product.
type RateRequest struct {
	ProductID string `json:"product_id"`
	UserID    string `json:"user_id"`
	Score     int    `json:"score"`
	Comment   string `json:"comment"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) RateProduct(ctx context.Context, req RateRequest) (*Rating, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, fmt.Errorf("score must be between 1 and 5")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, err
	}
	rt := &Rating{
		ID:        uuid.New(),
		ProductID: req.ProductID,
		UserID:    userID,
		Score:     req.Score,
		Comment:   req.Comment,
	}
	if err := s.repo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *service) ListByProduct(ctx context.Context, productID string) ([]*Rating, error) {
	return s.repo.ListByProduct(ctx, productID)
}

func (s *service) Summarize(ctx context.Context, productID string) (*Summary, error) {
	return s.repo.Summarize(ctx, productID)
}
