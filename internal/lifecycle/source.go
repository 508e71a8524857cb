// Package lifecycle maintains a working set of offers, periodically evaluates
// each against the clock, and reconciles local and remote state when an offer's
// validity window closes while it is still marked active.
package lifecycle

import (
	"context"

	"github.com/lacarta/lacarta-backend/internal/modules/offer"
)

// Source is the backend the engine reads offers from and issues deactivations
// against. The in-process offer service satisfies it, as does the HTTP client
// in pkg/offerclient.
type Source interface {
	List(ctx context.Context) ([]*offer.Offer, error)
	Search(ctx context.Context, term string) ([]*offer.Offer, error)
	Deactivate(ctx context.Context, id string) (*offer.Offer, error)
}
