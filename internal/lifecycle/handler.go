package lifecycle

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lacarta/lacarta-backend/internal/modules/auth"
	"github.com/lacarta/lacarta-backend/internal/modules/offer"
)

// BoardItem is one offer as the board renders it, annotated with its
// evaluated lifecycle state.
type BoardItem struct {
	*offer.Offer
	Vigente        bool   `json:"vigente"`
	NearExpiration bool   `json:"near_expiration"`
	Remaining      string `json:"remaining"`
}

// Handler serves the live offer board from the engine's store. Queries feed
// the debounced search stream; the response always renders the current
// working set, which catches up asynchronously.
type Handler struct {
	store    *Store
	searcher *Searcher
	now      func() time.Time
}

func NewHandler(store *Store, searcher *Searcher) *Handler {
	return &Handler{store: store, searcher: searcher, now: time.Now}
}

func (h *Handler) RegisterRoutes(router *chi.Mux, mw *auth.Middleware) {
	router.With(mw.WithRole).Get("/api/v1/offers/board", h.board)
}

func (h *Handler) board(w http.ResponseWriter, r *http.Request) {
	if h.searcher != nil && r.URL.Query().Has("q") {
		h.searcher.Submit(r.URL.Query().Get("q"))
	}

	now := h.now()
	role := auth.RoleFromContext(r.Context())
	visible := VisibleOffers(h.store.All(), role)

	items := make([]BoardItem, 0, len(visible))
	for _, o := range visible {
		items = append(items, BoardItem{
			Offer:          o,
			Vigente:        IsVigente(o, now),
			NearExpiration: IsNearExpiration(o, now),
			Remaining:      RemainingTime(o, now),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}
