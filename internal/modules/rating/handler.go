package rating

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lacarta/lacarta-backend/internal/modules/auth"
)

// Handler exposes rating HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, mw *auth.Middleware) {
	router.Route("/api/v1/ratings", func(r chi.Router) {
		r.With(mw.RequireAuth).Post("/", h.rate)
		r.Get("/product/{productID}", h.listByProduct)
		r.Get("/product/{productID}/summary", h.summary)
	})
}

func (h *Handler) rate(w http.ResponseWriter, r *http.Request) {
	var req RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// The rating is always attributed to the caller, not to whatever user
	// id arrived in the payload.
	if id, ok := auth.UserIDFromContext(r.Context()); ok {
		req.UserID = id
	}
	rt, err := h.service.RateProduct(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusCreated, rt)
}

func (h *Handler) listByProduct(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.service.ListByProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, ratings)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.Summarize(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, s)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
