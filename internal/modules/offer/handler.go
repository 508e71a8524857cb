package offer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lacarta/lacarta-backend/internal/modules/auth"
)

// Handler exposes offer HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterRoutes mounts the offer endpoints. Reads are public but scoped by
// the caller's role: unprivileged callers only ever see active offers.
// Mutations are admin-level.
func (h *Handler) RegisterRoutes(router *chi.Mux, mw *auth.Middleware) {
	router.Route("/api/v1/offers", func(r chi.Router) {
		r.With(mw.WithRole).Get("/", h.list)
		r.With(mw.WithRole).Get("/search", h.search)
		r.Get("/{id}", h.get)

		r.With(mw.RequireAdminLevel).Post("/", h.create)
		r.With(mw.RequireAdminLevel).Put("/{id}", h.update)
		r.With(mw.RequireAdminLevel).Delete("/{id}", h.delete)
		r.With(mw.RequireAdminLevel).Patch("/{id}/activate", h.activate)
		r.With(mw.RequireAdminLevel).Patch("/{id}/deactivate", h.deactivate)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		offers []*Offer
		err    error
	)
	if auth.RoleFromContext(r.Context()).AdminLevel() {
		offers, err = h.service.List(r.Context())
	} else {
		offers, err = h.service.ListActive(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, offers)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !auth.RoleFromContext(r.Context()).AdminLevel() {
		active := offers[:0]
		for _, o := range offers {
			if o.Active {
				active = append(active, o)
			}
		}
		offers = active
	}
	respond(w, http.StatusOK, offers)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req OfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	o, err := h.service.Create(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req OfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	o, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Activate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Deactivate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, o)
}

func statusFor(err error) int {
	if errors.Is(err, ErrInvalidWindow) || errors.Is(err, ErrInvalidDiscount) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
