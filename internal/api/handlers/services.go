package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mydahanu/directory/internal/domain"
)

type ServiceStore interface {
	Service(id string) (domain.Service, bool)
	FeaturedServices() []domain.Service
	SearchServices(query, categoryID string) []domain.Service
	AddService(ctx context.Context, in domain.ServiceInput) (domain.Service, error)
	UpdateService(ctx context.Context, id string, patch domain.ServicePatch) (domain.Service, error)
	RemoveService(ctx context.Context, id string) error
}

type ServiceHandler struct {
	store ServiceStore
}

func NewServiceHandler(store ServiceStore) *ServiceHandler {
	return &ServiceHandler{store: store}
}

// ListServices searches by ?q= and ?category=. Without either it lists
// every service.
func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	respond(w, r, http.StatusOK, h.store.SearchServices(q.Get("q"), q.Get("category")))
}

func (h *ServiceHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, h.store.FeaturedServices())
}

func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	s, ok := h.store.Service(chi.URLParam(r, "id"))
	if !ok {
		notFound(w, r, "service not found")
		return
	}
	respond(w, r, http.StatusOK, s)
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		validationError(w, r, msg)
		return
	}

	s, err := h.store.AddService(r.Context(), req.input())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, s)
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req updateServiceRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		validationError(w, r, msg)
		return
	}

	s, err := h.store.UpdateService(r.Context(), chi.URLParam(r, "id"), req.patch())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, s)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemoveService(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
