package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mydahanu/directory/internal/domain"
)

type BannerStore interface {
	Banners() []domain.Banner
	AddBanner(ctx context.Context, in domain.BannerInput) (domain.Banner, error)
	RemoveBanner(ctx context.Context, id string) error
}

type BannerHandler struct {
	store BannerStore
}

func NewBannerHandler(store BannerStore) *BannerHandler {
	return &BannerHandler{store: store}
}

func (h *BannerHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, h.store.Banners())
}

func (h *BannerHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req createBannerRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		validationError(w, r, msg)
		return
	}

	b, err := h.store.AddBanner(r.Context(), req.input())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, b)
}

func (h *BannerHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemoveBanner(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
