package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mydahanu/directory/internal/domain"
)

// CategoryStore is what the category handlers need from the catalog.
type CategoryStore interface {
	Categories() []domain.Category
	Category(id string) (domain.Category, bool)
	Subcategory(id string) (domain.Subcategory, bool)
	ServicesBySubcategory(subcategoryID string) []domain.Service
	AddCategory(ctx context.Context, in domain.CategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error)
	RemoveCategory(ctx context.Context, id string) error
	AddSubcategory(ctx context.Context, categoryID string, in domain.SubcategoryInput) (domain.Subcategory, error)
	UpdateSubcategory(ctx context.Context, categoryID, subcategoryID string, patch domain.SubcategoryPatch) (domain.Subcategory, error)
	RemoveSubcategory(ctx context.Context, categoryID, subcategoryID string) error
}

type CategoryHandler struct {
	store CategoryStore
}

func NewCategoryHandler(store CategoryStore) *CategoryHandler {
	return &CategoryHandler{store: store}
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, h.store.Categories())
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.store.Category(chi.URLParam(r, "id"))
	if !ok {
		notFound(w, r, "category not found")
		return
	}
	respond(w, r, http.StatusOK, cat)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		validationError(w, r, msg)
		return
	}

	cat, err := h.store.AddCategory(r.Context(), req.input())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, cat)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var patch domain.CategoryPatch
	if !decode(w, r, &patch) {
		return
	}
	if msg := validateCategoryPatch(patch); msg != "" {
		validationError(w, r, msg)
		return
	}

	cat, err := h.store.UpdateCategory(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, cat)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemoveCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var req createSubcategoryRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		validationError(w, r, msg)
		return
	}

	sub, err := h.store.AddSubcategory(r.Context(), chi.URLParam(r, "id"), req.input())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, sub)
}

func (h *CategoryHandler) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	var patch domain.SubcategoryPatch
	if !decode(w, r, &patch) {
		return
	}
	if patch.ProviderCount != nil && *patch.ProviderCount < 0 {
		validationError(w, r, "providerCount must not be negative")
		return
	}

	sub, err := h.store.UpdateSubcategory(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "subId"), patch)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, sub)
}

func (h *CategoryHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	err := h.store.RemoveSubcategory(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "subId"))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) GetSubcategory(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.store.Subcategory(chi.URLParam(r, "id"))
	if !ok {
		notFound(w, r, "subcategory not found")
		return
	}
	respond(w, r, http.StatusOK, sub)
}

// ListSubcategoryServices lists the services of one subcategory. An unknown
// subcategory yields an empty list.
func (h *CategoryHandler) ListSubcategoryServices(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, h.store.ServicesBySubcategory(chi.URLParam(r, "id")))
}
