package handlers

import (
	"context"
	"net/http"
	"strings"

	"mydahanu/directory/internal/domain"
)

type SessionStore interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, name, email, password string) (domain.User, error)
	Logout(ctx context.Context) error
	Current() (domain.User, bool)
}

type AuthHandler struct {
	session SessionStore
}

func NewAuthHandler(session SessionStore) *AuthHandler {
	return &AuthHandler{session: session}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		validationError(w, r, "email and password are required")
		return
	}

	u, err := h.session.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, u)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		validationError(w, r, "name, email and password are required")
		return
	}

	u, err := h.session.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, u)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Logout(r.Context()); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := h.session.Current()
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "unauthorized", "not signed in")
		return
	}
	respond(w, r, http.StatusOK, u)
}
