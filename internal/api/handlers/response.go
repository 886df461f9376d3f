package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"

	"mydahanu/directory/internal/domain"
	"mydahanu/directory/internal/session"
)

// errorResponse is the body of every failed request
type errorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// response is the body of every successful request
type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	render.Status(r, status)
	render.JSON(w, r, response{
		Success: true,
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{
		Error:   code,
		Code:    status,
		Message: message,
	})
}

func badRequest(w http.ResponseWriter, r *http.Request, message string) {
	respondError(w, r, http.StatusBadRequest, "bad_request", message)
}

func validationError(w http.ResponseWriter, r *http.Request, message string) {
	respondError(w, r, http.StatusBadRequest, "validation_error", message)
}

func notFound(w http.ResponseWriter, r *http.Request, message string) {
	respondError(w, r, http.StatusNotFound, "not_found", message)
}

// respondErr maps a store error onto a response.
func respondErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrSubcategoryNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrBannerNotFound):
		notFound(w, r, err.Error())
	case errors.Is(err, domain.ErrInvalidSnapshot):
		validationError(w, r, err.Error())
	case errors.Is(err, session.ErrEmailRequired):
		validationError(w, r, err.Error())
	default:
		log.Errorf("❌ %s %s failed: %v", r.Method, r.URL.Path, err)
		respondError(w, r, http.StatusInternalServerError, "internal_error", "failed to save changes")
	}
}

// decode reads a JSON body into v, answering 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		badRequest(w, r, "invalid request body")
		return false
	}
	return true
}

// placeholderImage returns a random stock image URL of the given size.
func placeholderImage(width, height int) string {
	return fmt.Sprintf("https://picsum.photos/%d/%d?random=%d", width, height, time.Now().UnixMilli())
}
