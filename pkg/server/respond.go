package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"droscher.com/RecipeBook/pkg/media"
	"droscher.com/RecipeBook/pkg/repository"
)

// Page carries the flash messages of every JSON response.
type Page struct {
	Messages []FlashMessage `json:"messages"`
}

func (p *Page) setMessages(messages []FlashMessage) {
	p.Messages = messages
}

type view interface {
	setMessages(messages []FlashMessage)
}

type ErrorResponse struct {
	Page
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (s *RecipeServer) render(w http.ResponseWriter, r *http.Request, status int, page view, extra ...FlashMessage) {
	messages := append(takeFlash(w, r), extra...)
	if messages == nil {
		messages = []FlashMessage{}
	}

	page.setMessages(messages)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(page); err != nil {
		s.logger.Error("error encoding response", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (s *RecipeServer) redirect(w http.ResponseWriter, r *http.Request, location string, messages ...FlashMessage) {
	if len(messages) > 0 {
		addFlash(w, r, messages...)
	}

	http.Redirect(w, r, location, http.StatusSeeOther)
}

func (s *RecipeServer) fail(w http.ResponseWriter, r *http.Request, status int, message string, fields map[string]string) {
	s.render(w, r, status, &ErrorResponse{Error: message, Fields: fields})
}

func (s *RecipeServer) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrRecipeNotFound),
		errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrIngredientNotFound),
		errors.Is(err, media.ErrNotFound),
		errors.Is(err, media.ErrInvalidKey):
		s.fail(w, r, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, media.ErrImageDecode):
		s.logger.Error("error normalizing image", zap.String("path", r.URL.Path), zap.Error(err))
		s.fail(w, r, http.StatusInternalServerError, "the uploaded image could not be processed", nil)
	default:
		s.logger.Error("error handling request",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
		s.fail(w, r, http.StatusInternalServerError, "internal server error", nil)
	}
}

func idParam(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}
