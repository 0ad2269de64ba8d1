package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"notepad-ai/internal/repository"
	"notepad-ai/internal/service"
	"notepad-ai/pkg/response"

	"github.com/go-playground/validator/v10"
)

// writeError maps service sentinels onto response envelopes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, service.ErrNoteNotFound),
		errors.Is(err, service.ErrNodeNotFound),
		errors.Is(err, service.ErrTodoNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, service.ErrRootNode),
		errors.Is(err, service.ErrInvalidNoteType),
		errors.Is(err, service.ErrWrongNoteType),
		errors.Is(err, service.ErrEmptyTodo),
		errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrEmptyAPIKey):
		response.BadRequest(w, err.Error())
	case errors.Is(err, repository.ErrTooLarge):
		response.PayloadTooLarge(w, err.Error())
	default:
		response.InternalError(w, "Internal server error")
	}
}

// decode reads a JSON body into v and validates it. It writes the error
// response itself and reports whether the handler should continue.
func decode(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	if err := v.Struct(dst); err != nil {
		response.BadRequest(w, err.Error())
		return false
	}
	return true
}
