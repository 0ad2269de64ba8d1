package handler

import (
	"net/http"

	"notepad-ai/internal/domain"
	"notepad-ai/internal/service"
	"notepad-ai/pkg/response"

	"github.com/go-playground/validator/v10"
)

type SettingsHandler struct {
	service  *service.SettingsService
	validate *validator.Validate
}

func NewSettingsHandler(service *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, settings)
}

func (h *SettingsHandler) Theme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.service.Theme(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, theme)
}

func (h *SettingsHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.service.ToggleTheme(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, theme)
}

func (h *SettingsHandler) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	var req domain.SetAPIKeyRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	status, err := h.service.SetAPIKey(r.Context(), req.APIKey)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, status)
}

func (h *SettingsHandler) DeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearAPIKey(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	response.Message(w, "API key removed")
}
