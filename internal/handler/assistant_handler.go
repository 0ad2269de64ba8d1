package handler

import (
	"net/http"

	"notepad-ai/internal/domain"
	"notepad-ai/internal/service"
	"notepad-ai/pkg/response"

	"github.com/go-playground/validator/v10"
)

type AssistantHandler struct {
	service  *service.AssistantService
	validate *validator.Validate
}

func NewAssistantHandler(service *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *AssistantHandler) Greeting(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.service.Greeting())
}

// Chat always answers 200 with an assistant message once the request is
// valid; upstream failures come back as a fixed reply.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	resp, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, resp)
}
