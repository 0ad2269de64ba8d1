package handler

import (
	"net/http"

	"notepad-ai/internal/domain"
	"notepad-ai/internal/service"
	"notepad-ai/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type TodoHandler struct {
	service  *service.TodoService
	validate *validator.Validate
}

func NewTodoHandler(service *service.TodoService) *TodoHandler {
	return &TodoHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, list)
}

func (h *TodoHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req domain.AddTodoRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	item, err := h.service.Add(r.Context(), mux.Vars(r)["id"], req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, item)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req domain.UpdateTodoRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	item, err := h.service.Update(r.Context(), vars["id"], vars["todoID"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, item)
}

func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	item, err := h.service.Toggle(r.Context(), vars["id"], vars["todoID"])
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, item)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.service.Delete(r.Context(), vars["id"], vars["todoID"]); err != nil {
		writeError(w, err)
		return
	}

	response.Message(w, "Todo deleted")
}
