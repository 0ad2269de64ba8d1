package handler

import (
	"net/http"

	"notepad-ai/internal/domain"
	"notepad-ai/internal/service"
	"notepad-ai/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type NoteHandler struct {
	service  *service.NoteService
	validate *validator.Validate
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateNoteRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	note, err := h.service.Create(r.Context(), req.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, note)
}

// List filters by the optional ?q= search term.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.service.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, notes)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	noteID := mux.Vars(r)["id"]

	note, err := h.service.GetByID(r.Context(), noteID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	noteID := mux.Vars(r)["id"]

	var req domain.UpdateNoteRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	note, err := h.service.Update(r.Context(), noteID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), noteID); err != nil {
		writeError(w, err)
		return
	}

	response.Message(w, "Note deleted")
}
