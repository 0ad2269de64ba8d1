package handler

import (
	"net/http"

	"notepad-ai/internal/domain"
	"notepad-ai/internal/service"
	"notepad-ai/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type MindMapHandler struct {
	service  *service.MindMapService
	validate *validator.Validate
}

func NewMindMapHandler(service *service.MindMapService) *MindMapHandler {
	return &MindMapHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *MindMapHandler) List(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.service.Nodes(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, nodes)
}

func (h *MindMapHandler) AddNode(w http.ResponseWriter, r *http.Request) {
	var req domain.AddNodeRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	node, err := h.service.AddNode(r.Context(), mux.Vars(r)["id"], req.ParentID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, node)
}

// UpdateNode renames and/or moves a node.
func (h *MindMapHandler) UpdateNode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req domain.UpdateNodeRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	node, err := h.service.UpdateNode(r.Context(), vars["id"], vars["nodeID"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, node)
}

func (h *MindMapHandler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.service.DeleteNode(r.Context(), vars["id"], vars["nodeID"]); err != nil {
		writeError(w, err)
		return
	}

	response.Message(w, "Node deleted")
}
