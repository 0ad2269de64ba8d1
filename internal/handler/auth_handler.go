package handler

import (
	"net/http"

	"notepad-ai/internal/domain"
	"notepad-ai/internal/service"
	"notepad-ai/pkg/response"

	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	loginResp, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, loginResp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	loginResp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, loginResp)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	response.Message(w, "Logged out successfully")
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.Me(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, user)
}
