package server

import (
	"log/slog"
	"net/http"

	"notepad-ai/internal/config"
	"notepad-ai/internal/handler"
	"notepad-ai/internal/llm"
	"notepad-ai/internal/middleware"
	"notepad-ai/internal/repository"
	"notepad-ai/internal/service"
	"notepad-ai/pkg/cookie"

	"github.com/gorilla/mux"
)

// NewRouter wires repositories, services and handlers into the HTTP surface.
// The returned handler carries no state between requests; everything lives
// in the caller's cookies.
func NewRouter(cfg *config.Config, logger *slog.Logger, providers llm.Factory) http.Handler {
	noteRepo := repository.NewNoteRepository(logger)
	userRepo := repository.NewUserRepository(logger)
	sessionRepo := repository.NewSessionRepository()
	settingsRepo := repository.NewSettingsRepository()

	authService := service.NewAuthService(userRepo, sessionRepo, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	noteService := service.NewNoteService(noteRepo)
	mindMapService := service.NewMindMapService(noteService)
	todoService := service.NewTodoService(noteService)
	settingsService := service.NewSettingsService(settingsRepo, userRepo)
	assistantService := service.NewAssistantService(settingsRepo, noteService, providers, cfg.OpenAI.Timeout, logger)

	authHandler := handler.NewAuthHandler(authService)
	noteHandler := handler.NewNoteHandler(noteService)
	mindMapHandler := handler.NewMindMapHandler(mindMapService)
	todoHandler := handler.NewTodoHandler(todoService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	assistantHandler := handler.NewAssistantHandler(assistantService)

	r := mux.NewRouter()

	r.Use(middleware.CookieMiddleware(cookie.Options{
		Secure:   cfg.Cookie.Secure,
		HTTPOnly: cfg.Cookie.HTTPOnly,
		SameSite: cfg.Cookie.SameSite,
		MaxSize:  cfg.Cookie.MaxSize,
	}))

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")

	// The theme applies before sign-in as well.
	api.HandleFunc("/theme", settingsHandler.Theme).Methods("GET")
	api.HandleFunc("/theme/toggle", settingsHandler.ToggleTheme).Methods("POST")

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))

	protected.HandleFunc("/users/me", authHandler.Me).Methods("GET")

	protected.HandleFunc("/settings", settingsHandler.Get).Methods("GET")
	protected.HandleFunc("/settings/api-key", settingsHandler.SetAPIKey).Methods("PUT")
	protected.HandleFunc("/settings/api-key", settingsHandler.DeleteAPIKey).Methods("DELETE")

	protected.HandleFunc("/notes", noteHandler.Create).Methods("POST")
	protected.HandleFunc("/notes", noteHandler.List).Methods("GET")
	protected.HandleFunc("/notes/{id}", noteHandler.Get).Methods("GET")
	protected.HandleFunc("/notes/{id}", noteHandler.Update).Methods("PUT")
	protected.HandleFunc("/notes/{id}", noteHandler.Delete).Methods("DELETE")

	protected.HandleFunc("/notes/{id}/mindmap/nodes", mindMapHandler.List).Methods("GET")
	protected.HandleFunc("/notes/{id}/mindmap/nodes", mindMapHandler.AddNode).Methods("POST")
	protected.HandleFunc("/notes/{id}/mindmap/nodes/{nodeID}", mindMapHandler.UpdateNode).Methods("PATCH")
	protected.HandleFunc("/notes/{id}/mindmap/nodes/{nodeID}", mindMapHandler.DeleteNode).Methods("DELETE")

	protected.HandleFunc("/notes/{id}/todos", todoHandler.List).Methods("GET")
	protected.HandleFunc("/notes/{id}/todos", todoHandler.Add).Methods("POST")
	protected.HandleFunc("/notes/{id}/todos/{todoID}", todoHandler.Update).Methods("PATCH")
	protected.HandleFunc("/notes/{id}/todos/{todoID}/toggle", todoHandler.Toggle).Methods("POST")
	protected.HandleFunc("/notes/{id}/todos/{todoID}", todoHandler.Delete).Methods("DELETE")

	protected.HandleFunc("/assistant/greeting", assistantHandler.Greeting).Methods("GET")
	protected.HandleFunc("/assistant/chat", assistantHandler.Chat).Methods("POST")

	r.HandleFunc("/health", healthHandler).Methods("GET")

	// CORS and logging wrap the router so preflights and unmatched routes
	// are handled too.
	var h http.Handler = r
	h = middleware.LoggerMiddleware(logger)(h)
	h = middleware.CORSMiddleware(cfg.CORS)(h)
	return h
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"notepad-ai"}`))
}
