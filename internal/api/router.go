package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/no1453/woggle/internal/api/handler"
	apimiddleware "github.com/no1453/woggle/internal/api/middleware"
	"github.com/no1453/woggle/internal/dependencies/clock"
	"github.com/no1453/woggle/internal/middleware"
	"github.com/no1453/woggle/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	Clock          clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.GameController, cfg.Clock)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/words", sessionHandler.SubmitWord).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/reshuffle", sessionHandler.Reshuffle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/solutions", sessionHandler.Solutions).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/timer/start", sessionHandler.StartTimer).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/timer/pause", sessionHandler.PauseTimer).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/timer/reset", sessionHandler.ResetTimer).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
