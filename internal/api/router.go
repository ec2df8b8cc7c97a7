package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/soomtochukwu/XLMate/internal/api/handler"
	"github.com/soomtochukwu/XLMate/internal/api/middleware"
	"github.com/soomtochukwu/XLMate/internal/services/keyauth"
	"github.com/soomtochukwu/XLMate/internal/services/registry"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *keyauth.Service
	Registry    *registry.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	registryHandler := handler.NewRegistryHandler(cfg.Registry)
	gameHandler := handler.NewGameHandler(cfg.Registry)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Bootstrap: gated only by the unset-roles precondition, not by auth
	api.HandleFunc("/registry/initialize", registryHandler.Initialize).Methods(http.MethodPost)

	// Role governance (authenticated; admin check happens in the registry)
	api.Handle("/registry/server", authMiddleware(http.HandlerFunc(registryHandler.SetServer))).Methods(http.MethodPut)
	api.Handle("/registry/admin", authMiddleware(http.HandlerFunc(registryHandler.SetAdmin))).Methods(http.MethodPut)
	api.HandleFunc("/registry/roles", registryHandler.GetRoles).Methods(http.MethodGet)

	// Game records: commit is authenticated, read and touch are public
	api.Handle("/games/{id}", authMiddleware(http.HandlerFunc(gameHandler.Record))).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/touch", gameHandler.Touch).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
