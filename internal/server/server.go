package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jobboard/apiserver/config"
	"github.com/jobboard/apiserver/internal/auth"
	"github.com/jobboard/apiserver/internal/db"
	"github.com/jobboard/apiserver/internal/handlers"
	"github.com/jobboard/apiserver/internal/services"
	"github.com/jobboard/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	closeStore func() error
}

// New constructs a Server with basic middleware and defaults. The
// signing secret and store handle come from the explicit config; no
// operation reads ambient state after startup.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	repo, closeStore, err := OpenAccountRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	tokens := auth.NewTokenIssuer(cfg.JWTSecret)
	credentials := services.NewCredentialService(repo, tokens)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	handlers.AuthRouter(router, credentials, logger)
	handlers.AdminRouter(router, credentials, cfg.OperatorToken, logger)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		closeStore: closeStore,
	}, nil
}

// OpenAccountRepository connects the configured store backend and
// returns the repository plus a close function. The create-admin
// command uses it to reach the store without running the HTTP server.
func OpenAccountRepository(ctx context.Context, cfg config.Config) (services.AccountRepository, func() error, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendMongo, "":
		client, err := db.OpenMongo(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		repo := store.NewMongoAccountRepository(client.Database(cfg.Mongo.DBName))
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("ensure account indexes: %w", err)
		}
		return repo, func() error { return client.Disconnect(context.Background()) }, nil
	case config.StoreBackendPostgres:
		conn, err := db.Open(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgresAccountRepository(conn), conn.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.closeStore != nil {
		_ = s.closeStore()
	}
	return s.httpServer.Close()
}
