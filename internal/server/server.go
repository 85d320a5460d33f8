package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"metrodice/internal/config"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	cfg    config.Config
	logger *zap.Logger
}

func New(cfg config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{cfg: cfg, logger: logger}
}

// Routes builds the HTTP mux. Hubs created through it live until ctx is done.
func (s *Server) Routes(ctx context.Context) http.Handler {
	h := NewHandlers(ctx, s.cfg, s.logger)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/create", h.HandleCreateGame)
	mux.HandleFunc("GET /api/qr", h.HandleQR)
	mux.HandleFunc("GET /api/player-id", h.HandlePlayerID)
	mux.HandleFunc("/ws", h.HandleWS)
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Routes(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("metrodice server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
