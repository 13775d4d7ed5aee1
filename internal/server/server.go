package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rgehrsitz/herdsim/internal/calculation"
	"github.com/rgehrsitz/herdsim/internal/config"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/server/handlers"
	"github.com/rgehrsitz/herdsim/internal/server/metrics"
	"github.com/rgehrsitz/herdsim/internal/server/router"
	"github.com/rgehrsitz/herdsim/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// New builds the HTTP handler: a cached engine over the configured rules,
// the prometheus collectors and the gin router.
func New(cfg *config.ServerConfig, log *zap.Logger) (http.Handler, error) {
	if log == nil {
		log = zap.NewNop()
	}

	rules := domain.DefaultRules()
	if cfg.RulesFile != "" {
		loaded, err := config.NewInputParser().LoadRules(cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		rules = loaded
		log.Info("loaded rules", zap.String("file", cfg.RulesFile))
	}

	engine := calculation.NewEngineWithRules(rules)
	engine.SetLogger(logger.Named(log, "engine").Sugar())

	cached, err := calculation.NewCachedEngine(engine, cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create projection cache: %w", err)
	}

	m := metrics.New()
	cached.OnLookup(m.ObserveCache)

	handler := handlers.NewProjectionHandler(cached, rules, m, logger.Named(log, "api"))
	return router.New(handler, m, log), nil
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.ServerConfig, log *zap.Logger) error {
	handler, err := New(cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
