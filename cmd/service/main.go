package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/click2025-space/clickers-workspace/internal/client/centrifugo"
	"github.com/click2025-space/clickers-workspace/internal/config"
	api "github.com/click2025-space/clickers-workspace/internal/generated"
	"github.com/click2025-space/clickers-workspace/internal/infra"
	"github.com/click2025-space/clickers-workspace/internal/pkg/jwt"
	"github.com/click2025-space/clickers-workspace/internal/pkg/tx"
	"github.com/click2025-space/clickers-workspace/internal/pkg/validator"
	db "github.com/click2025-space/clickers-workspace/internal/repository/postgres"
	"github.com/click2025-space/clickers-workspace/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	feedClient := centrifugo.New(cfg)
	defer feedClient.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Feed.JWTSecret)

	handler := rest.New(dbRepo, feedClient, vldtr, jwtGenerator)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return httpServer.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
