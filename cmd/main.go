package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/clubhub-dev/clubhub/cmd/app"
	"github.com/clubhub-dev/clubhub/internal/adapters/config"
	"github.com/clubhub-dev/clubhub/internal/adapters/logger"
)

func main() {
	cfg := config.Get()

	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorf("shutdown: %v", err)
		}
	}()

	if err := a.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Panicf("server error: %v", err)
	}
}
