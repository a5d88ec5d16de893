// Command mockapi runs the in-memory flower-store backend for local client
// development.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/flicky/flowerstore-client/internal/mockapi"
)

type config struct {
	Port            int           `env:"MOCKAPI_PORT" envDefault:"8080"`
	JWTSecret       string        `env:"MOCKAPI_JWT_SECRET" envDefault:"dev-secret"`
	ShutdownTimeout time.Duration `env:"MOCKAPI_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	_ = godotenv.Load()
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mockapi.New(cfg.JWTSecret).Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting mock backend", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}
