package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chinese-numeral-converter/internal/api/handlers"
	"chinese-numeral-converter/internal/api/middleware"
	"chinese-numeral-converter/internal/api/routes"
	"chinese-numeral-converter/internal/config"
	"chinese-numeral-converter/pkg/logger"

	"github.com/go-chi/chi/v5"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Log.Level)
	log.Info("Starting Chinese Numeral Converter Service")

	convertHandler := handlers.NewConvertHandler(log)
	router := setupRouter(convertHandler, log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(fmt.Sprintf("Server failed to start: %v", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	log.Info("Server shutdown complete")
}

func setupRouter(convertHandler *handlers.ConvertHandler, log logger.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.RateLimiter(10000))
	routes.SetupConvertRoutes(r, convertHandler)
	return r
}
