// /cmd/web/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/gops/agent"
	log "github.com/sirupsen/logrus"

	"github.com/ericoliveiras/dessert-api/internal/config"
	"github.com/ericoliveiras/dessert-api/internal/database"
	"github.com/ericoliveiras/dessert-api/internal/handler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Loading configuration: %v", err)
	}

	level, err := configureLogging(cfg, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	gin.SetMode(cfg.GinMode)

	if cfg.GopsAgent {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.WithField("err", err).Warn("Could not start gops agent")
		} else {
			defer agent.Close()
		}
	}

	db, err := database.Connect(cfg.DatabasePath, level >= log.DebugLevel)
	if err != nil {
		log.Fatalf("Could not open database %q: %v", cfg.DatabasePath, err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warnf("Could not close database: %v", err)
		}
	}()
	store := database.NewDessertStore(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SeedDesserts {
		if _, err := database.SeedDesserts(ctx, store, database.DefaultSeed); err != nil {
			log.WithField("err", err).Error("Could not seed desserts")
		}
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler.NewRouter(&handler.DessertHandler{Store: store}),
	}
	go func() {
		log.Infof("Server running on %s", cfg.URL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithField("err", err).Error("HTTP server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithField("err", err).Warn("Could not shut down the server cleanly")
	}
}
