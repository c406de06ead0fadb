package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/example/boutique-shop/internal/api"
	"github.com/example/boutique-shop/internal/catalog"
	"github.com/example/boutique-shop/internal/config"
	"github.com/example/boutique-shop/internal/session"
	"github.com/example/boutique-shop/internal/whatsapp"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	cat := catalog.Default()
	tokens := session.NewTokenService(cfg.TokenSecret, cfg.SessionTTL)
	nav := whatsapp.LogNavigator{}
	manager := session.NewManager(tokens, cfg.WhatsAppNumber, nav)
	handlers := api.NewHandlers(cat, nav, cfg.WhatsAppNumber)
	router := api.NewRouter(handlers, manager)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		log.WithFields(log.Fields{
			"addr":     cfg.ListenAddr,
			"products": len(cat.Products()),
		}).Info("storefront started")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
