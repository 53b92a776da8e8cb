package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-order-api/auth"
	"food-order-api/config"
	"food-order-api/handlers"
	"food-order-api/logging"
	"food-order-api/middleware"
	"food-order-api/routes"
	"food-order-api/store"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		logging.New("error", os.Stderr).Error("load config", "error", err)
		return err
	}
	log := logging.New(cfg.LogLevel, os.Stdout)
	gin.SetMode(cfg.GinMode)

	if cfg.UsesDefaultSecret() {
		log.Warn("JWT_SECRET not set, using the development secret")
	}

	s, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("open database", "error", err)
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		admin, created, err := s.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			log.Error("seed admin account", "error", err)
			return err
		}
		if created {
			log.Info("admin account created", "user_id", admin.ID, "email", admin.Email)
		} else if !admin.IsAdmin() {
			log.Warn("admin email belongs to a non-admin account", "email", admin.Email)
		}
	}

	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)
	cookie := auth.Cookie{Name: cfg.CookieName, TTL: cfg.TokenTTL, Secure: cfg.CookieSecure}
	session := middleware.NewSession(s, tokens, cookie, log)
	h := handlers.New(s, tokens, cookie, cfg.EnforceOrderOwnership, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(h, session, log, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown", "error", err)
		return err
	}
	return nil
}
