package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eyewear-store/internal/auth"
	"eyewear-store/internal/blog"
	"eyewear-store/internal/cache"
	"eyewear-store/internal/catalog"
	"eyewear-store/internal/config"
	"eyewear-store/internal/database"
	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/logging"
	"eyewear-store/internal/middleware"
	"eyewear-store/internal/models"
	"eyewear-store/internal/routes"
	"eyewear-store/internal/upload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := logging.Init(cfg.LogMode, cfg.LogFile)
	if err != nil {
		log.Fatal("❌ Error initializing logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	backend, err := database.OpenBackend(ctx, cfg)
	cancel()
	if err != nil {
		logger.Fatal("❌ Error opening storage backend", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer func() { _ = backend.Close() }()

	store := kvstore.New(backend)
	responses := cache.New(cfg.CacheTTL)
	defer responses.Close()

	gate := auth.NewGate(
		auth.Credentials{Username: cfg.AdminUsername, Password: cfg.AdminPassword},
		cfg.SessionTTL,
		auth.WithDelay(cfg.LoginDelay),
		auth.WithSecret(cfg.JWTSecret),
	)

	if cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery(), middleware.Profile())

	routes.RegisterRoutes(router, routes.Dependencies{
		Store:   store,
		Catalog: catalog.Default(),
		Blog:    blog.Default(),
		Cache:   responses,
		Gate:    gate,
		Uploads: upload.NewService(upload.Options{
			MaxBytes: cfg.UploadMaxBytes,
			Delay:    cfg.UploadDelay,
			BaseURL:  cfg.UploadBaseURL,
		}),
		Defaults:        defaultSettings(cfg),
		WhatsAppBaseURL: cfg.WhatsAppBaseURL,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	go func() {
		logger.Info("🚀 Server running", zap.String("port", cfg.Port), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("❌ Server error", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("🛑 Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

// defaultSettings arma los ajustes iniciales de la tienda desde la configuración
func defaultSettings(cfg *config.Config) models.Settings {
	return models.Settings{
		StoreName:         "Manshu Opticals",
		Tagline:           "Eyewear for every face",
		ContactEmail:      "hello@manshuopticals.in",
		ContactPhone:      "+" + cfg.WhatsAppNumber,
		WhatsAppNumber:    cfg.WhatsAppNumber,
		Currency:          cfg.Currency,
		FreeShippingAbove: cfg.FreeShippingAbove,
		ShippingFee:       cfg.ShippingFee,
	}
}
