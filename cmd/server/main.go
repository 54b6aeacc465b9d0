package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelara/storefront-pricing/internal/bulk"
	"github.com/avelara/storefront-pricing/internal/cache"
	"github.com/avelara/storefront-pricing/internal/catalog"
	"github.com/avelara/storefront-pricing/internal/config"
	"github.com/avelara/storefront-pricing/internal/handler"
	"github.com/avelara/storefront-pricing/internal/middleware"
	"github.com/avelara/storefront-pricing/internal/model"
	"github.com/avelara/storefront-pricing/internal/source"
	"github.com/avelara/storefront-pricing/internal/storefront"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	router.GET("/health", handler.NewHealthHandler().Health)
	setupAPIRoutes(router, cfg)

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		// Bulk apply streams can outlive a normal response window.
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, cfg *config.Config) {
	fxCache := cache.New[model.ExchangeRatesData](cfg.CacheDir, cfg.FXCacheTTL)
	pppCache := cache.New[model.PPPData](cfg.CacheDir, cfg.PPPCacheTTL)

	fxSource := source.NewFXSource(source.FXConfig{
		BaseURL: cfg.FXBaseURL,
		AppID:   cfg.FXAppID,
		Timeout: cfg.HTTPTimeout,
	}, fxCache)
	pppSource := source.NewPPPSource(source.PPPConfig{
		BaseURL: cfg.WorldBankURL,
		Timeout: cfg.HTTPTimeout,
	}, pppCache)

	updaters := map[catalog.Platform]bulk.PriceUpdater{
		catalog.PlatformPlay:     storefront.NewClient(platformURL(cfg, catalog.PlatformPlay), catalog.PlatformPlay, cfg.HTTPTimeout),
		catalog.PlatformAppStore: storefront.NewClient(platformURL(cfg, catalog.PlatformAppStore), catalog.PlatformAppStore, cfg.HTTPTimeout),
	}

	ratesHandler := handler.NewRatesHandler(fxSource, cfg.FXCacheTTL)
	pppHandler := handler.NewPPPHandler(pppSource)
	catalogHandler := handler.NewCatalogHandler()
	previewHandler := handler.NewPreviewHandler(fxSource, pppSource, cfg.FXCacheTTL)
	applyHandler := handler.NewApplyHandler(updaters, cfg.BulkConcurrency)

	api := router.Group("/api/v1")
	{
		api.GET("/rates", ratesHandler.GetRates)
		api.GET("/ppp", pppHandler.GetPPP)
		api.GET("/territories", catalogHandler.GetTerritories)
		api.POST("/prices/preview", previewHandler.Preview)
		api.POST("/prices/apply", applyHandler.Apply)
	}
}

func platformURL(cfg *config.Config, p catalog.Platform) string {
	if p == catalog.PlatformAppStore {
		return cfg.AppStoreAPIURL
	}
	return cfg.PlayAPIURL
}
