package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"valens/internal/adapters/cache"
	"valens/internal/adapters/httpclient"
	"valens/internal/adapters/postgres"
	"valens/internal/api"
	"valens/internal/coin"
	coinhandler "valens/internal/coin/handler"
	"valens/internal/config"
	"valens/internal/platform/db"
	httpserver "valens/internal/platform/http"
	"valens/internal/purchase"
	purchasehandler "valens/internal/purchase/handler"
	"valens/internal/quote"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Price cache
	priceCache, err := cache.NewPriceCache(appCfg.Cache.MaxItems)
	if err != nil {
		logrus.WithError(err).Error("Failed to create price cache")
		return err
	}
	logrus.Info("✅ Price cache initialization successful")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External clients
	if appCfg.PricingAPI.BaseURL == "" {
		return fmt.Errorf("pricing api base url is required")
	}
	pricingClient := httpclient.NewPricingClient(baseHTTPClient, appCfg.PricingAPI.BaseURL)

	if appCfg.CheckoutAPI.APIKey == "" {
		return fmt.Errorf("checkout api key is required")
	}
	checkoutClient := httpclient.NewCheckoutClient(baseHTTPClient, appCfg.CheckoutAPI.BaseURL, appCfg.CheckoutAPI.APIKey)

	// Repositories
	coinRepo := postgres.NewCoinRepository(pool)
	refreshRepo := postgres.NewPriceRefreshRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)

	// Services
	coinService := coin.NewService(coinRepo, refreshRepo, priceCache)
	addressValidator := coin.NewAddressValidator()
	amountValidator := quote.NewInputValidator()
	fees := quote.FeeRates{Platform: appCfg.Fees.PlatformRate, Following: appCfg.Fees.FollowingRate}
	purchaseService := purchase.NewService(coinRepo, coinService, orderRepo, checkoutClient, fees)

	scheduler := coin.NewScheduler(refreshRepo, pricingClient, priceCache, time.Duration(appCfg.Scheduler.JobDurationSec)*time.Second)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	coinHandler := coinhandler.NewCoinHandler(addressValidator, coinService)
	purchaseHandler := purchasehandler.NewPurchaseHandler(addressValidator, amountValidator, purchaseService)
	router := api.NewRouter(coinHandler, purchaseHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
