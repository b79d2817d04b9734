package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/api"
	"github.com/guttosm/stockpulse/internal/marketdata"
	"github.com/guttosm/stockpulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router and a cleanup function for graceful shutdown.
//
// Responsibilities:
//   - Builds the market-data provider client from configuration.
//   - Initializes the service layer (validation, normalization, statistics).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
func InitializeApp() (*gin.Engine, func()) {
	cfg := config.AppConfig

	// Outbound provider client; its timeout is the only one in the system.
	provider := marketdata.NewYahooClient(
		cfg.Provider.BaseURL,
		time.Duration(cfg.Provider.TimeoutSeconds)*time.Second,
	)

	// Service layer (business logic)
	svc := service.NewMarketService(provider, cfg.History.WindowDays, cfg.History.Interval)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes. No hard dependency to probe:
	// the provider is best-effort per request.
	api.NewHealthHandler(nil).Register(router)

	// Nothing to release: the provider client holds no connections beyond
	// the shared HTTP transport.
	cleanup := func() {}

	return router, cleanup
}
