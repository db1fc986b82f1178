package routes

import (
	"net/http"
	"time"

	"github.com/dafahentra/stocks-dashboard/cache"
	"github.com/dafahentra/stocks-dashboard/client"
	"github.com/dafahentra/stocks-dashboard/config"
	"github.com/dafahentra/stocks-dashboard/controller"
	"github.com/dafahentra/stocks-dashboard/metrics"
	"github.com/dafahentra/stocks-dashboard/middleware"
	"github.com/dafahentra/stocks-dashboard/repository"
	"github.com/dafahentra/stocks-dashboard/service"
	"github.com/dafahentra/stocks-dashboard/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter wires the full dependency graph and returns the engine plus
// the watchlist service, which the cron warmer shares.
func SetupRouter(db *mongo.Database, cfg *config.SystemConfigs) (*gin.Engine, service.WatchlistService) {
	cache.Configure(
		time.Duration(cfg.Config.HistoryTTLSeconds)*time.Second,
		time.Duration(cfg.Config.QuoteTTLSeconds)*time.Second,
	)

	r := gin.New()
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.RateLimiter(cfg))

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", http.FS(web.StaticFS()))

	// --- 1. Clients ---
	yahooClient := client.NewYahooClient(cfg)

	// --- 2. Repositories ---
	var watchlistRepo service.WatchlistStore
	if db != nil {
		watchlistRepo = repository.NewWatchlistRepository(db)
	}

	// --- 3. Services (Dependency Injection) ---
	marketSvc := service.NewMarketService(yahooClient)
	watchlistSvc := service.NewWatchlistService(watchlistRepo, marketSvc, cfg)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// --- 4. Routes & Controllers ---
	controller.NewDashboardController(marketSvc, watchlistSvc, cfg).RegisterRoutes(r)

	api := r.Group("/api")
	{
		// Health Check
		controller.NewHealthController().RegisterRoutes(api)

		// Market Endpoints
		controller.NewMarketController(marketSvc).RegisterRoutes(api)

		// Watchlist Endpoints
		controller.NewWatchlistController(watchlistSvc).RegisterRoutes(api)
	}

	return r, watchlistSvc
}
