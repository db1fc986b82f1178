package main

import (
	"runtime"

	"github.com/dafahentra/stocks-dashboard/config"
	"github.com/dafahentra/stocks-dashboard/database"
	_ "github.com/dafahentra/stocks-dashboard/docs"
	"github.com/dafahentra/stocks-dashboard/routes"
	"github.com/dafahentra/stocks-dashboard/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// @title           Stocks Dashboard API
// @version         1.0
// @description     Historical price series with technical indicators, quick quotes and watchlist management.
// @BasePath        /api
func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().AnErr("Error loading configuration: ", err)
	}

	if sysConfigs.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if sysConfigs.Config.RedisUrl != "" {
		database.InitRedis(sysConfigs.Config.RedisUrl)
	}

	var db *mongo.Database
	if sysConfigs.Config.MongoUri != "" {
		_, db = database.InitMongoClient(sysConfigs)
	}

	router, watchlistSvc := routes.SetupRouter(db, sysConfigs)

	if sysConfigs.Config.WarmerEnabled {
		sched := scheduler.New(watchlistSvc)
		if err := sched.Register(sysConfigs.Config.WarmerSpec); err != nil {
			log.Fatal().AnErr("Error registering warmer: ", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	port := sysConfigs.Config.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().AnErr("Server failed to start: ", err)
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
