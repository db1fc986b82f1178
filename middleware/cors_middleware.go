package middleware

import (
	"time"

	"github.com/dafahentra/stocks-dashboard/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured frontend origins to call the JSON API.
func CORS(cfg *config.SystemConfigs) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: cfg.Config.FrontendUrls,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
