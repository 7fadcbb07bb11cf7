package main

import (
	"net/http"
	"strings"

	"placesearch-api/internal/config"
	"placesearch-api/internal/handler"
	"placesearch-api/internal/places"
	"placesearch-api/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.PlacesAPIKey == "" {
		log.Warn().Msg("PLACES_API_KEY not set, upstream calls will fail")
	}

	// Initialize layers
	client := places.NewClient(places.ClientConfig{
		APIKey:            config.PlacesAPIKey,
		BaseURL:           config.PlacesBaseURL,
		RequestTimeout:    config.RequestTimeout,
		RequestsPerSecond: config.RequestsPerSecond,
	})
	negotiator := places.NewNegotiator(client)

	searchService := service.NewSearchService(negotiator, config.BulkQueryDelay)

	searchHandler := handler.NewSearchHandler(searchService)
	bulkSearchHandler := handler.NewBulkSearchHandler(searchService)
	detailsHandler := handler.NewDetailsHandler(searchService)
	exportHandler := handler.NewExportHandler()

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if config.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(config.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "X-Requested-With"}
	r.Use(cors.New(corsConfig))

	limiter := handler.NewRateLimiter(config.RateLimitRPS, config.RateLimitBurst)
	r.Use(limiter.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api/places")
	api.POST("/search", searchHandler.Search)
	api.POST("/bulk-search", bulkSearchHandler.BulkSearch)
	api.GET("/details/:placeId", detailsHandler.GetDetails)
	api.POST("/export/csv", exportHandler.ExportCSV)
	api.POST("/export/json", exportHandler.ExportJSON)

	r.Run(config.ServerAddress)
}
