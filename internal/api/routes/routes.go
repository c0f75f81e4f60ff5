package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vantagelabs/accel-recommender/internal/api/handlers"
	"github.com/vantagelabs/accel-recommender/internal/config"
	middlewares "github.com/vantagelabs/accel-recommender/internal/middleware"
	"github.com/vantagelabs/accel-recommender/internal/recommend/adoption"
	"github.com/vantagelabs/accel-recommender/internal/recommend/index"
	"github.com/vantagelabs/accel-recommender/internal/services"
)

func SetupRouter(cfg *config.Config, service *services.RecommenderService, ix *index.Index, model *adoption.Model) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	if cfg.TracingEnabled {
		r.Use(middlewares.RequestTiming())
	}

	recommendHandler := handlers.NewRecommendHandler(service)
	companyHandler := handlers.NewCompanyHandler(service)
	queryHandler := handlers.NewQueryHandler(service)
	healthHandler := handlers.NewHealthHandler(ix, model)

	api := r.Group("/api")
	{
		api.POST("/recommend/new-user", recommendHandler.NewUser)
		api.POST("/recommend/existing-user", recommendHandler.ExistingUser)
	}

	r.GET("/company", companyHandler.List)
	r.POST("/query", queryHandler.Query)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
