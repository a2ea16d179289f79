package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/maxcopy/maxcopy-backend/internal/handlers"
)

// SetupRouter wires the HTTP surface. allowOrigins is the CORS allow-list;
// empty means allow all.
func SetupRouter(h *handlers.Handlers, allowOrigins []string) *gin.Engine {
	router := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(allowOrigins) > 0 {
		corsCfg.AllowOrigins = allowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	router.Use(cors.New(corsCfg))

	router.GET("/health", h.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("/", h.ListProducts)
			products.POST("/", h.CreateProduct)
			products.GET("/:id", h.GetProduct)
			products.PUT("/:id", h.UpdateProduct)
			products.DELETE("/:id", h.DeleteProduct)

			products.GET("/:id/ai-contents", h.ListAIContentsForProduct)
			products.POST("/:id/ai-contents", h.CreateAIContent)
			products.POST("/:id/generate/:channel", h.GenerateListing)
		}

		v1.GET("/ai-contents/:id", h.GetAIContent)
	}

	return router
}
