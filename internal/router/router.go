package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/EraEKV/restometrics/internal/auth"
	"github.com/EraEKV/restometrics/internal/middleware"
	"github.com/EraEKV/restometrics/internal/prediction"
	"github.com/EraEKV/restometrics/internal/restaurant"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *auth.Handler
	Restaurants *restaurant.Handler
	Predictions *prediction.Handler
	Sessions    middleware.SessionResolver
}

func New(h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.SessionMiddleware(h.Sessions))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.POST("/logout", h.Auth.Logout)
	}

	restaurantRoutes := r.Group("/restaurants")
	{
		restaurantRoutes.POST("", h.Restaurants.Create)
		restaurantRoutes.GET("", h.Restaurants.Search)
		restaurantRoutes.GET("/search", h.Restaurants.Search)
		restaurantRoutes.GET("/current", middleware.RequireSession(), h.Restaurants.Current)
		restaurantRoutes.GET("/:id", h.Restaurants.Get)
		restaurantRoutes.PUT("/:id", h.Restaurants.Update)
		restaurantRoutes.PATCH("/:id/status", h.Restaurants.UpdateStatus)
		restaurantRoutes.DELETE("/:id", h.Restaurants.Delete)
	}

	predictionRoutes := r.Group("/predictions")
	{
		predictionRoutes.POST("", middleware.RequireSession(), h.Predictions.GenerateForCurrent)
		predictionRoutes.POST("/generate", h.Predictions.Generate)
		predictionRoutes.POST("/demo", h.Predictions.GenerateDemo)
	}

	return r
}
