package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/EraEKV/restometrics/internal/auth"
	"github.com/EraEKV/restometrics/internal/config"
	"github.com/EraEKV/restometrics/internal/db"
	"github.com/EraEKV/restometrics/internal/popularity"
	"github.com/EraEKV/restometrics/internal/prediction"
	"github.com/EraEKV/restometrics/internal/restaurant"
	"github.com/EraEKV/restometrics/internal/router"
	"github.com/EraEKV/restometrics/internal/weather"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Println("✅ Environment loaded successfully")

	// Database connection
	pool := db.ConnectPostgres(cfg.DatabaseURL)
	defer pool.Close()

	// Redis session backend
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Invalid REDIS_URL: %v", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	log.Println("✅ Connected to Redis")

	// RESTAURANT MODULE
	restaurantRepo := restaurant.NewPostgresRepository(pool)
	restaurantService := restaurant.NewService(restaurantRepo)
	restaurantHandler := restaurant.NewHandler(restaurantService)

	// AUTH MODULE
	sessionStore := auth.NewRedisSessionStore(redisClient)
	authService := auth.NewService(restaurantService, sessionStore, cfg.SessionTTL)
	authHandler := auth.NewHandler(authService)

	// PREDICTION MODULE
	weatherClient := weather.NewClient(cfg.OpenMeteoBaseURL, cfg.ExternalTimeout)

	var geminiClient popularity.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient = popularity.NewGeminiClient(
			cfg.GeminiAPIKey,
			cfg.GeminiModel,
			cfg.ExternalTimeout,
		)
	} else {
		log.Println("GEMINI_API_KEY not set, popularity forecasts use local rules")
	}
	popularityService := popularity.NewService(geminiClient)

	predictionService := prediction.NewService(weatherClient, popularityService, cfg.DefaultCity)
	demoGenerator := prediction.NewDemoGenerator(time.Now().UnixNano())
	predictionHandler := prediction.NewHandler(predictionService, demoGenerator, restaurantService)

	r := router.New(router.Handlers{
		Auth:        authHandler,
		Restaurants: restaurantHandler,
		Predictions: predictionHandler,
		Sessions:    authService,
	}, cfg.AllowedOrigins)

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
