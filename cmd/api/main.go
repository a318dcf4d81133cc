package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/sofra/backend/config"
	"github.com/pageza/sofra/backend/internal/catalog"
	"github.com/pageza/sofra/backend/internal/database"
	"github.com/pageza/sofra/backend/internal/middleware"
	"github.com/pageza/sofra/backend/internal/router"
	"github.com/pageza/sofra/backend/internal/server"
	"github.com/pageza/sofra/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinModeFor(config.GetEnvironment()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	dishes, err := loadCatalog(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Rate limiting is optional, the service runs without Redis
	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled() {
		redisClient, err := database.NewRedisClient(context.Background(), cfg)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
		} else {
			defer closeRedis(redisClient)
			limiter = middleware.NewSuggestionRateLimiter(redisClient, cfg.RateLimitPerMinute)
		}
	}

	dinnerService := service.NewDinnerService(dishes, nil)
	srv := server.New(cfg, router.SetupRouter(cfg, dinnerService, limiter))

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

// loadCatalog opens whatever the configured catalog source needs and reads the dishes once
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	var deps catalog.Dependencies

	switch cfg.CatalogSource {
	case config.CatalogDatabase:
		db, err := database.New(cfg)
		if err != nil {
			return nil, err
		}
		// The catalog never changes after startup, so the connection is only needed here
		defer func() {
			if err := database.Close(db); err != nil {
				log.Printf("Warning: failed to close database: %v", err)
			}
		}()
		deps.DB = db
	case config.CatalogS3:
		s3Cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			return nil, err
		}
		deps.S3 = s3Cfg.Client
	}

	return catalog.Load(ctx, cfg, deps)
}

func closeRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		log.Printf("Warning: failed to close Redis client: %v", err)
	}
}
