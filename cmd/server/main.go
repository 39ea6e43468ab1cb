package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"casthub/internal/api"
	"casthub/internal/app/service"
	"casthub/internal/common/security"
	"casthub/internal/domain/repository"
	"casthub/internal/platform/cache"
	"casthub/internal/platform/config"
	"casthub/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	// 4. Initialize Redis
	cache.Connect()
	defer cache.Close()
	fmt.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	podcastRepo := repository.NewPgPodcastRepository(database.DB)
	episodeRepo := repository.NewPgEpisodeRepository(database.DB)

	// 6. Initialize Services
	directory := cache.NewDirectory(cache.RDB, config.AppConfig.DirectoryCacheKey, config.AppConfig.DirectoryCacheTTL)
	access := service.NewAccessValidator(podcastRepo, episodeRepo)
	authService := service.NewAuthService(userRepo)
	podcastService := service.NewPodcastService(podcastRepo, episodeRepo, access, directory, database.DB)
	episodeService := service.NewEpisodeService(episodeRepo, access)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(authService, podcastService, episodeService, userRepo)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
