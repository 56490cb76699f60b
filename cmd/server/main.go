package main

import (
	"context"
	"errors"
	"log"
	"mcaverse/internal/config"
	"mcaverse/internal/db"
	"mcaverse/internal/middleware"
	"mcaverse/internal/router"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if cfg.JWTSecret == "" {
		log.Println("AUTH_JWT_SECRET not set, all authenticated endpoints will return 401")
	}

	// Initialize Database
	db.Init(cfg.DatabaseURL)

	stop := make(chan struct{})
	limiters := middleware.NewFormLimiters(cfg.RateLimits.FormRPS, cfg.RateLimits.FormBurst)
	limiters.StartCleanup(10*time.Minute, stop)

	verifier := middleware.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	r := router.New(cfg, verifier, limiters)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("MCAverse server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	close(stop)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
