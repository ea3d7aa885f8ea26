package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bitnest/pkg/config"
	"bitnest/pkg/logger"
	"bitnest/services/api/internal/app"

	"github.com/gin-gonic/gin"
)

// @title           BitNest API
// @version         1.0
// @description     Protocol joins, liquidity ledger and referral registry for the BitNest demo

// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	if cfg.JWTSecret == "your-secret-key-change-in-production" {
		log.Warn("JWT_SECRET is not set, using the development default")
	}

	gin.SetMode(gin.ReleaseMode)

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Error("Failed to start: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
