package app

import (
	"net/http"
	"time"

	"bitnest/pkg/config"
	"bitnest/pkg/jwt"
	"bitnest/pkg/logger"
	"bitnest/pkg/middleware"
	apiHTTP "bitnest/services/api/internal/controller/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bitnest/services/api/docs" // Swagger docs
)

type handlers struct {
	liquidity  *apiHTTP.LiquidityHandler
	protocol   *apiHTTP.ProtocolHandler
	referral   *apiHTTP.ReferralHandler
	blockchain *apiHTTP.BlockchainHandler
	auth       *apiHTTP.AuthHandler

	// stream is nil without Redis.
	stream *apiHTTP.StreamHandler
}

func newRouter(cfg *config.Config, log *logger.Logger, jwtService *jwt.Service, redisClient *redis.Client, h handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	if redisClient != nil && cfg.RateLimitPerMinute > 0 {
		api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute, log))
	}

	{
		api.GET("/liquidity", h.liquidity.GetLiquidity)
		api.POST("/liquidity", h.liquidity.UpdateLiquidity)

		api.POST("/protocol/join", h.protocol.Join)
		api.GET("/transactions/:userId", h.protocol.GetTransactions)

		api.POST("/referral/generate", h.referral.Generate)
		api.GET("/referral/:code", h.referral.Resolve)

		api.GET("/blockchain/liquidity", h.blockchain.Liquidity)
		api.GET("/blockchain/balance/:address", h.blockchain.Balance)

		api.POST("/auth/register", h.auth.Register)
		api.POST("/auth/login", h.auth.Login)
	}

	if h.stream != nil {
		api.GET("/ws/settlements", h.stream.Settlements)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	{
		authed.GET("/auth/me", h.auth.Me)
		authed.PUT("/users/:id/wallet", h.referral.LinkWallet)
	}

	return r
}
