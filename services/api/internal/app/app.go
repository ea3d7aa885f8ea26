package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bitnest/pkg/cache"
	"bitnest/pkg/chain"
	"bitnest/pkg/config"
	"bitnest/pkg/database"
	"bitnest/pkg/jwt"
	"bitnest/pkg/logger"
	"bitnest/pkg/queue"
	"bitnest/pkg/s3"
	apiHTTP "bitnest/services/api/internal/controller/http"
	"bitnest/services/api/internal/notify"
	"bitnest/services/api/internal/repo"
	"bitnest/services/api/internal/repo/kv"
	"bitnest/services/api/internal/repo/memory"
	"bitnest/services/api/internal/repo/persistent"
	"bitnest/services/api/internal/usecase"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	bootstrapTimeout = 15 * time.Second
	shutdownTimeout  = 5 * time.Second
)

type App struct {
	cfg     *config.Config
	log     *logger.Logger
	server  *http.Server
	settler *usecase.Settler

	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	chainClient *chain.Client
}

type stores struct {
	transactions repo.TransactionRepository
	ledger       repo.LiquidityRepository
	users        repo.UserRepository
}

// NewApp connects the configured backends, seeds the admin user and the liquidity ledger, and
// builds the HTTP server. Redis, RabbitMQ and S3 are optional.
func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	if err := a.build(); err != nil {
		a.closeBackends()
		return nil, err
	}
	return a, nil
}

func (a *App) build() error {
	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()

	ethUSDPrice, err := decimal.NewFromString(a.cfg.EthUSDPrice)
	if err != nil {
		return fmt.Errorf("invalid ETH_USD_PRICE %q: %w", a.cfg.EthUSDPrice, err)
	}

	if err := a.connect(ctx); err != nil {
		return err
	}

	st, err := a.stores()
	if err != nil {
		return err
	}

	jwtService := jwt.NewService(a.cfg.JWTSecret)

	a.settler = usecase.NewSettler(st.transactions, st.ledger, a.cfg.SettlementDelay, a.log, a.sinks()...)

	var reader usecase.BalanceReader
	if a.chainClient != nil {
		reader = a.chainClient
	}

	liquidityUseCase := usecase.NewLiquidityUseCase(st.ledger, a.log)
	protocolUseCase := usecase.NewProtocolUseCase(st.transactions, a.settler, a.log)
	referralUseCase := usecase.NewReferralUseCase(st.users, a.cfg.ReferralBaseURL, a.log)
	blockchainUseCase := usecase.NewBlockchainUseCase(reader, st.ledger, a.cfg.PaymentWalletAddress, ethUSDPrice, a.log)
	authUseCase := usecase.NewAuthUseCase(st.users, jwtService, a.log)

	if err := authUseCase.EnsureAdmin(ctx, a.cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if _, err := liquidityUseCase.Seed(ctx, a.cfg.LiquiditySeed); err != nil {
		return fmt.Errorf("failed to seed liquidity: %w", err)
	}

	h := handlers{
		liquidity:  apiHTTP.NewLiquidityHandler(liquidityUseCase, a.log),
		protocol:   apiHTTP.NewProtocolHandler(protocolUseCase, a.log),
		referral:   apiHTTP.NewReferralHandler(referralUseCase, a.log),
		blockchain: apiHTTP.NewBlockchainHandler(blockchainUseCase, a.log),
		auth:       apiHTTP.NewAuthHandler(authUseCase, a.log),
	}
	if a.redisClient != nil {
		h.stream = apiHTTP.NewStreamHandler(a.redisClient, jwtService, a.log)
	}
	router := newRouter(a.cfg, a.log, jwtService, a.redisClient, h)

	a.server = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

func (a *App) connect(ctx context.Context) error {
	needsDB := a.cfg.StorageDriver == config.StoragePostgres || a.cfg.LedgerDriver == config.StoragePostgres
	if needsDB {
		db, err := database.NewPostgresDB(a.cfg)
		if err != nil {
			return err
		}
		a.db = db
		// Migrations are handled by goose - see cmd/migrate/main.go
	}

	if a.cfg.RedisEnabled() || a.cfg.LedgerDriver == config.StorageRedis {
		redisClient, err := cache.NewRedisClient(a.cfg)
		if err != nil {
			if a.cfg.LedgerDriver == config.StorageRedis {
				return err
			}
			a.log.Warn("Failed to connect to Redis, rate limiting disabled: %v", err)
		} else {
			a.redisClient = redisClient
		}
	}

	if a.cfg.RabbitMQEnabled() {
		queueClient, err := queue.NewRabbitMQClient(a.cfg, a.log)
		if err != nil {
			a.log.Warn("Failed to connect to RabbitMQ, settlement events disabled: %v", err)
		} else {
			a.queueClient = queueClient
		}
	}

	if a.cfg.EthRPCURL != "" {
		chainClient, err := chain.Dial(ctx, a.cfg.EthRPCURL)
		if err != nil {
			a.log.Warn("Failed to dial Ethereum RPC, blockchain endpoints disabled: %v", err)
		} else {
			a.chainClient = chainClient
		}
	}
	return nil
}

func (a *App) stores() (*stores, error) {
	st := &stores{}

	switch a.cfg.StorageDriver {
	case config.StorageMemory:
		st.transactions = memory.NewTransactionRepository()
		st.users = memory.NewUserRepository()
	case config.StoragePostgres:
		st.transactions = persistent.NewTransactionRepository(a.db)
		st.users = persistent.NewUserRepository(a.db)
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", a.cfg.StorageDriver)
	}

	switch a.cfg.LedgerDriver {
	case config.StorageMemory:
		st.ledger = memory.NewLiquidityRepository()
	case config.StoragePostgres:
		st.ledger = persistent.NewLiquidityRepository(a.db)
	case config.StorageRedis:
		st.ledger = kv.NewLiquidityRepository(a.redisClient)
	default:
		return nil, fmt.Errorf("unknown LEDGER_DRIVER %q", a.cfg.LedgerDriver)
	}

	a.log.Info("Storage: %s, ledger: %s", a.cfg.StorageDriver, a.cfg.LedgerDriver)
	return st, nil
}

func (a *App) sinks() []usecase.SettlementSink {
	var sinks []usecase.SettlementSink

	if a.redisClient != nil {
		sinks = append(sinks, notify.NewRedisPublisher(a.redisClient))
	}

	if a.queueClient != nil {
		sinks = append(sinks, notify.NewQueueNotifier(a.queueClient))
	}

	if a.cfg.S3Enabled() {
		s3Client, err := s3.NewClient(a.cfg)
		if err != nil {
			a.log.Warn("Failed to create S3 client, receipts disabled: %v", err)
		} else {
			sinks = append(sinks, notify.NewReceiptArchiver(s3Client))
		}
	}
	return sinks
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("BitNest API starting on port %s", a.cfg.ServerPort)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		a.closeBackends()
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("Shutting down BitNest API...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.Shutdown(shutdownCtx)
}

// Shutdown stops accepting requests, waits for pending settlements and closes the backends.
func (a *App) Shutdown(ctx context.Context) error {
	var err error
	if shutdownErr := a.server.Shutdown(ctx); shutdownErr != nil {
		a.log.Error("Server forced to shutdown: %v", shutdownErr)
		err = shutdownErr
	}

	a.settler.Wait()
	a.closeBackends()

	a.log.Info("BitNest API exited")
	return err
}

func (a *App) closeBackends() {
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.log.Error("Error closing database: %v", err)
			}
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		a.queueClient.Close()
	}

	if a.chainClient != nil {
		a.chainClient.Close()
	}
}
