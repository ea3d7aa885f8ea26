package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"bitnest/pkg/config"
	"bitnest/pkg/database"
	"bitnest/pkg/jwt"
	"bitnest/pkg/logger"
	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo/persistent"
	"bitnest/services/api/internal/usecase"
)

type demoUser struct {
	username string
	password string
	protocol entity.Protocol
	amount   string
}

var demoUsers = []demoUser{
	{"alice", "password123", entity.ProtocolLoop, "500"},
	{"bob", "password123", entity.ProtocolSavingBox, "250"},
	{"charlie", "password123", entity.ProtocolSavings, "1000"},
	{"diana", "password123", entity.ProtocolDAO, "75"},
}

func main() {
	var withTransactions bool
	flag.BoolVar(&withTransactions, "transactions", true, "join a protocol for every demo user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	transactions := persistent.NewTransactionRepository(db)
	ledger := persistent.NewLiquidityRepository(db)
	users := persistent.NewUserRepository(db)

	// Seed transactions settle immediately.
	settler := usecase.NewSettler(transactions, ledger, 0, log)
	auth := usecase.NewAuthUseCase(users, jwt.NewService(cfg.JWTSecret), log)
	protocol := usecase.NewProtocolUseCase(transactions, settler, log)
	liquidity := usecase.NewLiquidityUseCase(ledger, log)

	if err := auth.EnsureAdmin(ctx, cfg.AdminPassword); err != nil {
		log.Error("Failed to seed admin: %v", err)
		panic(err)
	}
	if _, err := liquidity.Seed(ctx, cfg.LiquiditySeed); err != nil {
		log.Error("Failed to seed liquidity: %v", err)
		panic(err)
	}

	if err := seedUsers(ctx, auth, protocol, withTransactions, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}
	settler.Wait()

	stats, err := liquidity.Get(ctx)
	if err != nil {
		panic(err)
	}
	log.Info("Database seeded successfully! Total liquidity: %s", stats.TotalLiquidity)
}

// seedUsers registers each demo user with the previous one's referral code, forming a chain.
func seedUsers(ctx context.Context, auth usecase.AuthUseCase, protocol usecase.ProtocolUseCase, withTransactions bool, log *logger.Logger) error {
	referredBy := ""
	for _, u := range demoUsers {
		user, _, err := auth.Register(ctx, u.username, u.password, referredBy)
		if errors.Is(err, entity.ErrUsernameTaken) {
			log.Info("User %s already exists, skipping", u.username)
			user, _, err = auth.Login(ctx, u.username, u.password)
			if err != nil {
				return fmt.Errorf("existing user %s: %w", u.username, err)
			}
			referredBy = user.ReferralCode
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to register %s: %w", u.username, err)
		}
		log.Info("Created user %s (%s), referral code %s", user.Username, user.ID, user.ReferralCode)
		referredBy = user.ReferralCode

		if !withTransactions {
			continue
		}
		if _, err := protocol.Join(ctx, usecase.JoinRequest{
			Protocol: string(u.protocol),
			UserID:   user.ID,
			Amount:   u.amount,
		}); err != nil {
			return fmt.Errorf("failed to join %s for %s: %w", u.protocol, u.username, err)
		}
	}
	return nil
}
