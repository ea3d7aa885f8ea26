// Package repo declares the storage contracts shared by the memory, Postgres and Redis backends.
package repo

import (
	"context"

	"bitnest/services/api/internal/entity"

	"github.com/shopspring/decimal"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error)
	Get(ctx context.Context, id string) (*entity.Transaction, error)
	// UpdateStatus keeps the stored hash when txHash is empty.
	UpdateStatus(ctx context.Context, id string, status entity.TransactionStatus, txHash string) (*entity.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error)
}

// LiquidityRepository is a single-slot register: every write replaces the current snapshot.
type LiquidityRepository interface {
	Get(ctx context.Context) (*entity.LiquidityStats, error)
	Replace(ctx context.Context, total decimal.Decimal) (*entity.LiquidityStats, error)
	// Add atomically adds delta to the current total.
	Add(ctx context.Context, delta decimal.Decimal) (*entity.LiquidityStats, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByReferralCode(ctx context.Context, code string) (*entity.User, error)
	UpdateWallet(ctx context.Context, id, walletAddress string) (*entity.User, error)
	GenerateReferralCode() string
}
