package usecase

import (
	"context"
	"errors"
	"fmt"

	"bitnest/pkg/logger"
	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo"

	"github.com/shopspring/decimal"
)

type LiquidityUseCase interface {
	Get(ctx context.Context) (*entity.LiquidityStats, error)
	Update(ctx context.Context, totalLiquidity string) (*entity.LiquidityStats, error)
	// Seed writes total only when the ledger is empty.
	Seed(ctx context.Context, total string) (*entity.LiquidityStats, error)
}

type liquidityUseCase struct {
	ledger repo.LiquidityRepository
	logger *logger.Logger
}

func NewLiquidityUseCase(ledger repo.LiquidityRepository, logger *logger.Logger) LiquidityUseCase {
	return &liquidityUseCase{ledger: ledger, logger: logger}
}

func (uc *liquidityUseCase) Get(ctx context.Context) (*entity.LiquidityStats, error) {
	stats, err := uc.ledger.Get(ctx)
	if err != nil {
		if !errors.Is(err, entity.ErrLiquidityNotFound) {
			uc.logger.Error("Failed to get liquidity stats: %v", err)
		}
		return nil, fmt.Errorf("failed to get liquidity stats: %w", err)
	}
	return stats, nil
}

func (uc *liquidityUseCase) Update(ctx context.Context, totalLiquidity string) (*entity.LiquidityStats, error) {
	total, err := parseTotal(totalLiquidity)
	if err != nil {
		return nil, err
	}

	stats, err := uc.ledger.Replace(ctx, total)
	if err != nil {
		uc.logger.Error("Failed to update liquidity stats: %v", err)
		return nil, fmt.Errorf("failed to update liquidity stats: %w", err)
	}
	return stats, nil
}

func (uc *liquidityUseCase) Seed(ctx context.Context, total string) (*entity.LiquidityStats, error) {
	stats, err := uc.ledger.Get(ctx)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, entity.ErrLiquidityNotFound) {
		return nil, err
	}

	stats, err = uc.Update(ctx, total)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("Liquidity ledger seeded with %s", stats.TotalLiquidity)
	return stats, nil
}

// Amounts are stored as plain decimal text in VARCHAR(78) columns.
const (
	maxAmountLength   = 78
	maxIntegerDigits  = 59
	maxFractionDigits = 18
)

// parseBoundedDecimal rejects values whose plain form would not fit the amount columns. The
// exponent is checked before anything rescales the coefficient.
func parseBoundedDecimal(value string) (decimal.Decimal, bool) {
	if len(value) > maxAmountLength {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}
	exp := int(d.Exponent())
	if exp < -maxFractionDigits || d.NumDigits()+exp > maxIntegerDigits {
		return decimal.Zero, false
	}
	return d, true
}

func parseTotal(value string) (decimal.Decimal, error) {
	total, ok := parseBoundedDecimal(value)
	if !ok || total.IsNegative() {
		return decimal.Zero, entity.ErrInvalidTotal
	}
	return total, nil
}
