package memory

import (
	"context"
	"sync"
	"time"

	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type liquidityRepository struct {
	mu      sync.Mutex
	current *entity.LiquidityStats
}

// NewLiquidityRepository returns an empty ledger. Use Replace to seed it.
func NewLiquidityRepository() repo.LiquidityRepository {
	return &liquidityRepository{}
}

func (r *liquidityRepository) Get(_ context.Context) (*entity.LiquidityStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil, entity.ErrLiquidityNotFound
	}
	stats := *r.current
	return &stats, nil
}

func (r *liquidityRepository) Replace(_ context.Context, total decimal.Decimal) (*entity.LiquidityStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.replaceLocked(total), nil
}

func (r *liquidityRepository) Add(_ context.Context, delta decimal.Decimal) (*entity.LiquidityStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil, entity.ErrLiquidityNotFound
	}
	total, err := decimal.NewFromString(r.current.TotalLiquidity)
	if err != nil {
		return nil, err
	}
	return r.replaceLocked(total.Add(delta)), nil
}

func (r *liquidityRepository) replaceLocked(total decimal.Decimal) *entity.LiquidityStats {
	r.current = &entity.LiquidityStats{
		ID:             uuid.New().String(),
		TotalLiquidity: total.String(),
		LastUpdated:    time.Now(),
	}
	stats := *r.current
	return &stats
}
