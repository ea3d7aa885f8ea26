package persistent

import (
	"context"
	"errors"
	"time"

	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/model"
	"bitnest/services/api/internal/repo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// liquidityRepository keeps at most one row in liquidity_stats.
type liquidityRepository struct {
	db *gorm.DB
}

func NewLiquidityRepository(db *gorm.DB) repo.LiquidityRepository {
	return &liquidityRepository{db: db}
}

func (r *liquidityRepository) Get(ctx context.Context) (*entity.LiquidityStats, error) {
	var statsModel model.LiquidityStatsModel
	if err := r.db.WithContext(ctx).Order("last_updated DESC").First(&statsModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrLiquidityNotFound
		}
		return nil, err
	}
	return ToLiquidityEntity(&statsModel), nil
}

func (r *liquidityRepository) Replace(ctx context.Context, total decimal.Decimal) (*entity.LiquidityStats, error) {
	var stats *entity.LiquidityStats
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := lockCurrent(tx)
		if err != nil && !errors.Is(err, entity.ErrLiquidityNotFound) {
			return err
		}
		stats, err = replace(tx, current, total)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *liquidityRepository) Add(ctx context.Context, delta decimal.Decimal) (*entity.LiquidityStats, error) {
	var stats *entity.LiquidityStats
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := lockCurrent(tx)
		if err != nil {
			return err
		}

		total, err := decimal.NewFromString(current.TotalLiquidity)
		if err != nil {
			return err
		}

		stats, err = replace(tx, current, total.Add(delta))
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func lockCurrent(tx *gorm.DB) (*model.LiquidityStatsModel, error) {
	var current model.LiquidityStatsModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Order("last_updated DESC").First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrLiquidityNotFound
		}
		return nil, err
	}
	return &current, nil
}

// replace rewrites the locked row in place with a fresh id so that writers queued on the row lock
// see the new snapshot instead of a deleted one.
func replace(tx *gorm.DB, current *model.LiquidityStatsModel, total decimal.Decimal) (*entity.LiquidityStats, error) {
	next := &model.LiquidityStatsModel{
		ID:             uuid.New().String(),
		TotalLiquidity: total.String(),
		LastUpdated:    time.Now(),
	}

	if current == nil {
		if err := tx.Create(next).Error; err != nil {
			return nil, err
		}
		return ToLiquidityEntity(next), nil
	}

	err := tx.Model(&model.LiquidityStatsModel{}).Where("id = ?", current.ID).Updates(map[string]interface{}{
		"id":              next.ID,
		"total_liquidity": next.TotalLiquidity,
		"last_updated":    next.LastUpdated,
	}).Error
	if err != nil {
		return nil, err
	}
	return ToLiquidityEntity(next), nil
}
