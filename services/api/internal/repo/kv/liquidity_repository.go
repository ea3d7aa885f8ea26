// Package kv stores the liquidity ledger in Redis.
package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	liquidityKey = "liquidity:current"
	maxRetries   = 100
)

var ErrContended = errors.New("liquidity ledger: too many concurrent writers")

type liquidityRepository struct {
	client *redis.Client
}

func NewLiquidityRepository(client *redis.Client) repo.LiquidityRepository {
	return &liquidityRepository{client: client}
}

func (r *liquidityRepository) Get(ctx context.Context) (*entity.LiquidityStats, error) {
	return read(ctx, r.client)
}

func (r *liquidityRepository) Replace(ctx context.Context, total decimal.Decimal) (*entity.LiquidityStats, error) {
	stats := newSnapshot(total)
	if err := r.client.HSet(ctx, liquidityKey, fields(stats)).Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

// Add uses WATCH/MULTI so that a concurrent write aborts and retries this one.
func (r *liquidityRepository) Add(ctx context.Context, delta decimal.Decimal) (*entity.LiquidityStats, error) {
	var stats *entity.LiquidityStats
	txf := func(tx *redis.Tx) error {
		current, err := read(ctx, tx)
		if err != nil {
			return err
		}
		total, err := decimal.NewFromString(current.TotalLiquidity)
		if err != nil {
			return err
		}

		next := newSnapshot(total.Add(delta))
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, liquidityKey, fields(next))
			return nil
		})
		if err != nil {
			return err
		}
		stats = next
		return nil
	}

	for i := 0; i < maxRetries; i++ {
		err := r.client.Watch(ctx, txf, liquidityKey)
		if err == nil {
			return stats, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, ErrContended
}

type hashReader interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

func read(ctx context.Context, c hashReader) (*entity.LiquidityStats, error) {
	values, err := c.HGetAll(ctx, liquidityKey).Result()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, entity.ErrLiquidityNotFound
	}

	lastUpdated, err := time.Parse(time.RFC3339Nano, values["last_updated"])
	if err != nil {
		return nil, fmt.Errorf("corrupt liquidity snapshot: %w", err)
	}
	return &entity.LiquidityStats{
		ID:             values["id"],
		TotalLiquidity: values["total"],
		LastUpdated:    lastUpdated,
	}, nil
}

func newSnapshot(total decimal.Decimal) *entity.LiquidityStats {
	return &entity.LiquidityStats{
		ID:             uuid.New().String(),
		TotalLiquidity: total.String(),
		LastUpdated:    time.Now().UTC(),
	}
}

func fields(stats *entity.LiquidityStats) map[string]interface{} {
	return map[string]interface{}{
		"id":           stats.ID,
		"total":        stats.TotalLiquidity,
		"last_updated": stats.LastUpdated.Format(time.RFC3339Nano),
	}
}
