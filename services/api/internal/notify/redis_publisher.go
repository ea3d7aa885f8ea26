package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"bitnest/services/api/internal/entity"

	"github.com/redis/go-redis/v9"
)

// SettlementChannel is the pub/sub channel carrying one user's settlements.
func SettlementChannel(userID string) string {
	return fmt.Sprintf("settlements:%s", userID)
}

// RedisPublisher fans settlements out to live subscribers of the user's channel.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Name() string { return "redis" }

func (p *RedisPublisher) Notify(ctx context.Context, tx *entity.Transaction, stats *entity.LiquidityStats) error {
	payload, err := json.Marshal(newSettledEvent(tx, stats))
	if err != nil {
		return fmt.Errorf("failed to marshal settlement: %w", err)
	}
	return p.client.Publish(ctx, SettlementChannel(tx.UserID), payload).Err()
}
