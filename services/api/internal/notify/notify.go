package notify

import (
	"context"
	"fmt"
	"time"

	"bitnest/pkg/queue"
	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/usecase"
)

// SettledEvent is the body published and archived for every completed settlement.
type SettledEvent struct {
	TransactionID  string    `json:"transactionId"`
	UserID         string    `json:"userId"`
	Protocol       string    `json:"protocol"`
	Amount         string    `json:"amount"`
	TxHash         string    `json:"txHash"`
	TotalLiquidity string    `json:"totalLiquidity"`
	SettledAt      time.Time `json:"settledAt"`
}

func newSettledEvent(tx *entity.Transaction, stats *entity.LiquidityStats) SettledEvent {
	event := SettledEvent{
		TransactionID:  tx.ID,
		UserID:         tx.UserID,
		Protocol:       string(tx.Protocol),
		Amount:         tx.Amount,
		TotalLiquidity: stats.TotalLiquidity,
		SettledAt:      stats.LastUpdated,
	}
	if tx.TxHash != nil {
		event.TxHash = *tx.TxHash
	}
	return event
}

// Publisher is satisfied by *queue.Client.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// ObjectWriter is satisfied by *s3.Client.
type ObjectWriter interface {
	PutJSON(ctx context.Context, key string, v interface{}) error
}

type QueueNotifier struct {
	publisher Publisher
}

func NewQueueNotifier(publisher Publisher) *QueueNotifier {
	return &QueueNotifier{publisher: publisher}
}

func (n *QueueNotifier) Name() string { return "rabbitmq" }

func (n *QueueNotifier) Notify(ctx context.Context, tx *entity.Transaction, stats *entity.LiquidityStats) error {
	return n.publisher.Publish(ctx, queue.RoutingKeySettled, newSettledEvent(tx, stats))
}

// ReceiptArchiver stores one JSON receipt per settled transaction.
type ReceiptArchiver struct {
	writer ObjectWriter
}

func NewReceiptArchiver(writer ObjectWriter) *ReceiptArchiver {
	return &ReceiptArchiver{writer: writer}
}

func (a *ReceiptArchiver) Name() string { return "s3" }

func (a *ReceiptArchiver) Notify(ctx context.Context, tx *entity.Transaction, stats *entity.LiquidityStats) error {
	return a.writer.PutJSON(ctx, ReceiptKey(tx.ID), newSettledEvent(tx, stats))
}

func ReceiptKey(transactionID string) string {
	return fmt.Sprintf("receipts/%s.json", transactionID)
}

var (
	_ usecase.SettlementSink = (*QueueNotifier)(nil)
	_ usecase.SettlementSink = (*ReceiptArchiver)(nil)
	_ usecase.SettlementSink = (*RedisPublisher)(nil)
)
