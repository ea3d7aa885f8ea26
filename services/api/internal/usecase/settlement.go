package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bitnest/pkg/logger"
	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo"

	"github.com/shopspring/decimal"
)

const settleTimeout = 10 * time.Second

// SettlementSink is told about every completed settlement. Failures are logged and ignored.
type SettlementSink interface {
	Name() string
	Notify(ctx context.Context, tx *entity.Transaction, stats *entity.LiquidityStats) error
}

// SettlementResult is the outcome of one settlement task. Transaction is set once the status
// update succeeded; Liquidity once the ledger was credited.
type SettlementResult struct {
	Transaction *entity.Transaction
	Liquidity   *entity.LiquidityStats
	Err         error
}

// Settler completes pending transactions after a fixed delay. Each scheduled task runs exactly
// once and cannot be cancelled.
type Settler struct {
	transactions repo.TransactionRepository
	ledger       repo.LiquidityRepository
	sinks        []SettlementSink
	delay        time.Duration
	logger       *logger.Logger
	wg           sync.WaitGroup
}

func NewSettler(transactions repo.TransactionRepository, ledger repo.LiquidityRepository, delay time.Duration, logger *logger.Logger, sinks ...SettlementSink) *Settler {
	return &Settler{
		transactions: transactions,
		ledger:       ledger,
		sinks:        sinks,
		delay:        delay,
		logger:       logger,
	}
}

// Schedule returns a channel that receives exactly one result and is then closed.
func (s *Settler) Schedule(tx *entity.Transaction) <-chan SettlementResult {
	done := make(chan SettlementResult, 1)
	txID, amount := tx.ID, tx.Amount

	s.wg.Add(1)
	time.AfterFunc(s.delay, func() {
		defer s.wg.Done()
		done <- s.settle(txID, amount)
		close(done)
	})
	return done
}

// Wait blocks until every scheduled settlement has finished.
func (s *Settler) Wait() {
	s.wg.Wait()
}

func (s *Settler) settle(txID, amount string) SettlementResult {
	ctx, cancel := context.WithTimeout(context.Background(), settleTimeout)
	defer cancel()

	updated, err := s.transactions.UpdateStatus(ctx, txID, entity.StatusCompleted, entity.NewSimulatedTxHash())
	if err != nil {
		s.logger.Error("Settlement of transaction %s failed: %v", txID, err)
		return SettlementResult{Err: fmt.Errorf("failed to complete transaction %s: %w", txID, err)}
	}

	delta, err := decimal.NewFromString(amount)
	if err != nil {
		s.logger.Error("Transaction %s has unparseable amount %q, ledger not credited", txID, amount)
		return SettlementResult{Transaction: updated, Err: fmt.Errorf("%w: %q", entity.ErrInvalidAmount, amount)}
	}

	stats, err := s.ledger.Add(ctx, delta)
	if err != nil {
		if errors.Is(err, entity.ErrLiquidityNotFound) {
			s.logger.Warn("Liquidity ledger not initialized, skipping credit for transaction %s", txID)
		} else {
			s.logger.Error("Failed to credit liquidity for transaction %s: %v", txID, err)
		}
		return SettlementResult{Transaction: updated, Err: fmt.Errorf("failed to credit liquidity: %w", err)}
	}

	s.logger.Info("Transaction %s settled (%s %s), total liquidity %s", txID, updated.Protocol, amount, stats.TotalLiquidity)

	for _, sink := range s.sinks {
		if err := sink.Notify(ctx, updated, stats); err != nil {
			s.logger.Warn("Settlement sink %s failed for transaction %s: %v", sink.Name(), txID, err)
		}
	}

	return SettlementResult{Transaction: updated, Liquidity: stats}
}
