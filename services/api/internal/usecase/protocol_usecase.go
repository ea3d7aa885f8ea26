package usecase

import (
	"context"
	"fmt"

	"bitnest/pkg/logger"
	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo"
)

type JoinRequest struct {
	Protocol string
	UserID   string
	Amount   string
}

type ProtocolUseCase interface {
	// Join records a pending transaction and schedules its settlement without waiting for it.
	Join(ctx context.Context, req JoinRequest) (*entity.Transaction, error)
	ListTransactions(ctx context.Context, userID string) ([]*entity.Transaction, error)
}

type protocolUseCase struct {
	transactions repo.TransactionRepository
	settler      *Settler
	logger       *logger.Logger
}

func NewProtocolUseCase(transactions repo.TransactionRepository, settler *Settler, logger *logger.Logger) ProtocolUseCase {
	return &protocolUseCase{
		transactions: transactions,
		settler:      settler,
		logger:       logger,
	}
}

func (uc *protocolUseCase) Join(ctx context.Context, req JoinRequest) (*entity.Transaction, error) {
	protocol := entity.Protocol(req.Protocol)
	if !protocol.Valid() {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidProtocol, req.Protocol)
	}

	amount, ok := parseBoundedDecimal(req.Amount)
	if !ok || !amount.IsPositive() {
		return nil, entity.ErrInvalidAmount
	}

	tx, err := uc.transactions.Create(ctx, &entity.Transaction{
		UserID:   req.UserID,
		Protocol: protocol,
		Amount:   req.Amount,
	})
	if err != nil {
		uc.logger.Error("Failed to create transaction: %v", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.settler.Schedule(tx)
	uc.logger.Info("Transaction %s pending for user %s on %s protocol", tx.ID, tx.UserID, tx.Protocol)

	return tx, nil
}

func (uc *protocolUseCase) ListTransactions(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	transactions, err := uc.transactions.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to get transactions: %v", err)
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}
