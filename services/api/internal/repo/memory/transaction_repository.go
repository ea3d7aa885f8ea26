package memory

import (
	"context"
	"sync"
	"time"

	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo"

	"github.com/google/uuid"
)

type transactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]entity.Transaction
}

func NewTransactionRepository() repo.TransactionRepository {
	return &transactionRepository{transactions: make(map[string]entity.Transaction)}
}

func (r *transactionRepository) Create(_ context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	created := *tx
	if created.ID == "" {
		created.ID = uuid.New().String()
	}
	created.Status = entity.StatusPending
	created.TxHash = nil
	created.CreatedAt = time.Now()

	r.mu.Lock()
	r.transactions[created.ID] = created
	r.mu.Unlock()

	return &created, nil
}

func (r *transactionRepository) Get(_ context.Context, id string) (*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tx, ok := r.transactions[id]
	if !ok {
		return nil, entity.ErrTransactionNotFound
	}
	return &tx, nil
}

func (r *transactionRepository) UpdateStatus(_ context.Context, id string, status entity.TransactionStatus, txHash string) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, ok := r.transactions[id]
	if !ok {
		return nil, entity.ErrTransactionNotFound
	}

	tx.Status = status
	if txHash != "" {
		tx.TxHash = &txHash
	}
	r.transactions[id] = tx

	return &tx, nil
}

func (r *transactionRepository) ListByUser(_ context.Context, userID string) ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transactions := make([]*entity.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.UserID == userID {
			tx := tx
			transactions = append(transactions, &tx)
		}
	}
	return transactions, nil
}
