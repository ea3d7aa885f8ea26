package persistent

import (
	"context"
	"errors"
	"time"

	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/model"
	"bitnest/services/api/internal/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) repo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	transactionModel := ToTransactionModel(tx)
	if transactionModel.ID == "" {
		transactionModel.ID = uuid.New().String()
	}
	transactionModel.Status = string(entity.StatusPending)
	transactionModel.TxHash = nil
	transactionModel.CreatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(transactionModel).Error; err != nil {
		return nil, err
	}
	return ToTransactionEntity(transactionModel), nil
}

func (r *transactionRepository) Get(ctx context.Context, id string) (*entity.Transaction, error) {
	if !isUUID(id) {
		return nil, entity.ErrTransactionNotFound
	}
	var transactionModel model.TransactionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrTransactionNotFound
		}
		return nil, err
	}
	return ToTransactionEntity(&transactionModel), nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, id string, status entity.TransactionStatus, txHash string) (*entity.Transaction, error) {
	if !isUUID(id) {
		return nil, entity.ErrTransactionNotFound
	}
	updates := map[string]interface{}{"status": string(status)}
	if txHash != "" {
		updates["tx_hash"] = txHash
	}

	result := r.db.WithContext(ctx).Model(&model.TransactionModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrTransactionNotFound
	}
	return r.Get(ctx, id)
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = ToTransactionEntity(&transactionModels[i])
	}
	return transactions, nil
}

// isUUID guards queries on uuid columns, where Postgres rejects malformed text instead of matching nothing.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
