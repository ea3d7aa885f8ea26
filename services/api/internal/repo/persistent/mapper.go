package persistent

import (
	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/model"
)

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	var userID string
	if m.UserID != nil {
		userID = *m.UserID
	}

	return &entity.Transaction{
		ID:        m.ID,
		UserID:    userID,
		Protocol:  entity.Protocol(m.Protocol),
		Amount:    m.Amount,
		Status:    entity.TransactionStatus(m.Status),
		TxHash:    m.TxHash,
		CreatedAt: m.CreatedAt,
	}
}

func ToTransactionModel(e *entity.Transaction) *model.TransactionModel {
	if e == nil {
		return nil
	}

	var userID *string
	if e.UserID != "" {
		userID = &e.UserID
	}

	return &model.TransactionModel{
		ID:        e.ID,
		UserID:    userID,
		Protocol:  string(e.Protocol),
		Amount:    e.Amount,
		Status:    string(e.Status),
		TxHash:    e.TxHash,
		CreatedAt: e.CreatedAt,
	}
}

func ToLiquidityEntity(m *model.LiquidityStatsModel) *entity.LiquidityStats {
	if m == nil {
		return nil
	}

	return &entity.LiquidityStats{
		ID:             m.ID,
		TotalLiquidity: m.TotalLiquidity,
		LastUpdated:    m.LastUpdated,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		Username:      m.Username,
		PasswordHash:  m.Password,
		Role:          entity.Role(m.Role),
		WalletAddress: m.WalletAddress,
		ReferralCode:  m.ReferralCode,
		ReferredBy:    m.ReferredBy,
		CreatedAt:     m.CreatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:            e.ID,
		Username:      e.Username,
		Password:      e.PasswordHash,
		Role:          string(e.Role),
		WalletAddress: e.WalletAddress,
		ReferralCode:  e.ReferralCode,
		ReferredBy:    e.ReferredBy,
		CreatedAt:     e.CreatedAt,
	}
}
