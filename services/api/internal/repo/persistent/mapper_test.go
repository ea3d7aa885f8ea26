package persistent

import (
	"testing"
	"time"

	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestTransactionMapper_NullUserID(t *testing.T) {
	m := &model.TransactionModel{ID: "tx-1", Protocol: "dao", Amount: "7", Status: "pending"}

	e := ToTransactionEntity(m)
	assert.Equal(t, "", e.UserID)
	assert.Nil(t, e.TxHash)

	back := ToTransactionModel(e)
	assert.Nil(t, back.UserID)
}

func TestTransactionMapper_Completed(t *testing.T) {
	hash := "0xabc"
	e := &entity.Transaction{
		ID:        "tx-2",
		UserID:    "u1",
		Protocol:  entity.ProtocolLoop,
		Amount:    "100",
		Status:    entity.StatusCompleted,
		TxHash:    &hash,
		CreatedAt: time.Now(),
	}

	m := ToTransactionModel(e)
	assert.Equal(t, "u1", *m.UserID)
	assert.Equal(t, "completed", m.Status)
	assert.Equal(t, e, ToTransactionEntity(m))
}

func TestUserMapper_KeepsPasswordHash(t *testing.T) {
	e := &entity.User{ID: "u1", Username: "alice", PasswordHash: "hash", Role: entity.RoleAdmin, ReferralCode: "REF_1"}

	m := ToUserModel(e)
	assert.Equal(t, "hash", m.Password)
	assert.Equal(t, "admin", m.Role)
	assert.Equal(t, e, ToUserEntity(m))
}

func TestMappers_Nil(t *testing.T) {
	assert.Nil(t, ToTransactionEntity(nil))
	assert.Nil(t, ToTransactionModel(nil))
	assert.Nil(t, ToLiquidityEntity(nil))
	assert.Nil(t, ToUserEntity(nil))
	assert.Nil(t, ToUserModel(nil))
}
