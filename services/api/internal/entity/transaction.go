package entity

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

type Protocol string

const (
	ProtocolLoop      Protocol = "loop"
	ProtocolSavingBox Protocol = "saving-box"
	ProtocolSavings   Protocol = "savings"
	ProtocolDAO       Protocol = "dao"
)

func (p Protocol) Valid() bool {
	switch p {
	case ProtocolLoop, ProtocolSavingBox, ProtocolSavings, ProtocolDAO:
		return true
	}
	return false
}

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	// StatusFailed is never assigned by settlement.
	StatusFailed TransactionStatus = "failed"
)

type Transaction struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Protocol  Protocol          `json:"protocol"`
	Amount    string            `json:"amount"`
	Status    TransactionStatus `json:"status"`
	TxHash    *string           `json:"txHash"`
	CreatedAt time.Time         `json:"createdAt"`
}

// NewSimulatedTxHash returns a random 0x-prefixed 64-digit hex string. It is a mock settlement
// reference, not the hash of any on-chain transaction.
func NewSimulatedTxHash() string {
	a, b := uuid.New(), uuid.New()
	return "0x" + hex.EncodeToString(a[:]) + hex.EncodeToString(b[:])
}
