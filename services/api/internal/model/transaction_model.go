package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	UserID    *string   `gorm:"type:text;index"`
	Protocol  string    `gorm:"type:varchar(20);not null"`
	Amount    string    `gorm:"type:varchar(78);not null"`
	TxHash    *string   `gorm:"type:varchar(66)"`
	Status    string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
