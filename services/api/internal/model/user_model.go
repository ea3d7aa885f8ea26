package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID            string  `gorm:"type:uuid;primary_key"`
	Username      string  `gorm:"uniqueIndex;not null"`
	Password      string  `gorm:"not null"`
	Role          string  `gorm:"type:varchar(20);default:'user'"`
	WalletAddress *string `gorm:"type:varchar(42)"`
	ReferralCode  string  `gorm:"uniqueIndex;not null"`
	ReferredBy    *string
	CreatedAt     time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
