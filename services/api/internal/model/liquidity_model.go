package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LiquidityStatsModel struct {
	ID             string    `gorm:"type:uuid;primary_key"`
	TotalLiquidity string    `gorm:"type:varchar(78);not null"`
	LastUpdated    time.Time `gorm:"not null"`
}

func (LiquidityStatsModel) TableName() string {
	return "liquidity_stats"
}

func (l *LiquidityStatsModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.LastUpdated.IsZero() {
		l.LastUpdated = time.Now()
	}
	return nil
}
