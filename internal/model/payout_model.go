package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AmbassadorPayout struct {
	Id               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AmbassadorId     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PeriodStart      time.Time       `gorm:"not null"`
	PeriodEnd        time.Time       `gorm:"not null"`
	TotalCommissions decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CommissionCount  int             `gorm:"not null;default:0"`
	Status           string          `gorm:"type:payout_status;not null;default:'pending';index"`
	PaymentMethod    *string         `gorm:"type:varchar(50)"`
	PaymentReference *string         `gorm:"type:varchar(255)"`
	PaidBy           *uuid.UUID      `gorm:"type:uuid"`
	PaidAt           *time.Time
	FailureReason    *string   `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (AmbassadorPayout) TableName() string {
	return "ambassador_payouts"
}
