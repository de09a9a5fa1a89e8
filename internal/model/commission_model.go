package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AmbassadorCommission rows are immutable after insert except for the
// status/payout_period_id pair written by payout settlement. The unique index
// on payment_order_id makes webhook re-delivery duplicate-safe.
type AmbassadorCommission struct {
	Id                   uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AmbassadorId         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReferralId           uuid.UUID       `gorm:"type:uuid;not null;index"`
	SubscriptionId       uuid.UUID       `gorm:"type:uuid;not null"`
	PaymentOrderId       string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	SubscriptionAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CommissionPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CommissionAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency             string          `gorm:"type:varchar(10);not null;default:'USD'"`
	PeriodStart          time.Time       `gorm:"not null"`
	PeriodEnd            time.Time       `gorm:"not null"`
	Status               string          `gorm:"type:commission_status;not null;default:'pending';index"`
	PayoutPeriodId       *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt            time.Time       `gorm:"autoCreateTime"`
}

func (AmbassadorCommission) TableName() string {
	return "ambassador_commissions"
}
