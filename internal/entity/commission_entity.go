package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CommissionStatus string

const (
	CommissionStatusPending CommissionStatus = "pending"
	CommissionStatusPaid    CommissionStatus = "paid"
)

// AmbassadorCommission is one immutable ledger entry per qualifying
// subscription payment. CommissionAmount is always computed on the gross
// SubscriptionAmount, never on the discounted net.
type AmbassadorCommission struct {
	Id                   uuid.UUID
	AmbassadorId         uuid.UUID
	ReferralId           uuid.UUID
	SubscriptionId       uuid.UUID
	PaymentOrderId       string
	SubscriptionAmount   decimal.Decimal
	DiscountAmount       decimal.Decimal
	CommissionPercentage decimal.Decimal
	CommissionAmount     decimal.Decimal
	Currency             string
	PeriodStart          time.Time
	PeriodEnd            time.Time
	Status               CommissionStatus
	PayoutPeriodId       *uuid.UUID
	CreatedAt            time.Time
}
