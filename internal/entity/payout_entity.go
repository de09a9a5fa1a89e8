package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayoutStatus string

const (
	PayoutStatusPending    PayoutStatus = "pending"
	PayoutStatusProcessing PayoutStatus = "processing"
	PayoutStatusPaid       PayoutStatus = "paid"
	PayoutStatusFailed     PayoutStatus = "failed"
)

// AmbassadorPayout batches pending commissions for one ambassador over a date
// range. State machine: pending -> processing -> paid | failed.
type AmbassadorPayout struct {
	Id               uuid.UUID
	AmbassadorId     uuid.UUID
	PeriodStart      time.Time
	PeriodEnd        time.Time
	TotalCommissions decimal.Decimal
	CommissionCount  int
	Status           PayoutStatus
	PaymentMethod    *string
	PaymentReference *string
	PaidBy           *uuid.UUID
	PaidAt           *time.Time
	FailureReason    *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
