package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePayoutRequest struct {
	AmbassadorId uuid.UUID `json:"ambassador_id" validate:"required"`
	PeriodStart  time.Time `json:"period_start" validate:"required"`
	PeriodEnd    time.Time `json:"period_end" validate:"required"`
}

type SettlePayoutRequest struct {
	Status           string `json:"status" validate:"required,oneof=paid failed"`
	PaymentMethod    string `json:"payment_method" validate:"required_if=Status paid"`
	PaymentReference string `json:"payment_reference" validate:"required_if=Status paid"`
	FailureReason    string `json:"failure_reason" validate:"required_if=Status failed"`
}

type PayoutResponse struct {
	Id               uuid.UUID       `json:"id"`
	AmbassadorId     uuid.UUID       `json:"ambassador_id"`
	Amount           decimal.Decimal `json:"amount"`
	CommissionCount  int64           `json:"commission_count"`
	Status           string          `json:"status"`
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	PaymentMethod    string          `json:"payment_method,omitempty"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	FailureReason    string          `json:"failure_reason,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}
