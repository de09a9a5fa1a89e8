package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CommissionResponse struct {
	Id               uuid.UUID       `json:"id"`
	AmbassadorId     uuid.UUID       `json:"ambassador_id"`
	ReferralId       uuid.UUID       `json:"referral_id"`
	PaymentOrderId   string          `json:"payment_order_id"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	Status           string          `json:"status"`
	PayoutPeriodId   *uuid.UUID      `json:"payout_period_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ProcessPaymentResponse reports what the commission pipeline did with a
// payment. Skipped payments carry the reason instead of a commission.
type ProcessPaymentResponse struct {
	Recorded   bool                `json:"recorded"`
	SkipReason string              `json:"skip_reason,omitempty"`
	Commission *CommissionResponse `json:"commission,omitempty"`
}
