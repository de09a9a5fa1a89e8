package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Signup Attribution ---

type TrackSignupRequest struct {
	UserId uuid.UUID `json:"user_id" validate:"required"`
	Code   string    `json:"code" validate:"required"`
}

type TrackSignupResponse struct {
	ReferralId     uuid.UUID `json:"referral_id"`
	AmbassadorCode string    `json:"ambassador_code"`
	Status         string    `json:"status"`
}

// --- Discount Quote ---

type DiscountQuoteRequest struct {
	Code   string          `json:"code" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// DiscountQuoteResponse is always a usable answer: invalid codes come back
// with Valid=false and a zero discount rather than an error.
type DiscountQuoteResponse struct {
	Valid              bool            `json:"valid"`
	Code               string          `json:"code"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	FinalAmount        decimal.Decimal `json:"final_amount"`
}

// --- Event Bus Payloads ---

type ReferralRecordedMessage struct {
	AmbassadorId uuid.UUID `json:"ambassador_id"`
}

// --- Referral Listing ---

type ReferralResponse struct {
	Id                        uuid.UUID       `json:"id"`
	AmbassadorId              uuid.UUID       `json:"ambassador_id"`
	ReferredUserId            uuid.UUID       `json:"referred_user_id"`
	Status                    string          `json:"status"`
	CommissionMonthsRemaining int             `json:"commission_months_remaining"`
	TotalCommissionEarned     decimal.Decimal `json:"total_commission_earned"`
	FirstSubscriptionAt       *time.Time      `json:"first_subscription_at,omitempty"`
	CreatedAt                 time.Time       `json:"created_at"`
}
