package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReferralStatus string

const (
	ReferralStatusPending ReferralStatus = "pending"
	ReferralStatusActive  ReferralStatus = "active"
)

// AmbassadorReferral links one referred end-user to exactly one ambassador.
// A user can be referred at most once, ever (unique on ReferredUserId).
type AmbassadorReferral struct {
	Id                        uuid.UUID
	AmbassadorId              uuid.UUID
	ReferredUserId            uuid.UUID
	LinkId                    *uuid.UUID
	ReferralCode              string
	Status                    ReferralStatus
	SubscriptionId            *uuid.UUID
	FirstSubscriptionAt       *time.Time
	CommissionMonthsRemaining int
	TotalCommissionEarned     decimal.Decimal
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}
