package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AmbassadorStatus string

const (
	AmbassadorStatusPending   AmbassadorStatus = "pending"
	AmbassadorStatusActive    AmbassadorStatus = "active"
	AmbassadorStatusRejected  AmbassadorStatus = "rejected"
	AmbassadorStatusSuspended AmbassadorStatus = "suspended"
)

// Ambassador is one approved (or applying) referrer. Earnings totals keep the
// invariant TotalEarnings == PendingEarnings + PaidEarnings across commission
// accrual and payout settlement.
type Ambassador struct {
	Id                   uuid.UUID
	UserId               uuid.UUID
	Code                 string
	Status               AmbassadorStatus
	Motivation           string
	SocialMediaUrl       *string
	TierName             string
	DiscountPercentage   decimal.Decimal
	CommissionPercentage decimal.Decimal
	TotalReferrals       int
	TotalEarnings        decimal.Decimal
	PendingEarnings      decimal.Decimal
	PaidEarnings         decimal.Decimal
	ApprovedBy           *uuid.UUID
	ApprovedAt           *time.Time
	RejectionReason      *string
	RejectedBy           *uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// AmbassadorLink is a custom campaign link. Codes are always derived as
// "{baseCode}_{suffix}" so attribution can recover the base code by splitting
// on the first underscore.
type AmbassadorLink struct {
	Id              uuid.UUID
	AmbassadorId    uuid.UUID
	Code            string
	CampaignName    *string
	SignupCount     int
	ConversionCount int
	IsActive        bool
	CreatedAt       time.Time
}
