package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AmbassadorReferral carries the one-referral-per-user-for-life invariant as a
// unique index on referred_user_id, not just a checked-then-inserted read.
type AmbassadorReferral struct {
	Id                        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AmbassadorId              uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReferredUserId            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	LinkId                    *uuid.UUID `gorm:"type:uuid;index"`
	ReferralCode              string     `gorm:"type:varchar(100);not null"`
	Status                    string     `gorm:"type:referral_status;not null;default:'pending'"`
	SubscriptionId            *uuid.UUID `gorm:"type:uuid"`
	FirstSubscriptionAt       *time.Time
	CommissionMonthsRemaining int             `gorm:"not null;default:12"`
	TotalCommissionEarned     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt                 time.Time       `gorm:"autoCreateTime"`
	UpdatedAt                 time.Time       `gorm:"autoUpdateTime"`
}

func (AmbassadorReferral) TableName() string {
	return "ambassador_referrals"
}
