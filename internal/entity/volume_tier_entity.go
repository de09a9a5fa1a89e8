package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VolumeTier is an admin-configured referral-count threshold that determines
// the discount percentage offered to an ambassador's referred users.
type VolumeTier struct {
	Id                 uuid.UUID
	TierName           string
	MinReferrals       int
	DiscountPercentage decimal.Decimal
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
