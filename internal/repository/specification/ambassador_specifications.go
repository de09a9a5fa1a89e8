package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByCode matches a referral or link code. Codes are stored uppercase; callers
// normalize before building the condition, the comparison stays case-insensitive as
// a safety net.
type ByCode struct {
	Code string
}

func (s ByCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("UPPER(code) = UPPER(?)", s.Code)
}

// ByUser filters by owning user id
type ByUser struct {
	UserID uuid.UUID
}

func (s ByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByAmbassador filters child rows by ambassador id
type ByAmbassador struct {
	AmbassadorID uuid.UUID
}

func (s ByAmbassador) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("ambassador_id = ?", s.AmbassadorID)
}

// ByReferredUser filters referrals by the referred end-user
type ByReferredUser struct {
	UserID uuid.UUID
}

func (s ByReferredUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("referred_user_id = ?", s.UserID)
}

// ByStatus filters on the status column
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ActiveOnly filters rows flagged is_active
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// CreatedWithin bounds rows to a half-open [From, To) creation window.
// Payout batching uses this so two adjacent periods never double-count a
// commission created exactly on the boundary.
type CreatedWithin struct {
	From time.Time
	To   time.Time
}

func (s CreatedWithin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ? AND created_at < ?", s.From, s.To)
}

// ByPayoutPeriod filters commissions batched into one payout
type ByPayoutPeriod struct {
	PayoutID uuid.UUID
}

func (s ByPayoutPeriod) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("payout_period_id = ?", s.PayoutID)
}
