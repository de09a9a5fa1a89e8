package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Application ---

type ApplyAmbassadorRequest struct {
	Motivation     string `json:"motivation" validate:"required,min=10"`
	SocialMediaUrl string `json:"social_media_url" validate:"omitempty,url"`
}

type AmbassadorResponse struct {
	Id                   uuid.UUID       `json:"id"`
	UserId               uuid.UUID       `json:"user_id"`
	Code                 string          `json:"code,omitempty"`
	Status               string          `json:"status"`
	TierName             string          `json:"tier_name"`
	DiscountPercentage   decimal.Decimal `json:"discount_percentage"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	TotalReferrals       int             `json:"total_referrals"`
	TotalEarnings        decimal.Decimal `json:"total_earnings"`
	PendingEarnings      decimal.Decimal `json:"pending_earnings"`
	PaidEarnings         decimal.Decimal `json:"paid_earnings"`
	CreatedAt            time.Time       `json:"created_at"`
	ApprovedAt           *time.Time      `json:"approved_at,omitempty"`
}

// --- Admin Review ---

type ApproveAmbassadorRequest struct {
	DiscountPercentage   *decimal.Decimal `json:"discount_percentage" validate:"omitempty"`
	CommissionPercentage *decimal.Decimal `json:"commission_percentage" validate:"omitempty"`
}

type RejectAmbassadorRequest struct {
	Reason string `json:"reason" validate:"required,min=5"`
}

type SuspendAmbassadorRequest struct {
	Reason string `json:"reason" validate:"required,min=5"`
}

// --- Campaign Links ---

type CreateLinkRequest struct {
	CampaignName string `json:"campaign_name" validate:"omitempty,max=50"`
}

type AmbassadorLinkResponse struct {
	Id           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	CampaignName string    `json:"campaign_name,omitempty"`
	Signups      int       `json:"signups"`
	Conversions  int       `json:"conversions"`
	CreatedAt    time.Time `json:"created_at"`
}

// --- Stats ---

type AmbassadorStatsResponse struct {
	TotalReferrals     int64           `json:"total_referrals"`
	ConvertedReferrals int64           `json:"converted_referrals"`
	ActiveSubscribers  int64           `json:"active_subscribers"`
	ConversionRate     float64         `json:"conversion_rate"`
	TierName           string          `json:"tier_name"`
	TotalEarnings      decimal.Decimal `json:"total_earnings"`
	PendingEarnings    decimal.Decimal `json:"pending_earnings"`
	PaidEarnings       decimal.Decimal `json:"paid_earnings"`
	UnclaimedComms     decimal.Decimal `json:"unclaimed_commission_total"`
}

// --- Admin Listing ---

type AdminAmbassadorListResponse struct {
	Id             uuid.UUID       `json:"id"`
	UserEmail      string          `json:"user_email"`
	UserName       string          `json:"user_name"`
	Code           string          `json:"code,omitempty"`
	Status         string          `json:"status"`
	TierName       string          `json:"tier_name"`
	Motivation     string          `json:"motivation,omitempty"`
	SocialMediaUrl string          `json:"social_media_url,omitempty"`
	TotalReferrals int             `json:"total_referrals"`
	TotalEarnings  decimal.Decimal `json:"total_earnings"`
	CreatedAt      time.Time       `json:"created_at"`
}
