package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UpsertVolumeTierRequest struct {
	Name               string          `json:"name" validate:"required"`
	MinReferrals       int             `json:"min_referrals" validate:"gte=0"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage" validate:"required"`
}

type VolumeTierResponse struct {
	Id                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	MinReferrals       int             `json:"min_referrals"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}
