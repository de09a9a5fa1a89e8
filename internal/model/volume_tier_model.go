package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AmbassadorVolumeTier struct {
	Id                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TierName           string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	MinReferrals       int             `gorm:"not null"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	IsActive           bool            `gorm:"not null;default:true"`
	CreatedAt          time.Time       `gorm:"autoCreateTime"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime"`
}

func (AmbassadorVolumeTier) TableName() string {
	return "ambassador_volume_tiers"
}
