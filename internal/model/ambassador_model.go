package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Ambassador struct {
	Id                   uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId               uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Code                 string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	Status               string          `gorm:"type:ambassador_status;not null;default:'pending'"`
	Motivation           string          `gorm:"type:text;not null;default:''"`
	SocialMediaUrl       *string         `gorm:"type:varchar(255)"`
	TierName             string          `gorm:"type:varchar(50);not null;default:'Bronze'"`
	DiscountPercentage   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:20"`
	CommissionPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:20"`
	TotalReferrals       int             `gorm:"not null;default:0"`
	TotalEarnings        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PendingEarnings      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PaidEarnings         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ApprovedBy           *uuid.UUID      `gorm:"type:uuid"`
	ApprovedAt           *time.Time
	RejectionReason      *string    `gorm:"type:text"`
	RejectedBy           *uuid.UUID `gorm:"type:uuid"`
	CreatedAt            time.Time  `gorm:"autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime"`
}

func (Ambassador) TableName() string {
	return "ambassadors"
}

type AmbassadorLink struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AmbassadorId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Code            string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CampaignName    *string   `gorm:"type:varchar(100)"`
	SignupCount     int       `gorm:"not null;default:0"`
	ConversionCount int       `gorm:"not null;default:0"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (AmbassadorLink) TableName() string {
	return "ambassador_links"
}
