package mapper

import (
	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/model"
)

type AmbassadorMapper struct{}

func NewAmbassadorMapper() *AmbassadorMapper {
	return &AmbassadorMapper{}
}

func (m *AmbassadorMapper) ToEntity(a *model.Ambassador) *entity.Ambassador {
	if a == nil {
		return nil
	}
	return &entity.Ambassador{
		Id:                   a.Id,
		UserId:               a.UserId,
		Code:                 a.Code,
		Status:               entity.AmbassadorStatus(a.Status),
		Motivation:           a.Motivation,
		SocialMediaUrl:       a.SocialMediaUrl,
		TierName:             a.TierName,
		DiscountPercentage:   a.DiscountPercentage,
		CommissionPercentage: a.CommissionPercentage,
		TotalReferrals:       a.TotalReferrals,
		TotalEarnings:        a.TotalEarnings,
		PendingEarnings:      a.PendingEarnings,
		PaidEarnings:         a.PaidEarnings,
		ApprovedBy:           a.ApprovedBy,
		ApprovedAt:           a.ApprovedAt,
		RejectionReason:      a.RejectionReason,
		RejectedBy:           a.RejectedBy,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func (m *AmbassadorMapper) ToModel(a *entity.Ambassador) *model.Ambassador {
	if a == nil {
		return nil
	}
	return &model.Ambassador{
		Id:                   a.Id,
		UserId:               a.UserId,
		Code:                 a.Code,
		Status:               string(a.Status),
		Motivation:           a.Motivation,
		SocialMediaUrl:       a.SocialMediaUrl,
		TierName:             a.TierName,
		DiscountPercentage:   a.DiscountPercentage,
		CommissionPercentage: a.CommissionPercentage,
		TotalReferrals:       a.TotalReferrals,
		TotalEarnings:        a.TotalEarnings,
		PendingEarnings:      a.PendingEarnings,
		PaidEarnings:         a.PaidEarnings,
		ApprovedBy:           a.ApprovedBy,
		ApprovedAt:           a.ApprovedAt,
		RejectionReason:      a.RejectionReason,
		RejectedBy:           a.RejectedBy,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func (m *AmbassadorMapper) LinkToEntity(l *model.AmbassadorLink) *entity.AmbassadorLink {
	if l == nil {
		return nil
	}
	return &entity.AmbassadorLink{
		Id:              l.Id,
		AmbassadorId:    l.AmbassadorId,
		Code:            l.Code,
		CampaignName:    l.CampaignName,
		SignupCount:     l.SignupCount,
		ConversionCount: l.ConversionCount,
		IsActive:        l.IsActive,
		CreatedAt:       l.CreatedAt,
	}
}

func (m *AmbassadorMapper) LinkToModel(l *entity.AmbassadorLink) *model.AmbassadorLink {
	if l == nil {
		return nil
	}
	return &model.AmbassadorLink{
		Id:              l.Id,
		AmbassadorId:    l.AmbassadorId,
		Code:            l.Code,
		CampaignName:    l.CampaignName,
		SignupCount:     l.SignupCount,
		ConversionCount: l.ConversionCount,
		IsActive:        l.IsActive,
		CreatedAt:       l.CreatedAt,
	}
}
