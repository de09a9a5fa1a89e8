package mapper

import (
	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/model"
)

type ReferralMapper struct{}

func NewReferralMapper() *ReferralMapper {
	return &ReferralMapper{}
}

func (m *ReferralMapper) ToEntity(r *model.AmbassadorReferral) *entity.AmbassadorReferral {
	if r == nil {
		return nil
	}
	return &entity.AmbassadorReferral{
		Id:                        r.Id,
		AmbassadorId:              r.AmbassadorId,
		ReferredUserId:            r.ReferredUserId,
		LinkId:                    r.LinkId,
		ReferralCode:              r.ReferralCode,
		Status:                    entity.ReferralStatus(r.Status),
		SubscriptionId:            r.SubscriptionId,
		FirstSubscriptionAt:       r.FirstSubscriptionAt,
		CommissionMonthsRemaining: r.CommissionMonthsRemaining,
		TotalCommissionEarned:     r.TotalCommissionEarned,
		CreatedAt:                 r.CreatedAt,
		UpdatedAt:                 r.UpdatedAt,
	}
}

func (m *ReferralMapper) ToModel(r *entity.AmbassadorReferral) *model.AmbassadorReferral {
	if r == nil {
		return nil
	}
	return &model.AmbassadorReferral{
		Id:                        r.Id,
		AmbassadorId:              r.AmbassadorId,
		ReferredUserId:            r.ReferredUserId,
		LinkId:                    r.LinkId,
		ReferralCode:              r.ReferralCode,
		Status:                    string(r.Status),
		SubscriptionId:            r.SubscriptionId,
		FirstSubscriptionAt:       r.FirstSubscriptionAt,
		CommissionMonthsRemaining: r.CommissionMonthsRemaining,
		TotalCommissionEarned:     r.TotalCommissionEarned,
		CreatedAt:                 r.CreatedAt,
		UpdatedAt:                 r.UpdatedAt,
	}
}
