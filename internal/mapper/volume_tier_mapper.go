package mapper

import (
	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/model"
)

type VolumeTierMapper struct{}

func NewVolumeTierMapper() *VolumeTierMapper {
	return &VolumeTierMapper{}
}

func (m *VolumeTierMapper) ToEntity(t *model.AmbassadorVolumeTier) *entity.VolumeTier {
	if t == nil {
		return nil
	}
	return &entity.VolumeTier{
		Id:                 t.Id,
		TierName:           t.TierName,
		MinReferrals:       t.MinReferrals,
		DiscountPercentage: t.DiscountPercentage,
		IsActive:           t.IsActive,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func (m *VolumeTierMapper) ToModel(t *entity.VolumeTier) *model.AmbassadorVolumeTier {
	if t == nil {
		return nil
	}
	return &model.AmbassadorVolumeTier{
		Id:                 t.Id,
		TierName:           t.TierName,
		MinReferrals:       t.MinReferrals,
		DiscountPercentage: t.DiscountPercentage,
		IsActive:           t.IsActive,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}
