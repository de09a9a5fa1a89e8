package mapper

import (
	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/model"
)

type PayoutMapper struct{}

func NewPayoutMapper() *PayoutMapper {
	return &PayoutMapper{}
}

func (m *PayoutMapper) ToEntity(p *model.AmbassadorPayout) *entity.AmbassadorPayout {
	if p == nil {
		return nil
	}
	return &entity.AmbassadorPayout{
		Id:               p.Id,
		AmbassadorId:     p.AmbassadorId,
		PeriodStart:      p.PeriodStart,
		PeriodEnd:        p.PeriodEnd,
		TotalCommissions: p.TotalCommissions,
		CommissionCount:  p.CommissionCount,
		Status:           entity.PayoutStatus(p.Status),
		PaymentMethod:    p.PaymentMethod,
		PaymentReference: p.PaymentReference,
		PaidBy:           p.PaidBy,
		PaidAt:           p.PaidAt,
		FailureReason:    p.FailureReason,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (m *PayoutMapper) ToModel(p *entity.AmbassadorPayout) *model.AmbassadorPayout {
	if p == nil {
		return nil
	}
	return &model.AmbassadorPayout{
		Id:               p.Id,
		AmbassadorId:     p.AmbassadorId,
		PeriodStart:      p.PeriodStart,
		PeriodEnd:        p.PeriodEnd,
		TotalCommissions: p.TotalCommissions,
		CommissionCount:  p.CommissionCount,
		Status:           string(p.Status),
		PaymentMethod:    p.PaymentMethod,
		PaymentReference: p.PaymentReference,
		PaidBy:           p.PaidBy,
		PaidAt:           p.PaidAt,
		FailureReason:    p.FailureReason,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
