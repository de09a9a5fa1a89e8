package mapper

import (
	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/model"
)

type CommissionMapper struct{}

func NewCommissionMapper() *CommissionMapper {
	return &CommissionMapper{}
}

func (m *CommissionMapper) ToEntity(c *model.AmbassadorCommission) *entity.AmbassadorCommission {
	if c == nil {
		return nil
	}
	return &entity.AmbassadorCommission{
		Id:                   c.Id,
		AmbassadorId:         c.AmbassadorId,
		ReferralId:           c.ReferralId,
		SubscriptionId:       c.SubscriptionId,
		PaymentOrderId:       c.PaymentOrderId,
		SubscriptionAmount:   c.SubscriptionAmount,
		DiscountAmount:       c.DiscountAmount,
		CommissionPercentage: c.CommissionPercentage,
		CommissionAmount:     c.CommissionAmount,
		Currency:             c.Currency,
		PeriodStart:          c.PeriodStart,
		PeriodEnd:            c.PeriodEnd,
		Status:               entity.CommissionStatus(c.Status),
		PayoutPeriodId:       c.PayoutPeriodId,
		CreatedAt:            c.CreatedAt,
	}
}

func (m *CommissionMapper) ToModel(c *entity.AmbassadorCommission) *model.AmbassadorCommission {
	if c == nil {
		return nil
	}
	return &model.AmbassadorCommission{
		Id:                   c.Id,
		AmbassadorId:         c.AmbassadorId,
		ReferralId:           c.ReferralId,
		SubscriptionId:       c.SubscriptionId,
		PaymentOrderId:       c.PaymentOrderId,
		SubscriptionAmount:   c.SubscriptionAmount,
		DiscountAmount:       c.DiscountAmount,
		CommissionPercentage: c.CommissionPercentage,
		CommissionAmount:     c.CommissionAmount,
		Currency:             c.Currency,
		PeriodStart:          c.PeriodStart,
		PeriodEnd:            c.PeriodEnd,
		Status:               string(c.Status),
		PayoutPeriodId:       c.PayoutPeriodId,
		CreatedAt:            c.CreatedAt,
	}
}
