package service

import (
	"context"
	"testing"

	"renderiq-ambassador-be/internal/dto"
	"renderiq-ambassador-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newPayoutFixture() (*fakeStore, IPayoutService) {
	st := newFakeStore()
	svc := NewPayoutService(&fakeFactory{store: st}, nil, stubMailer{}, noopLogger{})
	return st, svc
}

// seedClaimedPayout sets up an ambassador with a pending payout that has two
// claimed commissions of 29.00 each.
func seedClaimedPayout(st *fakeStore) (*entity.Ambassador, *entity.AmbassadorPayout) {
	ambassador := seedAmbassador(st, entity.AmbassadorStatusActive, "PAY001")
	ambassador.TotalEarnings = decimal.RequireFromString("58.00")
	ambassador.PendingEarnings = decimal.RequireFromString("58.00")

	payout := &entity.AmbassadorPayout{
		Id:               uuid.New(),
		AmbassadorId:     ambassador.Id,
		TotalCommissions: decimal.RequireFromString("58.00"),
		CommissionCount:  2,
		Status:           entity.PayoutStatusPending,
	}
	st.payouts[payout.Id] = payout

	for i := 0; i < 2; i++ {
		payoutId := payout.Id
		c := &entity.AmbassadorCommission{
			Id:               uuid.New(),
			AmbassadorId:     ambassador.Id,
			PaymentOrderId:   uuid.New().String(),
			CommissionAmount: decimal.RequireFromString("29.00"),
			Status:           entity.CommissionStatusPending,
			PayoutPeriodId:   &payoutId,
		}
		st.commissions[c.Id] = c
	}
	return ambassador, payout
}

func TestSettlePayout(t *testing.T) {
	ctx := context.Background()
	adminId := uuid.New()

	t.Run("paid cascades to the batch and moves pending to paid", func(t *testing.T) {
		st, svc := newPayoutFixture()
		ambassador, payout := seedClaimedPayout(st)

		res, err := svc.SettlePayout(ctx, payout.Id, adminId, &dto.SettlePayoutRequest{
			Status:           "paid",
			PaymentMethod:    "bank_transfer",
			PaymentReference: "trx-100",
		})
		assert.NoError(t, err)
		assert.Equal(t, string(entity.PayoutStatusPaid), res.Status)
		assert.NotNil(t, res.PaidAt)

		for _, c := range st.commissions {
			assert.Equal(t, entity.CommissionStatusPaid, c.Status)
		}

		refreshed := st.ambassadors[ambassador.Id]
		assert.True(t, refreshed.PendingEarnings.IsZero())
		assert.True(t, refreshed.PaidEarnings.Equal(decimal.RequireFromString("58.00")))
		assert.True(t, refreshed.TotalEarnings.Equal(refreshed.PendingEarnings.Add(refreshed.PaidEarnings)))
	})

	t.Run("failed releases the batch and leaves earnings untouched", func(t *testing.T) {
		st, svc := newPayoutFixture()
		ambassador, payout := seedClaimedPayout(st)

		res, err := svc.SettlePayout(ctx, payout.Id, adminId, &dto.SettlePayoutRequest{
			Status:        "failed",
			FailureReason: "bank rejected the transfer",
		})
		assert.NoError(t, err)
		assert.Equal(t, string(entity.PayoutStatusFailed), res.Status)
		assert.Equal(t, "bank rejected the transfer", res.FailureReason)
		assert.Nil(t, res.PaidAt)

		for _, c := range st.commissions {
			assert.Equal(t, entity.CommissionStatusPending, c.Status)
			assert.Nil(t, c.PayoutPeriodId)
		}

		refreshed := st.ambassadors[ambassador.Id]
		assert.True(t, refreshed.PendingEarnings.Equal(decimal.RequireFromString("58.00")))
		assert.True(t, refreshed.PaidEarnings.IsZero())
	})

	t.Run("settling a settled payout is rejected", func(t *testing.T) {
		st, svc := newPayoutFixture()
		_, payout := seedClaimedPayout(st)

		_, err := svc.SettlePayout(ctx, payout.Id, adminId, &dto.SettlePayoutRequest{
			Status:           "paid",
			PaymentMethod:    "bank_transfer",
			PaymentReference: "trx-101",
		})
		assert.NoError(t, err)

		_, err = svc.SettlePayout(ctx, payout.Id, adminId, &dto.SettlePayoutRequest{
			Status:        "failed",
			FailureReason: "should not apply",
		})
		assert.ErrorIs(t, err, ErrInvalidPayoutState)
	})
}

func TestMarkProcessing(t *testing.T) {
	ctx := context.Background()
	adminId := uuid.New()

	st, svc := newPayoutFixture()
	_, payout := seedClaimedPayout(st)

	res, err := svc.MarkProcessing(ctx, payout.Id, adminId)
	assert.NoError(t, err)
	assert.Equal(t, string(entity.PayoutStatusProcessing), res.Status)
	assert.Equal(t, entity.PayoutStatusProcessing, st.payouts[payout.Id].Status)

	t.Run("only pending payouts move to processing", func(t *testing.T) {
		_, err := svc.MarkProcessing(ctx, payout.Id, adminId)
		assert.ErrorIs(t, err, ErrInvalidPayoutState)
	})

	t.Run("processing payouts can still settle", func(t *testing.T) {
		res, err := svc.SettlePayout(ctx, payout.Id, adminId, &dto.SettlePayoutRequest{
			Status:           "paid",
			PaymentMethod:    "bank_transfer",
			PaymentReference: "trx-102",
		})
		assert.NoError(t, err)
		assert.Equal(t, string(entity.PayoutStatusPaid), res.Status)
	})
}
