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

func newAmbassadorFixture() (*fakeStore, IAmbassadorService) {
	st := newFakeStore()
	svc := NewAmbassadorService(&fakeFactory{store: st}, nil, stubMailer{}, newFakeDiscountCache(), noopLogger{})
	return st, svc
}

func seedAmbassador(st *fakeStore, status entity.AmbassadorStatus, code string) *entity.Ambassador {
	a := &entity.Ambassador{
		Id:                   uuid.New(),
		UserId:               uuid.New(),
		Code:                 code,
		Status:               status,
		TierName:             "Bronze",
		DiscountPercentage:   decimal.RequireFromString("20"),
		CommissionPercentage: decimal.RequireFromString("20"),
		TotalEarnings:        decimal.Zero,
		PendingEarnings:      decimal.Zero,
		PaidEarnings:         decimal.Zero,
	}
	st.ambassadors[a.Id] = a
	return a
}

func TestApplyOneApplicationPerUser(t *testing.T) {
	st, svc := newAmbassadorFixture()
	ctx := context.Background()

	userId := uuid.New()
	req := &dto.ApplyAmbassadorRequest{
		Motivation:     "I run a rendering community and want to share the tool",
		SocialMediaUrl: "https://example.com/@renders",
	}

	res, err := svc.Apply(ctx, userId, req)
	assert.NoError(t, err)
	assert.Equal(t, string(entity.AmbassadorStatusPending), res.Status)
	assert.Len(t, res.Code, 6)

	stored := st.ambassadors[res.Id]
	if assert.NotNil(t, stored) {
		assert.Equal(t, req.Motivation, stored.Motivation)
		if assert.NotNil(t, stored.SocialMediaUrl) {
			assert.Equal(t, req.SocialMediaUrl, *stored.SocialMediaUrl)
		}
	}

	t.Run("second application is a duplicate", func(t *testing.T) {
		_, err := svc.Apply(ctx, userId, req)
		assert.ErrorIs(t, err, ErrDuplicateApplication)
	})

	t.Run("rejected record blocks re-applying", func(t *testing.T) {
		rejected := seedAmbassador(st, entity.AmbassadorStatusRejected, "REJ001")
		_, err := svc.Apply(ctx, rejected.UserId, req)
		assert.ErrorIs(t, err, ErrDuplicateApplication)
	})
}

func TestGetStatsConversionRate(t *testing.T) {
	ctx := context.Background()

	t.Run("no referrals yields zero rate", func(t *testing.T) {
		st, svc := newAmbassadorFixture()
		ambassador := seedAmbassador(st, entity.AmbassadorStatusActive, "ZERO01")

		stats, err := svc.GetStats(ctx, ambassador.UserId)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalReferrals)
		assert.Equal(t, 0.0, stats.ConversionRate)
		assert.True(t, stats.UnclaimedComms.IsZero())
	})

	t.Run("rate is a percentage of total referrals", func(t *testing.T) {
		st, svc := newAmbassadorFixture()
		ambassador := seedAmbassador(st, entity.AmbassadorStatusActive, "RATE01")

		for i := 0; i < 10; i++ {
			ref := &entity.AmbassadorReferral{
				Id:             uuid.New(),
				AmbassadorId:   ambassador.Id,
				ReferredUserId: uuid.New(),
				Status:         entity.ReferralStatusPending,
			}
			if i < 5 {
				subId := uuid.New()
				ref.SubscriptionId = &subId
			}
			st.referrals[ref.Id] = ref
		}

		stats, err := svc.GetStats(ctx, ambassador.UserId)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), stats.TotalReferrals)
		assert.Equal(t, int64(5), stats.ConvertedReferrals)
		assert.Equal(t, 50.0, stats.ConversionRate)
	})
}
