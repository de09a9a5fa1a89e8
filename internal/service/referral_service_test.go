package service

import (
	"context"
	"testing"

	"renderiq-ambassador-be/internal/dto"
	"renderiq-ambassador-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newReferralFixture() (*fakeStore, *fakePublisher, IReferralService) {
	st := newFakeStore()
	pub := &fakePublisher{}
	svc := NewReferralService(&fakeFactory{store: st}, pub, newFakeDiscountCache(), noopLogger{})
	return st, pub, svc
}

func TestTrackSignupFirstReferrerWins(t *testing.T) {
	st, _, svc := newReferralFixture()
	ctx := context.Background()

	first := seedAmbassador(st, entity.AmbassadorStatusActive, "ABC123")
	second := seedAmbassador(st, entity.AmbassadorStatusActive, "XYZ789")
	referredUser := uuid.New()

	res, err := svc.TrackSignup(ctx, &dto.TrackSignupRequest{UserId: referredUser, Code: "abc123"})
	assert.NoError(t, err)
	assert.Equal(t, first.Code, res.AmbassadorCode)

	t.Run("same code again", func(t *testing.T) {
		_, err := svc.TrackSignup(ctx, &dto.TrackSignupRequest{UserId: referredUser, Code: "ABC123"})
		assert.ErrorIs(t, err, ErrAlreadyReferred)
	})

	t.Run("another ambassador's code", func(t *testing.T) {
		_, err := svc.TrackSignup(ctx, &dto.TrackSignupRequest{UserId: referredUser, Code: second.Code})
		assert.ErrorIs(t, err, ErrAlreadyReferred)
	})
}

func TestTrackSignupDeactivatedLinkStillCounts(t *testing.T) {
	st, pub, svc := newReferralFixture()
	ctx := context.Background()

	ambassador := seedAmbassador(st, entity.AmbassadorStatusActive, "ABC123")
	campaign := "summer"
	link := &entity.AmbassadorLink{
		Id:           uuid.New(),
		AmbassadorId: ambassador.Id,
		Code:         "ABC123_SUMMER",
		CampaignName: &campaign,
		IsActive:     false,
	}
	st.links[link.Id] = link

	res, err := svc.TrackSignup(ctx, &dto.TrackSignupRequest{UserId: uuid.New(), Code: "abc123_summer"})
	assert.NoError(t, err)

	stored := st.referrals[res.ReferralId]
	if assert.NotNil(t, stored) {
		assert.Equal(t, "ABC123_SUMMER", stored.ReferralCode)
		if assert.NotNil(t, stored.LinkId) {
			assert.Equal(t, link.Id, *stored.LinkId)
		}
	}
	assert.Equal(t, 1, st.links[link.Id].SignupCount)
	assert.Len(t, pub.payloads, 1)
}

func TestTrackSignupCodeValidation(t *testing.T) {
	st, _, svc := newReferralFixture()
	ctx := context.Background()

	pending := seedAmbassador(st, entity.AmbassadorStatusPending, "PEND01")
	active := seedAmbassador(st, entity.AmbassadorStatusActive, "ACT001")

	t.Run("unknown code", func(t *testing.T) {
		_, err := svc.TrackSignup(ctx, &dto.TrackSignupRequest{UserId: uuid.New(), Code: "NOPE99"})
		assert.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("not yet approved ambassador", func(t *testing.T) {
		_, err := svc.TrackSignup(ctx, &dto.TrackSignupRequest{UserId: uuid.New(), Code: pending.Code})
		assert.ErrorIs(t, err, ErrAmbassadorNotActive)
	})

	t.Run("own code", func(t *testing.T) {
		_, err := svc.TrackSignup(ctx, &dto.TrackSignupRequest{UserId: active.UserId, Code: active.Code})
		assert.ErrorIs(t, err, ErrSelfReferral)
	})
}
