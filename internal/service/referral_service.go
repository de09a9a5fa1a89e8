package service

import (
	"context"
	"encoding/json"
	"errors"

	"renderiq-ambassador-be/internal/constant"
	"renderiq-ambassador-be/internal/dto"
	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/pkg/logger"
	"renderiq-ambassador-be/internal/repository/specification"
	"renderiq-ambassador-be/internal/repository/unitofwork"
	"renderiq-ambassador-be/pkg/ledger"
	"renderiq-ambassador-be/pkg/refcode"
	"renderiq-ambassador-be/pkg/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IReferralService interface {
	TrackSignup(ctx context.Context, req *dto.TrackSignupRequest) (*dto.TrackSignupResponse, error)
	CalculateDiscount(ctx context.Context, req *dto.DiscountQuoteRequest) (*dto.DiscountQuoteResponse, error)
	GetReferrals(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.ReferralResponse, error)
}

type referralService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	discountCache    store.IDiscountCache
	logger           logger.ILogger
}

func NewReferralService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	discountCache store.IDiscountCache,
	sysLogger logger.ILogger,
) IReferralService {
	return &referralService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		discountCache:    discountCache,
		logger:           sysLogger,
	}
}

func (s *referralService) TrackSignup(ctx context.Context, req *dto.TrackSignupRequest) (*dto.TrackSignupResponse, error) {
	base, full, hasSuffix := refcode.ParseBase(req.Code)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByCode{Code: base})
	if err != nil {
		return nil, err
	}
	if ambassador == nil {
		return nil, ErrInvalidCode
	}
	if ambassador.Status != entity.AmbassadorStatusActive {
		return nil, ErrAmbassadorNotActive
	}
	if ambassador.UserId == req.UserId {
		return nil, ErrSelfReferral
	}

	// Link resolution is soft: an unknown suffix still attributes the signup
	// to the base code. Deactivated links keep counting signups.
	var linkId *uuid.UUID
	if hasSuffix {
		link, err := uow.AmbassadorRepository().FindOneLink(ctx, specification.ByCode{Code: full})
		if err != nil {
			s.logger.Warn("referral", "Link lookup failed, attributing to base code", map[string]interface{}{"code": full, "error": err.Error()})
		} else if link != nil && link.AmbassadorId == ambassador.Id {
			linkId = &link.Id
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	referral := &entity.AmbassadorReferral{
		Id:                        uuid.New(),
		AmbassadorId:              ambassador.Id,
		ReferredUserId:            req.UserId,
		LinkId:                    linkId,
		ReferralCode:              full,
		Status:                    entity.ReferralStatusPending,
		CommissionMonthsRemaining: constant.DefaultCommissionMonths,
		TotalCommissionEarned:     decimal.Zero,
	}

	if err := uow.ReferralRepository().Create(ctx, referral); err != nil {
		// Unique index on referred_user_id: first referrer wins, forever.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyReferred
		}
		return nil, err
	}

	if err := uow.AmbassadorRepository().IncrementTotalReferrals(ctx, ambassador.Id); err != nil {
		return nil, err
	}
	if linkId != nil {
		if err := uow.AmbassadorRepository().IncrementLinkSignups(ctx, *linkId); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Kick the tier recalculation off the request path.
	payload, _ := json.Marshal(dto.ReferralRecordedMessage{AmbassadorId: ambassador.Id})
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("referral", "Failed to publish referral event", map[string]interface{}{"error": err.Error()})
	}

	s.logger.Info("referral", "Signup attributed", map[string]interface{}{
		"ambassador_id": ambassador.Id,
		"referral_id":   referral.Id,
		"code":          full,
	})
	return &dto.TrackSignupResponse{
		ReferralId:     referral.Id,
		AmbassadorCode: ambassador.Code,
		Status:         string(referral.Status),
	}, nil
}

// CalculateDiscount never fails the checkout: any miss, lookup error or
// invalid code yields a zero discount on the full amount.
func (s *referralService) CalculateDiscount(ctx context.Context, req *dto.DiscountQuoteRequest) (*dto.DiscountQuoteResponse, error) {
	base, _, _ := refcode.ParseBase(req.Code)

	fallback := &dto.DiscountQuoteResponse{
		Valid:              false,
		Code:               base,
		DiscountPercentage: decimal.Zero,
		DiscountAmount:     decimal.Zero,
		FinalAmount:        req.Amount,
	}
	if base == "" {
		return fallback, nil
	}

	quote, err := s.discountCache.Get(ctx, base)
	if err != nil {
		s.logger.Warn("referral", "Discount cache read failed", map[string]interface{}{"code": base, "error": err.Error()})
	}

	if quote == nil {
		quote = s.lookupQuote(ctx, base)
		if quote == nil {
			return fallback, nil
		}
		if err := s.discountCache.Set(ctx, base, quote); err != nil {
			s.logger.Warn("referral", "Discount cache write failed", map[string]interface{}{"code": base, "error": err.Error()})
		}
	}

	if !quote.Valid {
		return fallback, nil
	}

	percentage, err := decimal.NewFromString(quote.DiscountPercentage)
	if err != nil {
		s.logger.Warn("referral", "Corrupt cached percentage", map[string]interface{}{"code": base, "value": quote.DiscountPercentage})
		return fallback, nil
	}

	discount := ledger.ComputeDiscount(req.Amount, percentage)
	return &dto.DiscountQuoteResponse{
		Valid:              true,
		Code:               base,
		DiscountPercentage: percentage,
		DiscountAmount:     discount.DiscountAmount,
		FinalAmount:        discount.FinalAmount,
	}, nil
}

// lookupQuote resolves the code in storage. Invalid codes are cached too, so
// a hammered bogus code stays off the database.
func (s *referralService) lookupQuote(ctx context.Context, base string) *store.DiscountQuote {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByCode{Code: base})
	if err != nil {
		s.logger.Warn("referral", "Discount lookup failed", map[string]interface{}{"code": base, "error": err.Error()})
		return nil
	}
	if ambassador == nil || ambassador.Status != entity.AmbassadorStatusActive {
		return &store.DiscountQuote{Code: base, Valid: false}
	}
	return &store.DiscountQuote{
		AmbassadorId:       ambassador.Id.String(),
		Code:               base,
		DiscountPercentage: ambassador.DiscountPercentage.String(),
		Valid:              true,
	}
}

func (s *referralService) GetReferrals(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.ReferralResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByUser{UserID: userId})
	if err != nil {
		return nil, err
	}
	if ambassador == nil {
		return nil, ErrAmbassadorNotFound
	}

	referrals, err := uow.ReferralRepository().FindAll(ctx,
		specification.ByAmbassador{AmbassadorID: ambassador.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ReferralResponse, 0, len(referrals))
	for _, r := range referrals {
		res = append(res, &dto.ReferralResponse{
			Id:                        r.Id,
			AmbassadorId:              r.AmbassadorId,
			ReferredUserId:            r.ReferredUserId,
			Status:                    string(r.Status),
			CommissionMonthsRemaining: r.CommissionMonthsRemaining,
			TotalCommissionEarned:     r.TotalCommissionEarned,
			FirstSubscriptionAt:       r.FirstSubscriptionAt,
			CreatedAt:                 r.CreatedAt,
		})
	}
	return res, nil
}
