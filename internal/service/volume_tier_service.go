package service

import (
	"context"

	"renderiq-ambassador-be/internal/constant"
	"renderiq-ambassador-be/internal/dto"
	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/pkg/logger"
	"renderiq-ambassador-be/internal/repository/memory"
	"renderiq-ambassador-be/internal/repository/specification"
	"renderiq-ambassador-be/internal/repository/unitofwork"
	"renderiq-ambassador-be/pkg/ledger"
	"renderiq-ambassador-be/pkg/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IVolumeTierService interface {
	ListTiers(ctx context.Context) ([]*dto.VolumeTierResponse, error)
	UpsertTier(ctx context.Context, req *dto.UpsertVolumeTierRequest) (*dto.VolumeTierResponse, error)
	DeactivateTier(ctx context.Context, tierId uuid.UUID) error
	RecalculateTier(ctx context.Context, ambassadorId uuid.UUID) error
}

type volumeTierService struct {
	uowFactory    unitofwork.RepositoryFactory
	tierCache     memory.ITierCache
	discountCache store.IDiscountCache
	logger        logger.ILogger
}

func NewVolumeTierService(
	uowFactory unitofwork.RepositoryFactory,
	tierCache memory.ITierCache,
	discountCache store.IDiscountCache,
	sysLogger logger.ILogger,
) IVolumeTierService {
	return &volumeTierService{
		uowFactory:    uowFactory,
		tierCache:     tierCache,
		discountCache: discountCache,
		logger:        sysLogger,
	}
}

func (s *volumeTierService) ListTiers(ctx context.Context) ([]*dto.VolumeTierResponse, error) {
	tiers, err := s.loadTiers(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.VolumeTierResponse, 0, len(tiers))
	for _, t := range tiers {
		res = append(res, &dto.VolumeTierResponse{
			Id:                 t.Id,
			Name:               t.TierName,
			MinReferrals:       t.MinReferrals,
			DiscountPercentage: t.DiscountPercentage,
		})
	}
	return res, nil
}

// UpsertTier creates or replaces the tier with the given name and drops the
// cached table.
func (s *volumeTierService) UpsertTier(ctx context.Context, req *dto.UpsertVolumeTierRequest) (*dto.VolumeTierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tier, err := uow.VolumeTierRepository().FindOne(ctx, specification.Filter("tier_name", req.Name))
	if err != nil {
		return nil, err
	}

	if tier == nil {
		tier = &entity.VolumeTier{
			Id:       uuid.New(),
			TierName: req.Name,
			IsActive: true,
		}
		tier.MinReferrals = req.MinReferrals
		tier.DiscountPercentage = req.DiscountPercentage
		if err := uow.VolumeTierRepository().Create(ctx, tier); err != nil {
			return nil, err
		}
	} else {
		tier.MinReferrals = req.MinReferrals
		tier.DiscountPercentage = req.DiscountPercentage
		tier.IsActive = true
		if err := uow.VolumeTierRepository().Update(ctx, tier); err != nil {
			return nil, err
		}
	}

	s.tierCache.Invalidate()
	s.logger.Info("volume_tier", "Tier upserted", map[string]interface{}{
		"name":          req.Name,
		"min_referrals": req.MinReferrals,
	})
	return &dto.VolumeTierResponse{
		Id:                 tier.Id,
		Name:               tier.TierName,
		MinReferrals:       tier.MinReferrals,
		DiscountPercentage: tier.DiscountPercentage,
	}, nil
}

func (s *volumeTierService) DeactivateTier(ctx context.Context, tierId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tier, err := uow.VolumeTierRepository().FindOne(ctx, specification.ByID{ID: tierId})
	if err != nil {
		return err
	}
	if tier == nil {
		return ErrTierNotFound
	}

	tier.IsActive = false
	if err := uow.VolumeTierRepository().Update(ctx, tier); err != nil {
		return err
	}

	s.tierCache.Invalidate()
	return nil
}

// RecalculateTier re-resolves the ambassador's tier from their referral count
// and applies it when it changed. Runs off the request path, fed by the
// referral-recorded event.
func (s *volumeTierService) RecalculateTier(ctx context.Context, ambassadorId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByID{ID: ambassadorId})
	if err != nil {
		return err
	}
	if ambassador == nil {
		return ErrAmbassadorNotFound
	}

	tiers, err := s.loadTiers(ctx)
	if err != nil {
		return err
	}

	table := make([]ledger.Tier, 0, len(tiers))
	for _, t := range tiers {
		table = append(table, ledger.Tier{
			Name:               t.TierName,
			MinReferrals:       t.MinReferrals,
			DiscountPercentage: t.DiscountPercentage,
		})
	}
	fallback := ledger.Tier{
		Name:               constant.DefaultTierName,
		MinReferrals:       0,
		DiscountPercentage: decimal.RequireFromString(constant.DefaultDiscountPercentage),
	}

	resolved := ledger.ResolveTier(table, ambassador.TotalReferrals, fallback)
	if resolved.Name == ambassador.TierName {
		return nil
	}

	if err := uow.AmbassadorRepository().UpdateTier(ctx, ambassador.Id, resolved.Name, resolved.DiscountPercentage); err != nil {
		return err
	}

	// The cached discount answer for this code just changed.
	if err := s.discountCache.Invalidate(ctx, ambassador.Code); err != nil {
		s.logger.Warn("volume_tier", "Failed to invalidate discount cache", map[string]interface{}{"code": ambassador.Code, "error": err.Error()})
	}

	s.logger.Info("volume_tier", "Tier upgraded", map[string]interface{}{
		"ambassador_id": ambassador.Id,
		"from":          ambassador.TierName,
		"to":            resolved.Name,
		"referrals":     ambassador.TotalReferrals,
	})
	return nil
}

func (s *volumeTierService) loadTiers(ctx context.Context) ([]entity.VolumeTier, error) {
	if cached, found := s.tierCache.Get(); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.VolumeTierRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "min_referrals", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	tiers := make([]entity.VolumeTier, 0, len(rows))
	for _, t := range rows {
		tiers = append(tiers, *t)
	}
	s.tierCache.Set(tiers)
	return tiers, nil
}
