package service

import (
	"context"
	"fmt"
	"time"

	"renderiq-ambassador-be/internal/constant"
	"renderiq-ambassador-be/internal/dto"
	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/pkg/logger"
	"renderiq-ambassador-be/internal/pkg/mailer"
	"renderiq-ambassador-be/internal/repository/specification"
	"renderiq-ambassador-be/internal/repository/unitofwork"
	"renderiq-ambassador-be/pkg/events"
	pktNats "renderiq-ambassador-be/pkg/nats"
	"renderiq-ambassador-be/pkg/refcode"
	"renderiq-ambassador-be/pkg/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IAmbassadorService interface {
	Apply(ctx context.Context, userId uuid.UUID, req *dto.ApplyAmbassadorRequest) (*dto.AmbassadorResponse, error)
	GetByUser(ctx context.Context, userId uuid.UUID) (*dto.AmbassadorResponse, error)
	Approve(ctx context.Context, ambassadorId, adminId uuid.UUID, req *dto.ApproveAmbassadorRequest) (*dto.AmbassadorResponse, error)
	Reject(ctx context.Context, ambassadorId, adminId uuid.UUID, req *dto.RejectAmbassadorRequest) error
	Suspend(ctx context.Context, ambassadorId, adminId uuid.UUID, req *dto.SuspendAmbassadorRequest) error
	Reactivate(ctx context.Context, ambassadorId uuid.UUID) error
	CreateLink(ctx context.Context, userId uuid.UUID, req *dto.CreateLinkRequest) (*dto.AmbassadorLinkResponse, error)
	GetLinks(ctx context.Context, userId uuid.UUID) ([]*dto.AmbassadorLinkResponse, error)
	GetStats(ctx context.Context, userId uuid.UUID) (*dto.AmbassadorStatsResponse, error)
	ListForAdmin(ctx context.Context, status string, limit, offset int) ([]*dto.AdminAmbassadorListResponse, error)
}

type ambassadorService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	discountCache  store.IDiscountCache
	logger         logger.ILogger
}

func NewAmbassadorService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	discountCache store.IDiscountCache,
	sysLogger logger.ILogger,
) IAmbassadorService {
	return &ambassadorService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		discountCache:  discountCache,
		logger:         sysLogger,
	}
}

func (s *ambassadorService) Apply(ctx context.Context, userId uuid.UUID, req *dto.ApplyAmbassadorRequest) (*dto.AmbassadorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByUser{UserID: userId})
	if err != nil {
		return nil, err
	}

	// One application per user, ever. A rejected row blocks re-applying too;
	// reinstatement goes through the admin surface.
	if existing != nil {
		return nil, ErrDuplicateApplication
	}

	code, err := s.generateUniqueCode(ctx, uow)
	if err != nil {
		return nil, err
	}

	var socialUrl *string
	if req.SocialMediaUrl != "" {
		socialUrl = &req.SocialMediaUrl
	}

	ambassador := &entity.Ambassador{
		Id:                   uuid.New(),
		UserId:               userId,
		Code:                 code,
		Status:               entity.AmbassadorStatusPending,
		Motivation:           req.Motivation,
		SocialMediaUrl:       socialUrl,
		TierName:             constant.DefaultTierName,
		DiscountPercentage:   decimal.RequireFromString(constant.DefaultDiscountPercentage),
		CommissionPercentage: decimal.RequireFromString(constant.DefaultCommissionPercentage),
		TotalEarnings:        decimal.Zero,
		PendingEarnings:      decimal.Zero,
		PaidEarnings:         decimal.Zero,
	}

	if err := uow.AmbassadorRepository().Create(ctx, ambassador); err != nil {
		return nil, err
	}

	s.logger.Info("ambassador", "Application received", map[string]interface{}{
		"user_id":       userId,
		"ambassador_id": ambassador.Id,
	})
	return toAmbassadorResponse(ambassador), nil
}

func (s *ambassadorService) GetByUser(ctx context.Context, userId uuid.UUID) (*dto.AmbassadorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByUser{UserID: userId})
	if err != nil {
		return nil, err
	}
	if ambassador == nil {
		return nil, ErrAmbassadorNotFound
	}
	return toAmbassadorResponse(ambassador), nil
}

func (s *ambassadorService) Approve(ctx context.Context, ambassadorId, adminId uuid.UUID, req *dto.ApproveAmbassadorRequest) (*dto.AmbassadorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByID{ID: ambassadorId})
	if err != nil {
		return nil, err
	}
	if ambassador == nil {
		return nil, ErrAmbassadorNotFound
	}

	// Approving twice is a no-op, not an error.
	if ambassador.Status == entity.AmbassadorStatusActive {
		return toAmbassadorResponse(ambassador), nil
	}
	if ambassador.Status != entity.AmbassadorStatusPending {
		return nil, ErrInvalidStatusTransition
	}

	now := time.Now()
	ambassador.Status = entity.AmbassadorStatusActive
	ambassador.ApprovedBy = &adminId
	ambassador.ApprovedAt = &now
	if req != nil && req.DiscountPercentage != nil {
		ambassador.DiscountPercentage = *req.DiscountPercentage
	}
	if req != nil && req.CommissionPercentage != nil {
		ambassador.CommissionPercentage = *req.CommissionPercentage
	}

	if err := uow.AmbassadorRepository().Update(ctx, ambassador); err != nil {
		return nil, err
	}

	// Rows created before code reservation existed may still lack one.
	// Conditional update, so a concurrent approval cannot overwrite it.
	if ambassador.Code == "" {
		code, err := s.generateUniqueCode(ctx, uow)
		if err != nil {
			return nil, err
		}
		won, err := uow.AmbassadorRepository().AssignCodeIfMissing(ctx, ambassador.Id, code)
		if err != nil {
			return nil, err
		}
		if won {
			ambassador.Code = code
		} else {
			refreshed, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByID{ID: ambassador.Id})
			if err != nil {
				return nil, err
			}
			if refreshed != nil {
				ambassador.Code = refreshed.Code
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Approval may change what a cached lookup should answer.
	if err := s.discountCache.Invalidate(ctx, ambassador.Code); err != nil {
		s.logger.Warn("ambassador", "Failed to invalidate discount cache", map[string]interface{}{"code": ambassador.Code, "error": err.Error()})
	}

	s.notifyApproval(ctx, uow, ambassador)

	s.logger.Info("ambassador", "Application approved", map[string]interface{}{
		"ambassador_id": ambassador.Id,
		"approved_by":   adminId,
	})
	return toAmbassadorResponse(ambassador), nil
}

func (s *ambassadorService) notifyApproval(ctx context.Context, uow unitofwork.UnitOfWork, ambassador *entity.Ambassador) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: ambassador.UserId})
	if err == nil && user != nil {
		if err := s.emailService.SendApprovalNotice(user.Email, ambassador.Code); err != nil {
			s.logger.Warn("ambassador", "Failed to send approval email", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventAmbassadorApproved,
			Data: map[string]interface{}{
				"ambassador_id": ambassador.Id,
				"user_id":       ambassador.UserId,
				"code":          ambassador.Code,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ambassador", "Failed to publish approval event", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (s *ambassadorService) Reject(ctx context.Context, ambassadorId, adminId uuid.UUID, req *dto.RejectAmbassadorRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByID{ID: ambassadorId})
	if err != nil {
		return err
	}
	if ambassador == nil {
		return ErrAmbassadorNotFound
	}
	if ambassador.Status != entity.AmbassadorStatusPending {
		return ErrInvalidStatusTransition
	}

	ambassador.Status = entity.AmbassadorStatusRejected
	ambassador.RejectionReason = &req.Reason
	ambassador.RejectedBy = &adminId
	if err := uow.AmbassadorRepository().Update(ctx, ambassador); err != nil {
		return err
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: ambassador.UserId})
	if err == nil && user != nil {
		if err := s.emailService.SendRejectionNotice(user.Email, req.Reason); err != nil {
			s.logger.Warn("ambassador", "Failed to send rejection email", map[string]interface{}{"error": err.Error()})
		}
	}

	s.logger.Info("ambassador", "Application rejected", map[string]interface{}{
		"ambassador_id": ambassadorId,
		"rejected_by":   adminId,
	})
	return nil
}

func (s *ambassadorService) Suspend(ctx context.Context, ambassadorId, adminId uuid.UUID, req *dto.SuspendAmbassadorRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByID{ID: ambassadorId})
	if err != nil {
		return err
	}
	if ambassador == nil {
		return ErrAmbassadorNotFound
	}
	if ambassador.Status != entity.AmbassadorStatusActive {
		return ErrInvalidStatusTransition
	}

	ambassador.Status = entity.AmbassadorStatusSuspended
	if err := uow.AmbassadorRepository().Update(ctx, ambassador); err != nil {
		return err
	}

	// Suspended codes must stop resolving immediately.
	if err := s.discountCache.Invalidate(ctx, ambassador.Code); err != nil {
		s.logger.Warn("ambassador", "Failed to invalidate discount cache", map[string]interface{}{"code": ambassador.Code, "error": err.Error()})
	}

	s.logger.Warn("ambassador", "Ambassador suspended", map[string]interface{}{
		"ambassador_id": ambassadorId,
		"suspended_by":  adminId,
		"reason":        req.Reason,
	})
	return nil
}

func (s *ambassadorService) Reactivate(ctx context.Context, ambassadorId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByID{ID: ambassadorId})
	if err != nil {
		return err
	}
	if ambassador == nil {
		return ErrAmbassadorNotFound
	}
	if ambassador.Status != entity.AmbassadorStatusSuspended {
		return ErrInvalidStatusTransition
	}

	ambassador.Status = entity.AmbassadorStatusActive
	if err := uow.AmbassadorRepository().Update(ctx, ambassador); err != nil {
		return err
	}

	if err := s.discountCache.Invalidate(ctx, ambassador.Code); err != nil {
		s.logger.Warn("ambassador", "Failed to invalidate discount cache", map[string]interface{}{"code": ambassador.Code, "error": err.Error()})
	}

	s.logger.Info("ambassador", "Ambassador reactivated", map[string]interface{}{"ambassador_id": ambassadorId})
	return nil
}

func (s *ambassadorService) CreateLink(ctx context.Context, userId uuid.UUID, req *dto.CreateLinkRequest) (*dto.AmbassadorLinkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByUser{UserID: userId})
	if err != nil {
		return nil, err
	}
	if ambassador == nil {
		return nil, ErrAmbassadorNotFound
	}
	if ambassador.Status != entity.AmbassadorStatusActive {
		return nil, ErrInvalidStatusTransition
	}

	code := refcode.LinkCode(ambassador.Code, req.CampaignName, constant.CampaignSuffixMaxLength, time.Now())
	exists, err := uow.AmbassadorRepository().CodeExists(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrLinkCodeTaken
	}

	var campaign *string
	if req.CampaignName != "" {
		campaign = &req.CampaignName
	}

	link := &entity.AmbassadorLink{
		Id:           uuid.New(),
		AmbassadorId: ambassador.Id,
		Code:         code,
		CampaignName: campaign,
		IsActive:     true,
	}
	if err := uow.AmbassadorRepository().CreateLink(ctx, link); err != nil {
		return nil, err
	}

	s.logger.Info("ambassador", "Campaign link created", map[string]interface{}{
		"ambassador_id": ambassador.Id,
		"code":          code,
	})
	return toLinkResponse(link), nil
}

func (s *ambassadorService) GetLinks(ctx context.Context, userId uuid.UUID) ([]*dto.AmbassadorLinkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByUser{UserID: userId})
	if err != nil {
		return nil, err
	}
	if ambassador == nil {
		return nil, ErrAmbassadorNotFound
	}

	links, err := uow.AmbassadorRepository().FindAllLinks(ctx,
		specification.ByAmbassador{AmbassadorID: ambassador.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AmbassadorLinkResponse, 0, len(links))
	for _, link := range links {
		res = append(res, toLinkResponse(link))
	}
	return res, nil
}

func (s *ambassadorService) GetStats(ctx context.Context, userId uuid.UUID) (*dto.AmbassadorStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByUser{UserID: userId})
	if err != nil {
		return nil, err
	}
	if ambassador == nil {
		return nil, ErrAmbassadorNotFound
	}

	// Aggregates run in SQL; rows are never loaded into memory.
	total, err := uow.ReferralRepository().Count(ctx, specification.ByAmbassador{AmbassadorID: ambassador.Id})
	if err != nil {
		return nil, err
	}
	converted, err := uow.ReferralRepository().CountConverted(ctx, ambassador.Id)
	if err != nil {
		return nil, err
	}
	activeSubs, err := uow.ReferralRepository().CountActiveSubscribers(ctx, ambassador.Id)
	if err != nil {
		return nil, err
	}
	unclaimed, err := uow.CommissionRepository().SumPendingByAmbassador(ctx, ambassador.Id)
	if err != nil {
		return nil, err
	}

	conversionRate := 0.0
	if total > 0 {
		conversionRate = float64(converted) / float64(total) * 100
	}

	return &dto.AmbassadorStatsResponse{
		TotalReferrals:     total,
		ConvertedReferrals: converted,
		ActiveSubscribers:  activeSubs,
		ConversionRate:     conversionRate,
		TierName:           ambassador.TierName,
		TotalEarnings:      ambassador.TotalEarnings,
		PendingEarnings:    ambassador.PendingEarnings,
		PaidEarnings:       ambassador.PaidEarnings,
		UnclaimedComms:     unclaimed,
	}, nil
}

func (s *ambassadorService) ListForAdmin(ctx context.Context, status string, limit, offset int) ([]*dto.AdminAmbassadorListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	ambassadors, err := uow.AmbassadorRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AdminAmbassadorListResponse, 0, len(ambassadors))
	for _, a := range ambassadors {
		item := &dto.AdminAmbassadorListResponse{
			Id:             a.Id,
			Code:           a.Code,
			Status:         string(a.Status),
			TierName:       a.TierName,
			Motivation:     a.Motivation,
			TotalReferrals: a.TotalReferrals,
			TotalEarnings:  a.TotalEarnings,
			CreatedAt:      a.CreatedAt,
		}
		if a.SocialMediaUrl != nil {
			item.SocialMediaUrl = *a.SocialMediaUrl
		}
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: a.UserId})
		if err == nil && user != nil {
			item.UserEmail = user.Email
			item.UserName = user.FullName
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *ambassadorService) generateUniqueCode(ctx context.Context, uow unitofwork.UnitOfWork) (string, error) {
	for attempt := 0; attempt < constant.ReferralCodeMaxAttempts; attempt++ {
		code, err := refcode.Generate(constant.ReferralCodeLength)
		if err != nil {
			return "", err
		}
		exists, err := uow.AmbassadorRepository().CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique referral code after %d attempts", constant.ReferralCodeMaxAttempts)
}

func toAmbassadorResponse(a *entity.Ambassador) *dto.AmbassadorResponse {
	return &dto.AmbassadorResponse{
		Id:                   a.Id,
		UserId:               a.UserId,
		Code:                 a.Code,
		Status:               string(a.Status),
		TierName:             a.TierName,
		DiscountPercentage:   a.DiscountPercentage,
		CommissionPercentage: a.CommissionPercentage,
		TotalReferrals:       a.TotalReferrals,
		TotalEarnings:        a.TotalEarnings,
		PendingEarnings:      a.PendingEarnings,
		PaidEarnings:         a.PaidEarnings,
		CreatedAt:            a.CreatedAt,
		ApprovedAt:           a.ApprovedAt,
	}
}

func toLinkResponse(link *entity.AmbassadorLink) *dto.AmbassadorLinkResponse {
	res := &dto.AmbassadorLinkResponse{
		Id:          link.Id,
		Code:        link.Code,
		Signups:     link.SignupCount,
		Conversions: link.ConversionCount,
		CreatedAt:   link.CreatedAt,
	}
	if link.CampaignName != nil {
		res.CampaignName = *link.CampaignName
	}
	return res
}
