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

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IPayoutService interface {
	CreatePayoutPeriod(ctx context.Context, req *dto.CreatePayoutRequest) (*dto.PayoutResponse, error)
	MarkProcessing(ctx context.Context, payoutId, adminId uuid.UUID) (*dto.PayoutResponse, error)
	SettlePayout(ctx context.Context, payoutId, adminId uuid.UUID, req *dto.SettlePayoutRequest) (*dto.PayoutResponse, error)
	GetPayout(ctx context.Context, payoutId uuid.UUID) (*dto.PayoutResponse, error)
	ListPayouts(ctx context.Context, ambassadorId *uuid.UUID, limit, offset int) ([]*dto.PayoutResponse, error)
	GetPayoutsByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.PayoutResponse, error)
}

type payoutService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	logger         logger.ILogger
}

func NewPayoutService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	sysLogger logger.ILogger,
) IPayoutService {
	return &payoutService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		logger:         sysLogger,
	}
}

// CreatePayoutPeriod claims the ambassador's pending commissions inside the
// period, then totals the claimed set in the database. Claim-then-sum inside
// one transaction: a commission landing mid-creation either joins this batch
// or stays fully out of it, never half in.
func (s *payoutService) CreatePayoutPeriod(ctx context.Context, req *dto.CreatePayoutRequest) (*dto.PayoutResponse, error) {
	if !req.PeriodEnd.After(req.PeriodStart) {
		return nil, fmt.Errorf("period end must be after period start")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByID{ID: req.AmbassadorId})
	if err != nil {
		return nil, err
	}
	if ambassador == nil {
		return nil, ErrAmbassadorNotFound
	}

	payout := &entity.AmbassadorPayout{
		Id:               uuid.New(),
		AmbassadorId:     ambassador.Id,
		PeriodStart:      req.PeriodStart,
		PeriodEnd:        req.PeriodEnd,
		TotalCommissions: decimal.Zero,
		Status:           entity.PayoutStatusPending,
	}
	if err := uow.PayoutRepository().Create(ctx, payout); err != nil {
		return nil, err
	}

	claimed, err := uow.CommissionRepository().ClaimForPayout(ctx, payout.Id, ambassador.Id, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}
	if claimed == 0 {
		return nil, ErrNoPendingCommissions
	}

	total, count, err := uow.CommissionRepository().SumByPayout(ctx, payout.Id)
	if err != nil {
		return nil, err
	}
	payout.TotalCommissions = total
	payout.CommissionCount = int(count)
	if err := uow.PayoutRepository().Update(ctx, payout); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("payout", "Payout period created", map[string]interface{}{
		"payout_id":        payout.Id,
		"ambassador_id":    ambassador.Id,
		"commission_count": count,
		"total":            total.String(),
	})
	return toPayoutResponse(payout), nil
}

// MarkProcessing moves a pending payout into processing while the transfer is
// in flight at the bank or gateway.
func (s *payoutService) MarkProcessing(ctx context.Context, payoutId, adminId uuid.UUID) (*dto.PayoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	payout, err := uow.PayoutRepository().FindOne(ctx, specification.ByID{ID: payoutId})
	if err != nil {
		return nil, err
	}
	if payout == nil {
		return nil, ErrPayoutNotFound
	}
	if payout.Status != entity.PayoutStatusPending {
		return nil, ErrInvalidPayoutState
	}

	payout.Status = entity.PayoutStatusProcessing
	if err := uow.PayoutRepository().Update(ctx, payout); err != nil {
		return nil, err
	}

	s.logger.Info("payout", "Payout marked processing", map[string]interface{}{
		"payout_id": payout.Id,
		"admin_id":  adminId,
	})
	return toPayoutResponse(payout), nil
}

func (s *payoutService) SettlePayout(ctx context.Context, payoutId, adminId uuid.UUID, req *dto.SettlePayoutRequest) (*dto.PayoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	payout, err := uow.PayoutRepository().FindOne(ctx, specification.ByID{ID: payoutId})
	if err != nil {
		return nil, err
	}
	if payout == nil {
		return nil, ErrPayoutNotFound
	}
	if payout.Status == entity.PayoutStatusPaid || payout.Status == entity.PayoutStatusFailed {
		return nil, ErrInvalidPayoutState
	}

	now := time.Now()
	switch req.Status {
	case string(entity.PayoutStatusPaid):
		// Cascade to the batch and move the money from pending to paid in
		// the same transaction.
		if _, err := uow.CommissionRepository().MarkPaidByPayout(ctx, payout.Id); err != nil {
			return nil, err
		}
		if err := uow.AmbassadorRepository().SettleEarnings(ctx, payout.AmbassadorId, payout.TotalCommissions); err != nil {
			return nil, err
		}
		payout.Status = entity.PayoutStatusPaid
		payout.PaymentMethod = &req.PaymentMethod
		payout.PaymentReference = &req.PaymentReference
		payout.PaidBy = &adminId
		payout.PaidAt = &now

	case string(entity.PayoutStatusFailed):
		// Release the batch so a future period can pick the commissions up.
		if _, err := uow.CommissionRepository().ReleaseFromPayout(ctx, payout.Id); err != nil {
			return nil, err
		}
		payout.Status = entity.PayoutStatusFailed
		payout.FailureReason = &req.FailureReason

	default:
		return nil, fmt.Errorf("unsupported settlement status: %s", req.Status)
	}

	if err := uow.PayoutRepository().Update(ctx, payout); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if payout.Status == entity.PayoutStatusPaid {
		s.notifyPaid(ctx, uow, payout)
	}

	s.logger.Info("payout", "Payout settled", map[string]interface{}{
		"payout_id": payout.Id,
		"status":    payout.Status,
		"admin_id":  adminId,
	})
	return toPayoutResponse(payout), nil
}

func (s *payoutService) notifyPaid(ctx context.Context, uow unitofwork.UnitOfWork, payout *entity.AmbassadorPayout) {
	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByID{ID: payout.AmbassadorId})
	if err != nil || ambassador == nil {
		return
	}
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: ambassador.UserId})
	if err == nil && user != nil {
		reference := ""
		if payout.PaymentReference != nil {
			reference = *payout.PaymentReference
		}
		if err := s.emailService.SendPayoutReceipt(user.Email, payout.TotalCommissions.String(), reference); err != nil {
			s.logger.Warn("payout", "Failed to send payout receipt", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventPayoutPaid,
			Data: map[string]interface{}{
				"payout_id":     payout.Id,
				"ambassador_id": payout.AmbassadorId,
				"amount":        payout.TotalCommissions.String(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("payout", "Failed to publish payout event", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (s *payoutService) GetPayout(ctx context.Context, payoutId uuid.UUID) (*dto.PayoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	payout, err := uow.PayoutRepository().FindOne(ctx, specification.ByID{ID: payoutId})
	if err != nil {
		return nil, err
	}
	if payout == nil {
		return nil, ErrPayoutNotFound
	}
	return toPayoutResponse(payout), nil
}

func (s *payoutService) ListPayouts(ctx context.Context, ambassadorId *uuid.UUID, limit, offset int) ([]*dto.PayoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if ambassadorId != nil {
		specs = append(specs, specification.ByAmbassador{AmbassadorID: *ambassadorId})
	}

	payouts, err := uow.PayoutRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		res = append(res, toPayoutResponse(p))
	}
	return res, nil
}

func (s *payoutService) GetPayoutsByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.PayoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByUser{UserID: userId})
	if err != nil {
		return nil, err
	}
	if ambassador == nil {
		return nil, ErrAmbassadorNotFound
	}
	return s.ListPayouts(ctx, &ambassador.Id, limit, offset)
}

func toPayoutResponse(p *entity.AmbassadorPayout) *dto.PayoutResponse {
	res := &dto.PayoutResponse{
		Id:              p.Id,
		AmbassadorId:    p.AmbassadorId,
		Amount:          p.TotalCommissions,
		CommissionCount: int64(p.CommissionCount),
		Status:          string(p.Status),
		PeriodStart:     p.PeriodStart,
		PeriodEnd:       p.PeriodEnd,
		PaidAt:          p.PaidAt,
		CreatedAt:       p.CreatedAt,
	}
	if p.PaymentMethod != nil {
		res.PaymentMethod = *p.PaymentMethod
	}
	if p.PaymentReference != nil {
		res.PaymentReference = *p.PaymentReference
	}
	if p.FailureReason != nil {
		res.FailureReason = *p.FailureReason
	}
	return res
}
