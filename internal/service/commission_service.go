package service

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"time"

	"renderiq-ambassador-be/internal/constant"
	"renderiq-ambassador-be/internal/dto"
	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/pkg/logger"
	"renderiq-ambassador-be/internal/repository/specification"
	"renderiq-ambassador-be/internal/repository/unitofwork"
	"renderiq-ambassador-be/pkg/events"
	"renderiq-ambassador-be/pkg/ledger"
	pktNats "renderiq-ambassador-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Skip reasons reported when a payment does not produce a commission.
const (
	SkipNoReferral         = "no_referral"
	SkipAmbassadorInactive = "ambassador_inactive"
	SkipPeriodExpired      = "commission_period_expired"
	SkipDuplicatePayment   = "duplicate_payment"
)

type ICommissionService interface {
	ProcessSubscriptionPayment(ctx context.Context, userId, subscriptionId uuid.UUID, paymentOrderId string, grossAmount decimal.Decimal, currency string, periodStart, periodEnd time.Time) (*dto.ProcessPaymentResponse, error)
	HandleMidtransNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	GetCommissions(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.CommissionResponse, error)
}

type commissionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	coreClient     *coreapi.Client
	serverKey      string
	logger         logger.ILogger
}

func NewCommissionService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	coreClient *coreapi.Client,
	midtransServerKey string,
	sysLogger logger.ILogger,
) ICommissionService {
	return &commissionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		coreClient:     coreClient,
		serverKey:      midtransServerKey,
		logger:         sysLogger,
	}
}

// ProcessSubscriptionPayment runs the accrual pipeline for one settled
// payment. Every early exit is a skip, not an error: payments from
// non-referred users are the normal case.
func (s *commissionService) ProcessSubscriptionPayment(ctx context.Context, userId, subscriptionId uuid.UUID, paymentOrderId string, grossAmount decimal.Decimal, currency string, periodStart, periodEnd time.Time) (*dto.ProcessPaymentResponse, error) {
	if currency == "" {
		currency = constant.DefaultCurrency
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	referral, err := uow.ReferralRepository().FindOne(ctx, specification.ByReferredUser{UserID: userId})
	if err != nil {
		return nil, err
	}
	if referral == nil {
		return &dto.ProcessPaymentResponse{Recorded: false, SkipReason: SkipNoReferral}, nil
	}

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByID{ID: referral.AmbassadorId})
	if err != nil {
		return nil, err
	}
	if ambassador == nil || ambassador.Status != entity.AmbassadorStatusActive {
		return &dto.ProcessPaymentResponse{Recorded: false, SkipReason: SkipAmbassadorInactive}, nil
	}

	// First settled payment activates the referral. Conditional update, so a
	// retried webhook or a renewal cannot re-stamp it.
	if referral.FirstSubscriptionAt == nil {
		now := time.Now()
		won, err := uow.ReferralRepository().MarkFirstSubscription(ctx, referral.Id, subscriptionId, now)
		if err != nil {
			return nil, err
		}
		if won && referral.LinkId != nil {
			if err := uow.AmbassadorRepository().IncrementLinkConversions(ctx, *referral.LinkId); err != nil {
				s.logger.Warn("commission", "Failed to bump link conversions", map[string]interface{}{"link_id": referral.LinkId, "error": err.Error()})
			}
		}
	}

	if referral.CommissionMonthsRemaining <= 0 {
		return &dto.ProcessPaymentResponse{Recorded: false, SkipReason: SkipPeriodExpired}, nil
	}

	// Commission basis is the gross payment, before the referred user's
	// discount.
	commissionAmount := ledger.ComputeCommission(grossAmount, ambassador.CommissionPercentage)
	discount := ledger.ComputeDiscount(grossAmount, ambassador.DiscountPercentage)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	commission := &entity.AmbassadorCommission{
		Id:                   uuid.New(),
		AmbassadorId:         ambassador.Id,
		ReferralId:           referral.Id,
		SubscriptionId:       subscriptionId,
		PaymentOrderId:       paymentOrderId,
		SubscriptionAmount:   grossAmount,
		DiscountAmount:       discount.DiscountAmount,
		CommissionPercentage: ambassador.CommissionPercentage,
		CommissionAmount:     commissionAmount,
		Currency:             currency,
		PeriodStart:          periodStart,
		PeriodEnd:            periodEnd,
		Status:               entity.CommissionStatusPending,
	}

	if err := uow.CommissionRepository().Create(ctx, commission); err != nil {
		// Unique index on payment_order_id makes webhook retries harmless.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.logger.Info("commission", "Duplicate payment ignored", map[string]interface{}{"payment_order_id": paymentOrderId})
			return &dto.ProcessPaymentResponse{Recorded: false, SkipReason: SkipDuplicatePayment}, nil
		}
		return nil, err
	}

	// Same transaction: the month burns exactly once per recorded commission.
	if err := uow.ReferralRepository().AccrueCommission(ctx, referral.Id, commissionAmount); err != nil {
		return nil, err
	}
	if err := uow.AmbassadorRepository().AccrueEarnings(ctx, ambassador.Id, commissionAmount); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventCommissionRecorded,
			Data: map[string]interface{}{
				"ambassador_id":     ambassador.Id,
				"commission_id":     commission.Id,
				"commission_amount": commissionAmount.String(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("commission", "Failed to publish commission event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.logger.Info("commission", "Commission recorded", map[string]interface{}{
		"ambassador_id":    ambassador.Id,
		"referral_id":      referral.Id,
		"payment_order_id": paymentOrderId,
		"amount":           commissionAmount.String(),
	})
	return &dto.ProcessPaymentResponse{
		Recorded:   true,
		Commission: toCommissionResponse(commission),
	}, nil
}

func (s *commissionService) HandleMidtransNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	if s.serverKey == "" {
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + s.serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		s.logger.Warn("commission", "Webhook signature mismatch", map[string]interface{}{"order_id": req.OrderId})
		return fmt.Errorf("invalid signature")
	}

	settled := req.TransactionStatus == "settlement" ||
		(req.TransactionStatus == "capture" && req.FraudStatus == "accept")
	if !settled {
		s.logger.Info("commission", "Ignoring non-settled notification", map[string]interface{}{
			"order_id": req.OrderId,
			"status":   req.TransactionStatus,
		})
		return nil
	}

	// Cross-check against the gateway API when a client is configured. The
	// notification already passed the signature gate, so a lookup failure
	// only logs.
	if s.coreClient != nil {
		status, apiErr := s.coreClient.CheckTransaction(req.OrderId)
		if apiErr != nil {
			s.logger.Warn("commission", "Gateway status check failed", map[string]interface{}{"order_id": req.OrderId, "error": apiErr.Error()})
		} else if status != nil && status.TransactionStatus != req.TransactionStatus {
			s.logger.Warn("commission", "Gateway status disagrees with notification", map[string]interface{}{
				"order_id":     req.OrderId,
				"notification": req.TransactionStatus,
				"gateway":      status.TransactionStatus,
			})
			return nil
		}
	}

	userId, err := uuid.Parse(req.CustomField1)
	if err != nil {
		return fmt.Errorf("invalid user id in notification: %w", err)
	}
	subscriptionId, err := uuid.Parse(req.CustomField2)
	if err != nil {
		return fmt.Errorf("invalid subscription id in notification: %w", err)
	}
	grossAmount, err := decimal.NewFromString(req.GrossAmount)
	if err != nil {
		return fmt.Errorf("invalid gross amount in notification: %w", err)
	}

	periodStart := time.Now()
	periodEnd := periodStart.AddDate(0, 1, 0)

	res, err := s.ProcessSubscriptionPayment(ctx, userId, subscriptionId, req.OrderId, grossAmount, req.Currency, periodStart, periodEnd)
	if err != nil {
		return err
	}
	if !res.Recorded {
		s.logger.Info("commission", "Payment skipped", map[string]interface{}{
			"order_id": req.OrderId,
			"reason":   res.SkipReason,
		})
	}
	return nil
}

func (s *commissionService) GetCommissions(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.CommissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ambassador, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByUser{UserID: userId})
	if err != nil {
		return nil, err
	}
	if ambassador == nil {
		return nil, ErrAmbassadorNotFound
	}

	commissions, err := uow.CommissionRepository().FindAll(ctx,
		specification.ByAmbassador{AmbassadorID: ambassador.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CommissionResponse, 0, len(commissions))
	for _, c := range commissions {
		res = append(res, toCommissionResponse(c))
	}
	return res, nil
}

func toCommissionResponse(c *entity.AmbassadorCommission) *dto.CommissionResponse {
	return &dto.CommissionResponse{
		Id:               c.Id,
		AmbassadorId:     c.AmbassadorId,
		ReferralId:       c.ReferralId,
		PaymentOrderId:   c.PaymentOrderId,
		GrossAmount:      c.SubscriptionAmount,
		CommissionAmount: c.CommissionAmount,
		Status:           string(c.Status),
		PayoutPeriodId:   c.PayoutPeriodId,
		CreatedAt:        c.CreatedAt,
	}
}
