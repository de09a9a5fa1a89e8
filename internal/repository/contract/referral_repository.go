package contract

import (
	"context"
	"time"

	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReferralRepository interface {
	Create(ctx context.Context, referral *entity.AmbassadorReferral) error
	Update(ctx context.Context, referral *entity.AmbassadorReferral) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AmbassadorReferral, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AmbassadorReferral, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// MarkFirstSubscription activates the referral and stamps
	// first_subscription_at, but only when it is still unset; reports whether
	// this call performed the transition. At most once per referral, ever.
	MarkFirstSubscription(ctx context.Context, id uuid.UUID, subscriptionId uuid.UUID, at time.Time) (bool, error)

	// AccrueCommission adds to total_commission_earned and burns one month of
	// the commission budget in a single expression update.
	AccrueCommission(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	// Storage-side stats aggregates
	CountConverted(ctx context.Context, ambassadorId uuid.UUID) (int64, error)
	CountActiveSubscribers(ctx context.Context, ambassadorId uuid.UUID) (int64, error)
}
