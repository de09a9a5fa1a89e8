package contract

import (
	"context"
	"time"

	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CommissionRepository interface {
	Create(ctx context.Context, commission *entity.AmbassadorCommission) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AmbassadorCommission, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AmbassadorCommission, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ClaimForPayout stamps payout_period_id on every pending, unbatched
	// commission of the ambassador created within [from, to) and returns how
	// many rows were claimed. Run inside the payout-creation transaction so a
	// commission cannot slip in between aggregation and persistence.
	ClaimForPayout(ctx context.Context, payoutId uuid.UUID, ambassadorId uuid.UUID, from, to time.Time) (int64, error)

	// SumByPayout aggregates the claimed set in the database.
	SumByPayout(ctx context.Context, payoutId uuid.UUID) (decimal.Decimal, int64, error)

	// ReleaseFromPayout unbatches commissions of a failed payout so a future
	// period can pick them up again.
	ReleaseFromPayout(ctx context.Context, payoutId uuid.UUID) (int64, error)

	// MarkPaidByPayout cascades status 'paid' to the whole batch.
	MarkPaidByPayout(ctx context.Context, payoutId uuid.UUID) (int64, error)

	// SumPendingByAmbassador backs the stats endpoint without loading rows.
	SumPendingByAmbassador(ctx context.Context, ambassadorId uuid.UUID) (decimal.Decimal, error)
}
