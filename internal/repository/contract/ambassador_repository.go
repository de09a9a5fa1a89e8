package contract

import (
	"context"

	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AmbassadorRepository interface {
	Create(ctx context.Context, ambassador *entity.Ambassador) error
	Update(ctx context.Context, ambassador *entity.Ambassador) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ambassador, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ambassador, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// CodeExists reports whether any ambassador or link already uses the code.
	CodeExists(ctx context.Context, code string) (bool, error)

	// AssignCodeIfMissing sets the code only when none is present yet and
	// reports whether this call won the write. Conditional update, so two
	// concurrent approvals cannot both assign different codes.
	AssignCodeIfMissing(ctx context.Context, id uuid.UUID, code string) (bool, error)

	// Counter and earnings mutations are expression updates (col = col + ?)
	// to avoid lost increments under concurrent events.
	IncrementTotalReferrals(ctx context.Context, id uuid.UUID) error
	AccrueEarnings(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	SettleEarnings(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	UpdateTier(ctx context.Context, id uuid.UUID, tierName string, discountPercentage decimal.Decimal) error

	// Campaign links
	CreateLink(ctx context.Context, link *entity.AmbassadorLink) error
	FindOneLink(ctx context.Context, specs ...specification.Specification) (*entity.AmbassadorLink, error)
	FindAllLinks(ctx context.Context, specs ...specification.Specification) ([]*entity.AmbassadorLink, error)
	IncrementLinkSignups(ctx context.Context, linkId uuid.UUID) error
	IncrementLinkConversions(ctx context.Context, linkId uuid.UUID) error
}
