package contract

import (
	"context"

	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/repository/specification"
)

type PayoutRepository interface {
	Create(ctx context.Context, payout *entity.AmbassadorPayout) error
	Update(ctx context.Context, payout *entity.AmbassadorPayout) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AmbassadorPayout, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AmbassadorPayout, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
