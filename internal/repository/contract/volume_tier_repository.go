package contract

import (
	"context"

	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/repository/specification"
)

type VolumeTierRepository interface {
	Create(ctx context.Context, tier *entity.VolumeTier) error
	Update(ctx context.Context, tier *entity.VolumeTier) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VolumeTier, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VolumeTier, error)
}
