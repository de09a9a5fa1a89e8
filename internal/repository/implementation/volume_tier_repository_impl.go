package implementation

import (
	"context"
	"errors"

	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/mapper"
	"renderiq-ambassador-be/internal/model"
	"renderiq-ambassador-be/internal/repository/contract"
	"renderiq-ambassador-be/internal/repository/specification"

	"gorm.io/gorm"
)

type VolumeTierRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VolumeTierMapper
}

func NewVolumeTierRepository(db *gorm.DB) contract.VolumeTierRepository {
	return &VolumeTierRepositoryImpl{
		db:     db,
		mapper: mapper.NewVolumeTierMapper(),
	}
}

func (r *VolumeTierRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VolumeTierRepositoryImpl) Create(ctx context.Context, tier *entity.VolumeTier) error {
	m := r.mapper.ToModel(tier)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tier = *r.mapper.ToEntity(m)
	return nil
}

func (r *VolumeTierRepositoryImpl) Update(ctx context.Context, tier *entity.VolumeTier) error {
	m := r.mapper.ToModel(tier)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tier = *r.mapper.ToEntity(m)
	return nil
}

func (r *VolumeTierRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VolumeTier, error) {
	var m model.AmbassadorVolumeTier
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VolumeTierRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VolumeTier, error) {
	var models []*model.AmbassadorVolumeTier
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.VolumeTier, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
