package implementation

import (
	"context"
	"errors"

	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/mapper"
	"renderiq-ambassador-be/internal/model"
	"renderiq-ambassador-be/internal/repository/contract"
	"renderiq-ambassador-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AmbassadorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AmbassadorMapper
}

func NewAmbassadorRepository(db *gorm.DB) contract.AmbassadorRepository {
	return &AmbassadorRepositoryImpl{
		db:     db,
		mapper: mapper.NewAmbassadorMapper(),
	}
}

func (r *AmbassadorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AmbassadorRepositoryImpl) Create(ctx context.Context, ambassador *entity.Ambassador) error {
	m := r.mapper.ToModel(ambassador)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*ambassador = *r.mapper.ToEntity(m)
	return nil
}

func (r *AmbassadorRepositoryImpl) Update(ctx context.Context, ambassador *entity.Ambassador) error {
	m := r.mapper.ToModel(ambassador)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*ambassador = *r.mapper.ToEntity(m)
	return nil
}

func (r *AmbassadorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ambassador, error) {
	var m model.Ambassador
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AmbassadorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ambassador, error) {
	var models []*model.Ambassador
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Ambassador, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *AmbassadorRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Ambassador{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *AmbassadorRepositoryImpl) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Ambassador{}).
		Where("UPPER(code) = UPPER(?)", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	err = r.db.WithContext(ctx).Model(&model.AmbassadorLink{}).
		Where("UPPER(code) = UPPER(?)", code).
		Count(&count).Error
	return count > 0, err
}

func (r *AmbassadorRepositoryImpl) AssignCodeIfMissing(ctx context.Context, id uuid.UUID, code string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Ambassador{}).
		Where("id = ? AND (code IS NULL OR code = '')", id).
		Update("code", code)
	return res.RowsAffected > 0, res.Error
}

func (r *AmbassadorRepositoryImpl) IncrementTotalReferrals(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Ambassador{}).
		Where("id = ?", id).
		Update("total_referrals", gorm.Expr("total_referrals + 1")).Error
}

func (r *AmbassadorRepositoryImpl) AccrueEarnings(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Ambassador{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_earnings":   gorm.Expr("total_earnings + ?", amount),
			"pending_earnings": gorm.Expr("pending_earnings + ?", amount),
		}).Error
}

func (r *AmbassadorRepositoryImpl) SettleEarnings(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Ambassador{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"pending_earnings": gorm.Expr("pending_earnings - ?", amount),
			"paid_earnings":    gorm.Expr("paid_earnings + ?", amount),
		}).Error
}

func (r *AmbassadorRepositoryImpl) UpdateTier(ctx context.Context, id uuid.UUID, tierName string, discountPercentage decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Ambassador{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"tier_name":           tierName,
			"discount_percentage": discountPercentage,
		}).Error
}

// Campaign links

func (r *AmbassadorRepositoryImpl) CreateLink(ctx context.Context, link *entity.AmbassadorLink) error {
	m := r.mapper.LinkToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*link = *r.mapper.LinkToEntity(m)
	return nil
}

func (r *AmbassadorRepositoryImpl) FindOneLink(ctx context.Context, specs ...specification.Specification) (*entity.AmbassadorLink, error) {
	var m model.AmbassadorLink
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.LinkToEntity(&m), nil
}

func (r *AmbassadorRepositoryImpl) FindAllLinks(ctx context.Context, specs ...specification.Specification) ([]*entity.AmbassadorLink, error) {
	var models []*model.AmbassadorLink
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	links := make([]*entity.AmbassadorLink, len(models))
	for i, m := range models {
		links[i] = r.mapper.LinkToEntity(m)
	}
	return links, nil
}

func (r *AmbassadorRepositoryImpl) IncrementLinkSignups(ctx context.Context, linkId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.AmbassadorLink{}).
		Where("id = ?", linkId).
		Update("signup_count", gorm.Expr("signup_count + 1")).Error
}

func (r *AmbassadorRepositoryImpl) IncrementLinkConversions(ctx context.Context, linkId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.AmbassadorLink{}).
		Where("id = ?", linkId).
		Update("conversion_count", gorm.Expr("conversion_count + 1")).Error
}
