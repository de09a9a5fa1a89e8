package implementation

import (
	"context"
	"errors"
	"time"

	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/mapper"
	"renderiq-ambassador-be/internal/model"
	"renderiq-ambassador-be/internal/repository/contract"
	"renderiq-ambassador-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReferralRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReferralMapper
}

func NewReferralRepository(db *gorm.DB) contract.ReferralRepository {
	return &ReferralRepositoryImpl{
		db:     db,
		mapper: mapper.NewReferralMapper(),
	}
}

func (r *ReferralRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReferralRepositoryImpl) Create(ctx context.Context, referral *entity.AmbassadorReferral) error {
	m := r.mapper.ToModel(referral)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*referral = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReferralRepositoryImpl) Update(ctx context.Context, referral *entity.AmbassadorReferral) error {
	m := r.mapper.ToModel(referral)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*referral = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReferralRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AmbassadorReferral, error) {
	var m model.AmbassadorReferral
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReferralRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AmbassadorReferral, error) {
	var models []*model.AmbassadorReferral
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AmbassadorReferral, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ReferralRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AmbassadorReferral{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *ReferralRepositoryImpl) MarkFirstSubscription(ctx context.Context, id uuid.UUID, subscriptionId uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.AmbassadorReferral{}).
		Where("id = ? AND first_subscription_at IS NULL", id).
		Updates(map[string]interface{}{
			"status":                string(entity.ReferralStatusActive),
			"subscription_id":       subscriptionId,
			"first_subscription_at": at,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *ReferralRepositoryImpl) AccrueCommission(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.AmbassadorReferral{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_commission_earned":     gorm.Expr("total_commission_earned + ?", amount),
			"commission_months_remaining": gorm.Expr("commission_months_remaining - 1"),
		}).Error
}

func (r *ReferralRepositoryImpl) CountConverted(ctx context.Context, ambassadorId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.AmbassadorReferral{}).
		Where("ambassador_id = ? AND subscription_id IS NOT NULL", ambassadorId).
		Count(&count).Error
	return count, err
}

func (r *ReferralRepositoryImpl) CountActiveSubscribers(ctx context.Context, ambassadorId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.AmbassadorReferral{}).
		Where("ambassador_id = ? AND status = ? AND subscription_id IS NOT NULL", ambassadorId, string(entity.ReferralStatusActive)).
		Count(&count).Error
	return count, err
}
