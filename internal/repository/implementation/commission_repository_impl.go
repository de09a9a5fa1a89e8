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

type CommissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommissionMapper
}

func NewCommissionRepository(db *gorm.DB) contract.CommissionRepository {
	return &CommissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommissionMapper(),
	}
}

func (r *CommissionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CommissionRepositoryImpl) Create(ctx context.Context, commission *entity.AmbassadorCommission) error {
	m := r.mapper.ToModel(commission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*commission = *r.mapper.ToEntity(m)
	return nil
}

func (r *CommissionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AmbassadorCommission, error) {
	var m model.AmbassadorCommission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CommissionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AmbassadorCommission, error) {
	var models []*model.AmbassadorCommission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AmbassadorCommission, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *CommissionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AmbassadorCommission{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *CommissionRepositoryImpl) ClaimForPayout(ctx context.Context, payoutId uuid.UUID, ambassadorId uuid.UUID, from, to time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.AmbassadorCommission{}).
		Where("ambassador_id = ? AND status = ? AND payout_period_id IS NULL AND created_at >= ? AND created_at < ?",
			ambassadorId, string(entity.CommissionStatusPending), from, to).
		Update("payout_period_id", payoutId)
	return res.RowsAffected, res.Error
}

func (r *CommissionRepositoryImpl) SumByPayout(ctx context.Context, payoutId uuid.UUID) (decimal.Decimal, int64, error) {
	var row struct {
		Total decimal.Decimal
		Cnt   int64
	}
	err := r.db.WithContext(ctx).Model(&model.AmbassadorCommission{}).
		Where("payout_period_id = ?", payoutId).
		Select("COALESCE(SUM(commission_amount), 0) AS total, COUNT(*) AS cnt").
		Scan(&row).Error
	return row.Total, row.Cnt, err
}

func (r *CommissionRepositoryImpl) ReleaseFromPayout(ctx context.Context, payoutId uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.AmbassadorCommission{}).
		Where("payout_period_id = ? AND status = ?", payoutId, string(entity.CommissionStatusPending)).
		Update("payout_period_id", nil)
	return res.RowsAffected, res.Error
}

func (r *CommissionRepositoryImpl) MarkPaidByPayout(ctx context.Context, payoutId uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.AmbassadorCommission{}).
		Where("payout_period_id = ?", payoutId).
		Update("status", string(entity.CommissionStatusPaid))
	return res.RowsAffected, res.Error
}

func (r *CommissionRepositoryImpl) SumPendingByAmbassador(ctx context.Context, ambassadorId uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.AmbassadorCommission{}).
		Where("ambassador_id = ? AND status = ?", ambassadorId, string(entity.CommissionStatusPending)).
		Select("COALESCE(SUM(commission_amount), 0)").
		Scan(&total).Error
	return total, err
}
