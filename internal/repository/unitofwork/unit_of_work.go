package unitofwork

import (
	"context"

	"renderiq-ambassador-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AmbassadorRepository() contract.AmbassadorRepository
	ReferralRepository() contract.ReferralRepository
	CommissionRepository() contract.CommissionRepository
	PayoutRepository() contract.PayoutRepository
	VolumeTierRepository() contract.VolumeTierRepository
}
