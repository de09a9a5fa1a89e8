package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/repository/specification"
	"renderiq-ambassador-be/internal/repository/unitofwork"
	"renderiq-ambassador-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.AmbassadorRepository())
	assert.NotNil(t, uow.CommissionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Transactional Commission Accrual", func(t *testing.T) {
		ctx := context.Background()

		ambassadorUser := &entity.User{
			Id:       uuid.New(),
			Email:    "test-ambassador-" + uuid.New().String() + "@example.com",
			FullName: "Integration Ambassador",
			Role:     "user",
			Status:   "active",
		}
		referredUser := &entity.User{
			Id:       uuid.New(),
			Email:    "test-referred-" + uuid.New().String() + "@example.com",
			FullName: "Integration Referred",
			Role:     "user",
			Status:   "active",
		}
		assert.NoError(t, uow.UserRepository().Create(ctx, ambassadorUser))
		assert.NoError(t, uow.UserRepository().Create(ctx, referredUser))

		ambassador := &entity.Ambassador{
			Id:                   uuid.New(),
			UserId:               ambassadorUser.Id,
			Code:                 "IT" + uuid.New().String()[:6],
			Status:               entity.AmbassadorStatusActive,
			TierName:             "Bronze",
			DiscountPercentage:   decimal.RequireFromString("20"),
			CommissionPercentage: decimal.RequireFromString("20"),
			TotalEarnings:        decimal.Zero,
			PendingEarnings:      decimal.Zero,
			PaidEarnings:         decimal.Zero,
		}
		assert.NoError(t, uow.AmbassadorRepository().Create(ctx, ambassador))

		referral := &entity.AmbassadorReferral{
			Id:                        uuid.New(),
			AmbassadorId:              ambassador.Id,
			ReferredUserId:            referredUser.Id,
			ReferralCode:              ambassador.Code,
			Status:                    entity.ReferralStatusPending,
			CommissionMonthsRemaining: 12,
			TotalCommissionEarned:     decimal.Zero,
		}
		assert.NoError(t, uow.ReferralRepository().Create(ctx, referral))

		// Commission + accrual must land atomically.
		assert.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		amount := decimal.RequireFromString("5.80")
		commission := &entity.AmbassadorCommission{
			Id:                   uuid.New(),
			AmbassadorId:         ambassador.Id,
			ReferralId:           referral.Id,
			SubscriptionId:       uuid.New(),
			PaymentOrderId:       "it-order-" + uuid.New().String(),
			SubscriptionAmount:   decimal.RequireFromString("29.00"),
			CommissionPercentage: decimal.RequireFromString("20"),
			CommissionAmount:     amount,
			Currency:             "USD",
			PeriodStart:          time.Now(),
			PeriodEnd:            time.Now().AddDate(0, 1, 0),
			Status:               entity.CommissionStatusPending,
		}
		assert.NoError(t, uow.CommissionRepository().Create(ctx, commission))
		assert.NoError(t, uow.ReferralRepository().AccrueCommission(ctx, referral.Id, amount))
		assert.NoError(t, uow.AmbassadorRepository().AccrueEarnings(ctx, ambassador.Id, amount))
		assert.NoError(t, uow.Commit())

		// Verify the accrual landed and the month budget burned.
		updated, err := uow.ReferralRepository().FindOne(ctx, specification.ByID{ID: referral.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, updated) {
			assert.Equal(t, 11, updated.CommissionMonthsRemaining)
			assert.True(t, updated.TotalCommissionEarned.Equal(amount))
		}

		refreshed, err := uow.AmbassadorRepository().FindOne(ctx, specification.ByID{ID: ambassador.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, refreshed) {
			assert.True(t, refreshed.PendingEarnings.Equal(amount))
			assert.True(t, refreshed.TotalEarnings.Equal(refreshed.PendingEarnings.Add(refreshed.PaidEarnings)))
		}

		t.Log("Successfully accrued commission in transaction")
	})
}
