package main

import (
	"log"
	"os"

	"renderiq-ambassador-be/internal/model"
	"renderiq-ambassador-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedVolumeTiers(db)
	log.Println("✅ Seeding completed")
}

// seedVolumeTiers installs the default tier ladder. Existing rows are updated
// in place so the seeder stays idempotent.
func seedVolumeTiers(db *gorm.DB) {
	tiers := []model.AmbassadorVolumeTier{
		{
			TierName:           "Bronze",
			MinReferrals:       0,
			DiscountPercentage: decimal.RequireFromString("20"),
			IsActive:           true,
		},
		{
			TierName:           "Silver",
			MinReferrals:       50,
			DiscountPercentage: decimal.RequireFromString("30"),
			IsActive:           true,
		},
		{
			TierName:           "Gold",
			MinReferrals:       200,
			DiscountPercentage: decimal.RequireFromString("40"),
			IsActive:           true,
		},
	}

	for _, tier := range tiers {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tier_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"min_referrals", "discount_percentage", "is_active"}),
		}).Create(&tier).Error
		if err != nil {
			log.Fatalf("Error: Failed to seed tier %s: %v", tier.TierName, err)
		}
		log.Printf("Seeded tier: %s (min_referrals=%d)", tier.TierName, tier.MinReferrals)
	}
}
