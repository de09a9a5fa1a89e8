// Package ledger holds the pure money math for the ambassador program:
// discount and commission computation and volume tier resolution. All amounts
// are decimal to keep cents exact; results are rounded to 2 places.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Discount is the outcome of applying a referral discount to an amount.
type Discount struct {
	Percentage     decimal.Decimal `json:"percentage"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
}

// ComputeDiscount applies percentage to amount. A zero percentage yields a
// zero discount and the original amount, which doubles as the no-referral
// fallback.
func ComputeDiscount(amount, percentage decimal.Decimal) Discount {
	discount := amount.Mul(percentage).Div(oneHundred).Round(2)
	return Discount{
		Percentage:     percentage,
		DiscountAmount: discount,
		FinalAmount:    amount.Sub(discount),
	}
}

// ComputeCommission returns the commission owed on a payment. The basis is
// the gross payment amount, before any discount the referred user received.
func ComputeCommission(grossAmount, percentage decimal.Decimal) decimal.Decimal {
	return grossAmount.Mul(percentage).Div(oneHundred).Round(2)
}

// Tier is one row of the volume tier table, already loaded from storage.
type Tier struct {
	Name               string
	MinReferrals       int
	DiscountPercentage decimal.Decimal
}

// ResolveTier picks the highest tier whose MinReferrals the count satisfies.
// With no qualifying tier the fallback is returned, so callers always get a
// usable tier even against an empty table.
func ResolveTier(tiers []Tier, referralCount int, fallback Tier) Tier {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinReferrals > sorted[j].MinReferrals
	})
	for _, t := range sorted {
		if referralCount >= t.MinReferrals {
			return t
		}
	}
	return fallback
}
