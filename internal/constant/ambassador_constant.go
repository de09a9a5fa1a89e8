package constant

// Referral code shape
const (
	ReferralCodeLength      = 6
	ReferralCodeMaxAttempts = 10
	CampaignSuffixMaxLength = 10
)

// Defaults applied when no volume tier qualifies and at application time.
// The fallback tier mirrors the lowest seeded tier.
const (
	DefaultTierName             = "Bronze"
	DefaultDiscountPercentage   = "20"
	DefaultCommissionPercentage = "20"
	DefaultCommissionMonths     = 12
	DefaultCurrency             = "USD"
)

// In-process event topics (watermill bus)
const (
	TopicReferralRecorded = "REFERRAL_RECORDED"
)

// Outbound event types (NATS)
const (
	EventAmbassadorApproved = "AMBASSADOR_APPROVED"
	EventCommissionRecorded = "COMMISSION_RECORDED"
	EventPayoutPaid         = "PAYOUT_PAID"
)
