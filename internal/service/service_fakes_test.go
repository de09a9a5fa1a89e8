package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"renderiq-ambassador-be/internal/entity"
	"renderiq-ambassador-be/internal/repository/contract"
	"renderiq-ambassador-be/internal/repository/specification"
	"renderiq-ambassador-be/internal/repository/unitofwork"
	"renderiq-ambassador-be/pkg/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repositories backing the service tests. They interpret the same
// specifications the GORM implementations translate to SQL, so services run
// unchanged against them.

type fakeStore struct {
	mu          sync.Mutex
	ambassadors map[uuid.UUID]*entity.Ambassador
	links       map[uuid.UUID]*entity.AmbassadorLink
	referrals   map[uuid.UUID]*entity.AmbassadorReferral
	commissions map[uuid.UUID]*entity.AmbassadorCommission
	payouts     map[uuid.UUID]*entity.AmbassadorPayout
	users       map[uuid.UUID]*entity.User
	tiers       map[uuid.UUID]*entity.VolumeTier
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		ambassadors: make(map[uuid.UUID]*entity.Ambassador),
		links:       make(map[uuid.UUID]*entity.AmbassadorLink),
		referrals:   make(map[uuid.UUID]*entity.AmbassadorReferral),
		commissions: make(map[uuid.UUID]*entity.AmbassadorCommission),
		payouts:     make(map[uuid.UUID]*entity.AmbassadorPayout),
		users:       make(map[uuid.UUID]*entity.User),
		tiers:       make(map[uuid.UUID]*entity.VolumeTier),
	}
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store *fakeStore
	inTx  bool
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	if u.inTx {
		return fmt.Errorf("transaction already started")
	}
	u.inTx = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to commit")
	}
	u.inTx = false
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to rollback")
	}
	u.inTx = false
	return nil
}

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUnitOfWork) AmbassadorRepository() contract.AmbassadorRepository {
	return &fakeAmbassadorRepo{store: u.store}
}

func (u *fakeUnitOfWork) ReferralRepository() contract.ReferralRepository {
	return &fakeReferralRepo{store: u.store}
}

func (u *fakeUnitOfWork) CommissionRepository() contract.CommissionRepository {
	return &fakeCommissionRepo{store: u.store}
}

func (u *fakeUnitOfWork) PayoutRepository() contract.PayoutRepository {
	return &fakePayoutRepo{store: u.store}
}

func (u *fakeUnitOfWork) VolumeTierRepository() contract.VolumeTierRepository {
	return &fakeVolumeTierRepo{store: u.store}
}

// --- Ambassador ---

type fakeAmbassadorRepo struct {
	store *fakeStore
}

func ambassadorMatches(a *entity.Ambassador, sp specification.Specification) bool {
	switch s := sp.(type) {
	case specification.ByID:
		return a.Id == s.ID
	case specification.ByUser:
		return a.UserId == s.UserID
	case specification.ByCode:
		return strings.EqualFold(a.Code, s.Code)
	case specification.ByStatus:
		return string(a.Status) == s.Status
	default:
		return true
	}
}

func (r *fakeAmbassadorRepo) Create(ctx context.Context, a *entity.Ambassador) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *a
	r.store.ambassadors[a.Id] = &cp
	return nil
}

func (r *fakeAmbassadorRepo) Update(ctx context.Context, a *entity.Ambassador) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *a
	r.store.ambassadors[a.Id] = &cp
	return nil
}

func (r *fakeAmbassadorRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ambassador, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.ambassadors {
		ok := true
		for _, sp := range specs {
			if !ambassadorMatches(a, sp) {
				ok = false
				break
			}
		}
		if ok {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAmbassadorRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ambassador, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var res []*entity.Ambassador
	for _, a := range r.store.ambassadors {
		ok := true
		for _, sp := range specs {
			if !ambassadorMatches(a, sp) {
				ok = false
				break
			}
		}
		if ok {
			cp := *a
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (r *fakeAmbassadorRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeAmbassadorRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.ambassadors {
		if strings.EqualFold(a.Code, code) {
			return true, nil
		}
	}
	for _, l := range r.store.links {
		if strings.EqualFold(l.Code, code) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAmbassadorRepo) AssignCodeIfMissing(ctx context.Context, id uuid.UUID, code string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.ambassadors[id]
	if !ok || a.Code != "" {
		return false, nil
	}
	a.Code = code
	return true, nil
}

func (r *fakeAmbassadorRepo) IncrementTotalReferrals(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if a, ok := r.store.ambassadors[id]; ok {
		a.TotalReferrals++
	}
	return nil
}

func (r *fakeAmbassadorRepo) AccrueEarnings(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if a, ok := r.store.ambassadors[id]; ok {
		a.TotalEarnings = a.TotalEarnings.Add(amount)
		a.PendingEarnings = a.PendingEarnings.Add(amount)
	}
	return nil
}

func (r *fakeAmbassadorRepo) SettleEarnings(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if a, ok := r.store.ambassadors[id]; ok {
		a.PendingEarnings = a.PendingEarnings.Sub(amount)
		a.PaidEarnings = a.PaidEarnings.Add(amount)
	}
	return nil
}

func (r *fakeAmbassadorRepo) UpdateTier(ctx context.Context, id uuid.UUID, tierName string, discountPercentage decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if a, ok := r.store.ambassadors[id]; ok {
		a.TierName = tierName
		a.DiscountPercentage = discountPercentage
	}
	return nil
}

func linkMatches(l *entity.AmbassadorLink, sp specification.Specification) bool {
	switch s := sp.(type) {
	case specification.ByID:
		return l.Id == s.ID
	case specification.ByCode:
		return strings.EqualFold(l.Code, s.Code)
	case specification.ByAmbassador:
		return l.AmbassadorId == s.AmbassadorID
	case specification.ActiveOnly:
		return l.IsActive
	default:
		return true
	}
}

func (r *fakeAmbassadorRepo) CreateLink(ctx context.Context, link *entity.AmbassadorLink) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *link
	r.store.links[link.Id] = &cp
	return nil
}

func (r *fakeAmbassadorRepo) FindOneLink(ctx context.Context, specs ...specification.Specification) (*entity.AmbassadorLink, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, l := range r.store.links {
		ok := true
		for _, sp := range specs {
			if !linkMatches(l, sp) {
				ok = false
				break
			}
		}
		if ok {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAmbassadorRepo) FindAllLinks(ctx context.Context, specs ...specification.Specification) ([]*entity.AmbassadorLink, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var res []*entity.AmbassadorLink
	for _, l := range r.store.links {
		ok := true
		for _, sp := range specs {
			if !linkMatches(l, sp) {
				ok = false
				break
			}
		}
		if ok {
			cp := *l
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (r *fakeAmbassadorRepo) IncrementLinkSignups(ctx context.Context, linkId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if l, ok := r.store.links[linkId]; ok {
		l.SignupCount++
	}
	return nil
}

func (r *fakeAmbassadorRepo) IncrementLinkConversions(ctx context.Context, linkId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if l, ok := r.store.links[linkId]; ok {
		l.ConversionCount++
	}
	return nil
}

// --- Referral ---

type fakeReferralRepo struct {
	store *fakeStore
}

func referralMatches(ref *entity.AmbassadorReferral, sp specification.Specification) bool {
	switch s := sp.(type) {
	case specification.ByID:
		return ref.Id == s.ID
	case specification.ByAmbassador:
		return ref.AmbassadorId == s.AmbassadorID
	case specification.ByReferredUser:
		return ref.ReferredUserId == s.UserID
	case specification.ByStatus:
		return string(ref.Status) == s.Status
	default:
		return true
	}
}

func (r *fakeReferralRepo) Create(ctx context.Context, referral *entity.AmbassadorReferral) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	// Mirrors the unique index on referred_user_id.
	for _, existing := range r.store.referrals {
		if existing.ReferredUserId == referral.ReferredUserId {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *referral
	r.store.referrals[referral.Id] = &cp
	return nil
}

func (r *fakeReferralRepo) Update(ctx context.Context, referral *entity.AmbassadorReferral) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *referral
	r.store.referrals[referral.Id] = &cp
	return nil
}

func (r *fakeReferralRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AmbassadorReferral, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, ref := range r.store.referrals {
		ok := true
		for _, sp := range specs {
			if !referralMatches(ref, sp) {
				ok = false
				break
			}
		}
		if ok {
			cp := *ref
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeReferralRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AmbassadorReferral, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var res []*entity.AmbassadorReferral
	for _, ref := range r.store.referrals {
		ok := true
		for _, sp := range specs {
			if !referralMatches(ref, sp) {
				ok = false
				break
			}
		}
		if ok {
			cp := *ref
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (r *fakeReferralRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeReferralRepo) MarkFirstSubscription(ctx context.Context, id uuid.UUID, subscriptionId uuid.UUID, at time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ref, ok := r.store.referrals[id]
	if !ok || ref.FirstSubscriptionAt != nil {
		return false, nil
	}
	ref.SubscriptionId = &subscriptionId
	ref.FirstSubscriptionAt = &at
	ref.Status = entity.ReferralStatusActive
	return true, nil
}

func (r *fakeReferralRepo) CountConverted(ctx context.Context, ambassadorId uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, ref := range r.store.referrals {
		if ref.AmbassadorId == ambassadorId && ref.SubscriptionId != nil {
			n++
		}
	}
	return n, nil
}

func (r *fakeReferralRepo) CountActiveSubscribers(ctx context.Context, ambassadorId uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, ref := range r.store.referrals {
		if ref.AmbassadorId == ambassadorId && ref.Status == entity.ReferralStatusActive && ref.SubscriptionId != nil {
			n++
		}
	}
	return n, nil
}

func (r *fakeReferralRepo) AccrueCommission(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if ref, ok := r.store.referrals[id]; ok {
		ref.CommissionMonthsRemaining--
		ref.TotalCommissionEarned = ref.TotalCommissionEarned.Add(amount)
	}
	return nil
}

// --- Commission ---

type fakeCommissionRepo struct {
	store *fakeStore
}

func commissionMatches(c *entity.AmbassadorCommission, sp specification.Specification) bool {
	switch s := sp.(type) {
	case specification.ByID:
		return c.Id == s.ID
	case specification.ByAmbassador:
		return c.AmbassadorId == s.AmbassadorID
	case specification.ByStatus:
		return string(c.Status) == s.Status
	case specification.ByPayoutPeriod:
		return c.PayoutPeriodId != nil && *c.PayoutPeriodId == s.PayoutID
	case specification.CreatedWithin:
		return !c.CreatedAt.Before(s.From) && c.CreatedAt.Before(s.To)
	default:
		return true
	}
}

func (r *fakeCommissionRepo) Create(ctx context.Context, c *entity.AmbassadorCommission) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	// Mirrors the unique index on payment_order_id.
	for _, existing := range r.store.commissions {
		if existing.PaymentOrderId == c.PaymentOrderId {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *c
	r.store.commissions[c.Id] = &cp
	return nil
}

func (r *fakeCommissionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AmbassadorCommission, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.commissions {
		ok := true
		for _, sp := range specs {
			if !commissionMatches(c, sp) {
				ok = false
				break
			}
		}
		if ok {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCommissionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AmbassadorCommission, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var res []*entity.AmbassadorCommission
	for _, c := range r.store.commissions {
		ok := true
		for _, sp := range specs {
			if !commissionMatches(c, sp) {
				ok = false
				break
			}
		}
		if ok {
			cp := *c
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (r *fakeCommissionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeCommissionRepo) ClaimForPayout(ctx context.Context, payoutId uuid.UUID, ambassadorId uuid.UUID, from, to time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, c := range r.store.commissions {
		if c.AmbassadorId != ambassadorId || c.Status != entity.CommissionStatusPending || c.PayoutPeriodId != nil {
			continue
		}
		if c.CreatedAt.Before(from) || !c.CreatedAt.Before(to) {
			continue
		}
		id := payoutId
		c.PayoutPeriodId = &id
		n++
	}
	return n, nil
}

func (r *fakeCommissionRepo) SumByPayout(ctx context.Context, payoutId uuid.UUID) (decimal.Decimal, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	total := decimal.Zero
	var count int64
	for _, c := range r.store.commissions {
		if c.PayoutPeriodId != nil && *c.PayoutPeriodId == payoutId {
			total = total.Add(c.CommissionAmount)
			count++
		}
	}
	return total, count, nil
}

func (r *fakeCommissionRepo) ReleaseFromPayout(ctx context.Context, payoutId uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, c := range r.store.commissions {
		if c.PayoutPeriodId != nil && *c.PayoutPeriodId == payoutId && c.Status == entity.CommissionStatusPending {
			c.PayoutPeriodId = nil
			n++
		}
	}
	return n, nil
}

func (r *fakeCommissionRepo) MarkPaidByPayout(ctx context.Context, payoutId uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, c := range r.store.commissions {
		if c.PayoutPeriodId != nil && *c.PayoutPeriodId == payoutId {
			c.Status = entity.CommissionStatusPaid
			n++
		}
	}
	return n, nil
}

func (r *fakeCommissionRepo) SumPendingByAmbassador(ctx context.Context, ambassadorId uuid.UUID) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	total := decimal.Zero
	for _, c := range r.store.commissions {
		if c.AmbassadorId == ambassadorId && c.Status == entity.CommissionStatusPending {
			total = total.Add(c.CommissionAmount)
		}
	}
	return total, nil
}

// --- Payout ---

type fakePayoutRepo struct {
	store *fakeStore
}

func payoutMatches(p *entity.AmbassadorPayout, sp specification.Specification) bool {
	switch s := sp.(type) {
	case specification.ByID:
		return p.Id == s.ID
	case specification.ByAmbassador:
		return p.AmbassadorId == s.AmbassadorID
	case specification.ByStatus:
		return string(p.Status) == s.Status
	default:
		return true
	}
}

func (r *fakePayoutRepo) Create(ctx context.Context, p *entity.AmbassadorPayout) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *p
	r.store.payouts[p.Id] = &cp
	return nil
}

func (r *fakePayoutRepo) Update(ctx context.Context, p *entity.AmbassadorPayout) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *p
	r.store.payouts[p.Id] = &cp
	return nil
}

func (r *fakePayoutRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AmbassadorPayout, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.payouts {
		ok := true
		for _, sp := range specs {
			if !payoutMatches(p, sp) {
				ok = false
				break
			}
		}
		if ok {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePayoutRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AmbassadorPayout, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var res []*entity.AmbassadorPayout
	for _, p := range r.store.payouts {
		ok := true
		for _, sp := range specs {
			if !payoutMatches(p, sp) {
				ok = false
				break
			}
		}
		if ok {
			cp := *p
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (r *fakePayoutRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- User ---

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *user
	r.store.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		ok := true
		for _, sp := range specs {
			if byId, isById := sp.(specification.ByID); isById && u.Id != byId.ID {
				ok = false
				break
			}
		}
		if ok {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.users)), nil
}

// --- Volume tier ---

type fakeVolumeTierRepo struct {
	store *fakeStore
}

func (r *fakeVolumeTierRepo) Create(ctx context.Context, tier *entity.VolumeTier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *tier
	r.store.tiers[tier.Id] = &cp
	return nil
}

func (r *fakeVolumeTierRepo) Update(ctx context.Context, tier *entity.VolumeTier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *tier
	r.store.tiers[tier.Id] = &cp
	return nil
}

func (r *fakeVolumeTierRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VolumeTier, error) {
	return nil, nil
}

func (r *fakeVolumeTierRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VolumeTier, error) {
	return nil, nil
}

// --- Collaborator stubs ---

type fakeDiscountCache struct {
	mu      sync.Mutex
	entries map[string]*store.DiscountQuote
}

func newFakeDiscountCache() *fakeDiscountCache {
	return &fakeDiscountCache{entries: make(map[string]*store.DiscountQuote)}
}

func (c *fakeDiscountCache) Get(ctx context.Context, code string) (*store.DiscountQuote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[code], nil
}

func (c *fakeDiscountCache) Set(ctx context.Context, code string, quote *store.DiscountQuote) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[code] = quote
	return nil
}

func (c *fakeDiscountCache) Invalidate(ctx context.Context, code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, code)
	return nil
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

type stubMailer struct{}

func (stubMailer) SendApprovalNotice(toEmail, code string) error             { return nil }
func (stubMailer) SendRejectionNotice(toEmail, reason string) error          { return nil }
func (stubMailer) SendPayoutReceipt(toEmail, amount, reference string) error { return nil }
