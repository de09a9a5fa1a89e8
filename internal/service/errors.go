package service

import "errors"

// Sentinel errors of the ambassador domain. Controllers map these to HTTP
// status codes with errors.Is.
var (
	ErrDuplicateApplication    = errors.New("ambassador application already exists")
	ErrAmbassadorNotFound      = errors.New("ambassador not found")
	ErrInvalidStatusTransition = errors.New("invalid ambassador status transition")
	ErrInvalidCode             = errors.New("referral code not found")
	ErrAmbassadorNotActive     = errors.New("ambassador is not active")
	ErrSelfReferral            = errors.New("cannot use your own referral code")
	ErrAlreadyReferred         = errors.New("user was already referred")
	ErrLinkCodeTaken           = errors.New("campaign link code already exists")
	ErrNoPendingCommissions    = errors.New("no pending commissions in the period")
	ErrPayoutNotFound          = errors.New("payout not found")
	ErrInvalidPayoutState      = errors.New("payout is already settled")
	ErrTierNotFound            = errors.New("volume tier not found")
)
