package types

import "errors"

// Sentinel errors for the vault module. Handlers wrap these with the
// human-readable reason string; callers branch with errors.Is.
var (
	// ErrNotInitialized is returned when an operation runs against a vault
	// that has never been initialized.
	ErrNotInitialized = errors.New("vault not initialized")

	// ErrAlreadyInitialized is returned when Initialize is called a second time.
	ErrAlreadyInitialized = errors.New("vault already initialized")

	// ErrUnauthorized is returned when a caller other than the administrator
	// attempts to change the deposit limits.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidLimit is returned when a proposed limit pair violates the
	// minimum floor or the min <= max ordering.
	ErrInvalidLimit = errors.New("invalid deposit limit")

	// ErrDepositLimit is returned when a deposit amount falls outside the
	// currently configured bounds.
	ErrDepositLimit = errors.New("deposit limit violation")
)

// Reason strings surfaced verbatim to callers. These are part of the module's
// observable contract and must not be reworded.
const (
	ReasonMinTooLow    = "Minimum deposit must be at least 1 USDC"
	ReasonMaxBelowMin  = "Maximum deposit must be greater than or equal to minimum"
	ReasonBelowMinimum = "Below minimum deposit"
	ReasonAboveMaximum = "Exceeds maximum deposit"
)
