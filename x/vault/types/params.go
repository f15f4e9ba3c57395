package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

const (
	// MinDepositFloor is the smallest permitted minimum deposit: 1 USDC
	// expressed in the base denom (1 USDC = 1,000,000 uusdc).
	MinDepositFloor = 1_000_000

	// DefaultMinDeposit is the minimum deposit applied at initialization (1 USDC).
	DefaultMinDeposit = MinDepositFloor

	// DefaultMaxDeposit is the maximum deposit applied at initialization (10K USDC).
	DefaultMaxDeposit = 10_000_000_000
)

// Params holds the configurable deposit bounds. Both values are amounts in
// the vault's base denom. All arithmetic uses sdkmath.Int -- no floating
// point is ever used.
type Params struct {
	MinDeposit sdkmath.Int `json:"min_deposit"`
	MaxDeposit sdkmath.Int `json:"max_deposit"`
}

// DefaultParams returns the deposit bounds applied at vault initialization.
func DefaultParams() Params {
	return Params{
		MinDeposit: sdkmath.NewInt(DefaultMinDeposit),
		MaxDeposit: sdkmath.NewInt(DefaultMaxDeposit),
	}
}

// Validate checks the bounds invariants. The min floor is checked before the
// ordering constraint; the first violated constraint is reported.
func (p Params) Validate() error {
	if p.MinDeposit.IsNil() || p.MaxDeposit.IsNil() {
		return fmt.Errorf("%w: deposit limits cannot be nil", ErrInvalidLimit)
	}
	if p.MinDeposit.LT(sdkmath.NewInt(MinDepositFloor)) {
		return fmt.Errorf("%w: %s", ErrInvalidLimit, ReasonMinTooLow)
	}
	if p.MaxDeposit.LT(p.MinDeposit) {
		return fmt.Errorf("%w: %s", ErrInvalidLimit, ReasonMaxBelowMin)
	}
	return nil
}
