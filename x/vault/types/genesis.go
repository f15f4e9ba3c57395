package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// GenesisState is the full vault module state. A zero-value VaultInfo means
// the vault starts uninitialized and expects an explicit Initialize call.
type GenesisState struct {
	VaultInfo      *VaultInfo  `json:"vault_info,omitempty"`
	Params         Params      `json:"params"`
	Positions      []Position  `json:"positions"`
	TotalDeposited sdkmath.Int `json:"total_deposited"`
	DepositCount   uint64      `json:"deposit_count"`
}

// DefaultGenesis returns the default genesis state: uninitialized vault with
// default deposit bounds and an empty ledger.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:         DefaultParams(),
		Positions:      []Position{},
		TotalDeposited: sdkmath.ZeroInt(),
	}
}

// Validate performs genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	if gs.VaultInfo != nil {
		if err := gs.VaultInfo.Validate(); err != nil {
			return fmt.Errorf("invalid vault info: %w", err)
		}
	} else {
		// Params only take effect once the vault is initialized; a custom
		// pair without vault info would be silently lost.
		def := DefaultParams()
		if !gs.Params.MinDeposit.Equal(def.MinDeposit) || !gs.Params.MaxDeposit.Equal(def.MaxDeposit) {
			return fmt.Errorf("custom deposit limits require vault info")
		}
	}

	if gs.TotalDeposited.IsNil() || gs.TotalDeposited.IsNegative() {
		return fmt.Errorf("total deposited must be non-negative")
	}

	seen := make(map[string]struct{}, len(gs.Positions))
	sum := sdkmath.ZeroInt()
	var count uint64
	for i, pos := range gs.Positions {
		if err := pos.Validate(); err != nil {
			return fmt.Errorf("invalid position at index %d: %w", i, err)
		}
		if _, dup := seen[pos.Depositor]; dup {
			return fmt.Errorf("duplicate position for depositor %s", pos.Depositor)
		}
		seen[pos.Depositor] = struct{}{}
		sum = sum.Add(pos.Amount)
		count += pos.DepositCount
	}

	if !sum.Equal(gs.TotalDeposited) {
		return fmt.Errorf("total deposited %s does not match position sum %s", gs.TotalDeposited, sum)
	}
	if count != gs.DepositCount {
		return fmt.Errorf("deposit count %d does not match position counts %d", gs.DepositCount, count)
	}

	return nil
}
