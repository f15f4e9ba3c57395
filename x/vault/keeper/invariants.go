package keeper

import (
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Neurowealth/NeuroWealth-Smartcontract/x/vault/types"
)

// RegisterInvariants registers all module invariants with the invariant registry.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "deposit-bounds", DepositBoundsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "ledger-consistency", LedgerConsistencyInvariant(k))
}

// AllInvariants runs all invariants of the vault module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		invariants := []sdk.Invariant{
			DepositBoundsInvariant(k),
			LedgerConsistencyInvariant(k),
		}
		for _, inv := range invariants {
			if msg, broken := inv(ctx); broken {
				return msg, broken
			}
		}
		return "", false
	}
}

// DepositBoundsInvariant checks that the stored bounds always satisfy the
// minimum floor and the min <= max ordering. An uninitialized vault holds no
// bounds and passes vacuously.
func DepositBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		initialized, err := k.Params.Has(ctx)
		if err != nil {
			return fmt.Sprintf("INVARIANT BROKEN: cannot read params: %v\n", err), true
		}
		if !initialized {
			return "", false
		}

		params, err := k.GetParams(ctx)
		if err != nil {
			return fmt.Sprintf("INVARIANT BROKEN: cannot decode params: %v\n", err), true
		}
		if err := params.Validate(); err != nil {
			return fmt.Sprintf("INVARIANT BROKEN: stored bounds invalid: %v\n", err), true
		}
		return "", false
	}
}

// LedgerConsistencyInvariant checks that the running deposit total and the
// accepted deposit count match the positions ledger.
func LedgerConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		broken := false

		sum := sdkmath.ZeroInt()
		var count uint64
		err := k.Positions.Walk(ctx, nil, func(depositor string, raw string) (bool, error) {
			var pos types.Position
			if err := json.Unmarshal([]byte(raw), &pos); err != nil {
				msg += fmt.Sprintf("INVARIANT BROKEN: cannot decode position %s: %v\n", depositor, err)
				broken = true
				return false, nil
			}
			if err := pos.Validate(); err != nil {
				msg += fmt.Sprintf("INVARIANT BROKEN: position %s invalid: %v\n", depositor, err)
				broken = true
				return false, nil
			}
			sum = sum.Add(pos.Amount)
			count += pos.DepositCount
			return false, nil
		})
		if err != nil {
			return fmt.Sprintf("INVARIANT BROKEN: cannot walk positions: %v\n", err), true
		}

		total, err := k.GetTotalDeposited(ctx)
		if err != nil {
			return fmt.Sprintf("INVARIANT BROKEN: cannot read total deposited: %v\n", err), true
		}
		if !total.Equal(sum) {
			msg += fmt.Sprintf("INVARIANT BROKEN: total deposited %s != position sum %s\n", total, sum)
			broken = true
		}

		stored, err := k.GetDepositCount(ctx)
		if err != nil {
			return fmt.Sprintf("INVARIANT BROKEN: cannot read deposit count: %v\n", err), true
		}
		if stored != count {
			msg += fmt.Sprintf("INVARIANT BROKEN: deposit count %d != position counts %d\n", stored, count)
			broken = true
		}

		return msg, broken
	}
}
