package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Neurowealth/NeuroWealth-Smartcontract/x/vault/types"
)

// InitGenesis initializes the vault module state from a genesis state. When
// the genesis carries no VaultInfo the vault starts uninitialized and waits
// for an explicit Initialize call; Validate guarantees the params are the
// defaults in that case, so nothing is lost by not writing them.
func (k Keeper) InitGenesis(ctx context.Context, gs *types.GenesisState) error {
	if gs == nil {
		return fmt.Errorf("genesis state cannot be nil")
	}
	if err := gs.Validate(); err != nil {
		return err
	}

	if gs.VaultInfo != nil {
		if err := k.setVaultInfo(ctx, *gs.VaultInfo); err != nil {
			return err
		}
		if err := k.SetParams(ctx, gs.Params); err != nil {
			return err
		}
	}

	for _, pos := range gs.Positions {
		if err := k.setPosition(ctx, pos); err != nil {
			return err
		}
	}

	if err := k.TotalDeposited.Set(ctx, gs.TotalDeposited.String()); err != nil {
		return err
	}
	return k.DepositCount.Set(ctx, gs.DepositCount)
}

// ExportGenesis exports the vault module state. Positions are ordered by
// depositor address for determinism.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()

	if initialized, err := k.VaultInfo.Has(ctx); err != nil {
		return nil, err
	} else if initialized {
		info, err := k.GetVaultInfo(ctx)
		if err != nil {
			return nil, err
		}
		gs.VaultInfo = &info

		params, err := k.GetParams(ctx)
		if err != nil {
			return nil, err
		}
		gs.Params = params
	}

	err := k.Positions.Walk(ctx, nil, func(_ string, raw string) (bool, error) {
		var pos types.Position
		if err := json.Unmarshal([]byte(raw), &pos); err != nil {
			return false, fmt.Errorf("decode position: %w", err)
		}
		gs.Positions = append(gs.Positions, pos)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(gs.Positions, func(i, j int) bool {
		return gs.Positions[i].Depositor < gs.Positions[j].Depositor
	})

	total, err := k.GetTotalDeposited(ctx)
	if err != nil {
		return nil, err
	}
	gs.TotalDeposited = total

	count, err := k.GetDepositCount(ctx)
	if err != nil {
		return nil, err
	}
	gs.DepositCount = count

	return gs, nil
}
