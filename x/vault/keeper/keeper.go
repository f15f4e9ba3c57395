package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Neurowealth/NeuroWealth-Smartcontract/x/vault/types"
)

// BankKeeper defines the expected bank keeper interface. The vault delegates
// every value transfer to it and never moves balances itself.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// Keeper manages the vault module state: the deposit bounds, the
// administrator identity, and the positions ledger.
type Keeper struct {
	cdc          codec.Codec
	storeService store.KVStoreService
	authority    string
	logger       log.Logger

	bankKeeper BankKeeper

	metrics     *VaultMetrics
	auditLogger *AuditLogger

	Params         collections.Item[string]
	VaultInfo      collections.Item[string]
	Positions      collections.Map[string, string]
	TotalDeposited collections.Item[string]
	DepositCount   collections.Item[uint64]
}

// NewKeeper creates a new vault keeper.
func NewKeeper(
	cdc codec.Codec,
	storeService store.KVStoreService,
	bankKeeper BankKeeper,
	authority string,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	return Keeper{
		cdc:          cdc,
		storeService: storeService,
		authority:    authority,
		logger:       log.NewNopLogger(),
		bankKeeper:   bankKeeper,
		metrics:      NewVaultMetrics(),
		auditLogger:  NewAuditLogger(1000),
		Params: collections.NewItem(
			sb,
			collections.NewPrefix(types.ParamsKey),
			"params",
			collections.StringValue,
		),
		VaultInfo: collections.NewItem(
			sb,
			collections.NewPrefix(types.VaultInfoKey),
			"vault_info",
			collections.StringValue,
		),
		Positions: collections.NewMap(
			sb,
			collections.NewPrefix(types.PositionKeyPrefix),
			"positions",
			collections.StringKey,
			collections.StringValue,
		),
		TotalDeposited: collections.NewItem(
			sb,
			collections.NewPrefix(types.TotalDepositedKey),
			"total_deposited",
			collections.StringValue,
		),
		DepositCount: collections.NewItem(
			sb,
			collections.NewPrefix(types.DepositCountKey),
			"deposit_count",
			collections.Uint64Value,
		),
	}
}

// NewKeeperWithLogger creates a new vault keeper with an explicit logger.
func NewKeeperWithLogger(
	logger log.Logger,
	cdc codec.Codec,
	storeService store.KVStoreService,
	bankKeeper BankKeeper,
	authority string,
) Keeper {
	k := NewKeeper(cdc, storeService, bankKeeper, authority)
	k.logger = logger
	return k
}

// GetAuthority returns the module's governance authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Metrics returns the keeper's in-process telemetry.
func (k Keeper) Metrics() *VaultMetrics {
	return k.metrics
}

// AuditTrail returns the keeper's in-memory audit trail.
func (k Keeper) AuditTrail() *AuditLogger {
	return k.auditLogger
}

// Initialize persists the administrator identity, the accepted token denom,
// and the default deposit bounds. A second call fails and leaves the vault
// untouched.
func (k Keeper) Initialize(ctx context.Context, admin, denom string) error {
	info := types.VaultInfo{Admin: admin, Denom: denom}
	if err := info.Validate(); err != nil {
		return err
	}

	if initialized, err := k.VaultInfo.Has(ctx); err != nil {
		return err
	} else if initialized {
		return types.ErrAlreadyInitialized
	}

	if err := k.setVaultInfo(ctx, info); err != nil {
		return err
	}
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		return err
	}
	if err := k.TotalDeposited.Set(ctx, sdkmath.ZeroInt().String()); err != nil {
		return err
	}
	if err := k.DepositCount.Set(ctx, 0); err != nil {
		return err
	}

	if sdkCtx, ok := unwrapSDKContext(ctx); ok {
		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			"vault_initialized",
			sdk.NewAttribute("admin", info.Admin),
			sdk.NewAttribute("denom", info.Denom),
		))
	}

	return nil
}

// GetVaultInfo loads the administrator and denom persisted at initialization.
func (k Keeper) GetVaultInfo(ctx context.Context) (types.VaultInfo, error) {
	raw, err := k.VaultInfo.Get(ctx)
	if err != nil {
		return types.VaultInfo{}, types.ErrNotInitialized
	}
	var info types.VaultInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return types.VaultInfo{}, fmt.Errorf("decode vault info: %w", err)
	}
	return info, nil
}

// GetParams loads the current deposit bounds.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	raw, err := k.Params.Get(ctx)
	if err != nil {
		return types.Params{}, types.ErrNotInitialized
	}
	var params types.Params
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return types.Params{}, fmt.Errorf("decode params: %w", err)
	}
	return params, nil
}

// SetParams validates and persists the deposit bounds. Both values are
// replaced in a single record write.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return err
	}
	return k.Params.Set(ctx, string(raw))
}

// GetMinDeposit returns the current minimum deposit. Pure read.
func (k Keeper) GetMinDeposit(ctx context.Context) (sdkmath.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return params.MinDeposit, nil
}

// GetMaxDeposit returns the current maximum deposit. Pure read.
func (k Keeper) GetMaxDeposit(ctx context.Context) (sdkmath.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return params.MaxDeposit, nil
}

// GetPosition loads a depositor's position. The bool reports existence.
func (k Keeper) GetPosition(ctx context.Context, depositor string) (types.Position, bool, error) {
	raw, err := k.Positions.Get(ctx, depositor)
	if err != nil {
		return types.Position{}, false, nil
	}
	var pos types.Position
	if err := json.Unmarshal([]byte(raw), &pos); err != nil {
		return types.Position{}, false, fmt.Errorf("decode position: %w", err)
	}
	return pos, true, nil
}

// GetTotalDeposited returns the running total of accepted deposits.
func (k Keeper) GetTotalDeposited(ctx context.Context) (sdkmath.Int, error) {
	raw, err := k.TotalDeposited.Get(ctx)
	if err != nil {
		return sdkmath.ZeroInt(), nil
	}
	total, ok := sdkmath.NewIntFromString(raw)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("decode total deposited: invalid integer %q", raw)
	}
	return total, nil
}

// GetDepositCount returns the number of accepted deposits.
func (k Keeper) GetDepositCount(ctx context.Context) (uint64, error) {
	count, err := k.DepositCount.Get(ctx)
	if err != nil {
		return 0, nil
	}
	return count, nil
}

func (k Keeper) setVaultInfo(ctx context.Context, info types.VaultInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return k.VaultInfo.Set(ctx, string(raw))
}

func (k Keeper) setPosition(ctx context.Context, pos types.Position) error {
	raw, err := json.Marshal(pos)
	if err != nil {
		return err
	}
	return k.Positions.Set(ctx, pos.Depositor, string(raw))
}

func unwrapSDKContext(ctx context.Context) (sdk.Context, bool) {
	if ctx == nil {
		return sdk.Context{}, false
	}
	if sdkCtx, ok := ctx.(sdk.Context); ok {
		return sdkCtx, true
	}
	if val := ctx.Value(sdk.SdkContextKey); val != nil {
		if sdkCtx, ok := val.(sdk.Context); ok {
			return sdkCtx, true
		}
	}
	return sdk.Context{}, false
}
