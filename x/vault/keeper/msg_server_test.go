package keeper_test

import (
	"errors"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/Neurowealth/NeuroWealth-Smartcontract/x/vault/types"
)

func TestSetDepositLimitsSuccess(t *testing.T) {
	k, _, ctx, admin := setupInitializedVault(t)

	newMin := sdkmath.NewInt(2_000_000)
	newMax := sdkmath.NewInt(20_000_000_000)
	err := k.MsgSetDepositLimits(ctx, types.NewMsgSetDepositLimits(admin, newMin, newMax))
	require.NoError(t, err)

	minDeposit, err := k.GetMinDeposit(ctx)
	require.NoError(t, err)
	require.Equal(t, newMin, minDeposit)

	maxDeposit, err := k.GetMaxDeposit(ctx)
	require.NoError(t, err)
	require.Equal(t, newMax, maxDeposit)
}

func TestSetDepositLimitsMinTooLow(t *testing.T) {
	k, _, ctx, admin := setupInitializedVault(t)

	err := k.MsgSetDepositLimits(ctx, types.NewMsgSetDepositLimits(
		admin, sdkmath.NewInt(999_999), sdkmath.NewInt(10_000_000_000)))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidLimit)
	require.Contains(t, err.Error(), "Minimum deposit must be at least 1 USDC")

	// Bounds unchanged.
	minDeposit, err := k.GetMinDeposit(ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(1_000_000), minDeposit)
}

func TestSetDepositLimitsMaxBelowMin(t *testing.T) {
	k, _, ctx, admin := setupInitializedVault(t)

	err := k.MsgSetDepositLimits(ctx, types.NewMsgSetDepositLimits(
		admin, sdkmath.NewInt(5_000_000), sdkmath.NewInt(4_000_000)))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidLimit)
	require.Contains(t, err.Error(), "Maximum deposit must be greater than or equal to minimum")

	// Bounds unchanged.
	minDeposit, err := k.GetMinDeposit(ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(1_000_000), minDeposit)
	maxDeposit, err := k.GetMaxDeposit(ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(10_000_000_000), maxDeposit)
}

func TestSetDepositLimitsEqualMinMax(t *testing.T) {
	k, _, ctx, admin := setupInitializedVault(t)

	limit := sdkmath.NewInt(5_000_000)
	err := k.MsgSetDepositLimits(ctx, types.NewMsgSetDepositLimits(admin, limit, limit))
	require.NoError(t, err)

	minDeposit, err := k.GetMinDeposit(ctx)
	require.NoError(t, err)
	require.Equal(t, limit, minDeposit)
	maxDeposit, err := k.GetMaxDeposit(ctx)
	require.NoError(t, err)
	require.Equal(t, limit, maxDeposit)
}

func TestSetDepositLimitsUnauthorized(t *testing.T) {
	k, _, ctx, _ := setupInitializedVault(t)

	err := k.MsgSetDepositLimits(ctx, types.NewMsgSetDepositLimits(
		testAddr(0x33), sdkmath.NewInt(2_000_000), sdkmath.NewInt(20_000_000_000)))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// Bounds unchanged.
	minDeposit, err := k.GetMinDeposit(ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(1_000_000), minDeposit)

	require.Equal(t, int64(1), k.Metrics().UnauthorizedLimitChanges.Get())
}

func TestSetDepositLimitsEmitsEvent(t *testing.T) {
	k, _, ctx, admin := setupInitializedVault(t)

	err := k.MsgSetDepositLimits(ctx, types.NewMsgSetDepositLimits(
		admin, sdkmath.NewInt(3_000_000), sdkmath.NewInt(15_000_000_000)))
	require.NoError(t, err)

	var found bool
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == "vault_limits_updated" {
			found = true
			attrs := make(map[string]string, len(ev.Attributes))
			for _, attr := range ev.Attributes {
				attrs[attr.Key] = attr.Value
			}
			require.Equal(t, "3000000", attrs["min_deposit"])
			require.Equal(t, "15000000000", attrs["max_deposit"])
			require.Equal(t, "1000000", attrs["old_min_deposit"])
			require.Equal(t, admin, attrs["authority"])
		}
	}
	require.True(t, found)
}

func TestDepositWithinBounds(t *testing.T) {
	k, bank, ctx, _ := setupInitializedVault(t)
	user := testAddr(0x42)
	bank.fund(user, 100_000_000)

	err := k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(5_000_000)))
	require.NoError(t, err)

	// Funds moved from the depositor into the module account.
	require.Equal(t, sdkmath.NewInt(95_000_000), bank.Balances[user].AmountOf(testDenom))
	require.Equal(t, sdkmath.NewInt(5_000_000), bank.ModuleBalances[types.ModuleName].AmountOf(testDenom))

	// Position recorded.
	pos, found, err := k.GetPosition(ctx, user)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, sdkmath.NewInt(5_000_000), pos.Amount)
	require.Equal(t, uint64(1), pos.DepositCount)

	total, err := k.GetTotalDeposited(ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(5_000_000), total)

	count, err := k.GetDepositCount(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), count)
}

func TestDepositAtBoundariesInclusive(t *testing.T) {
	k, bank, ctx, admin := setupInitializedVault(t)
	user := testAddr(0x42)
	bank.fund(user, 100_000_000_000)

	require.NoError(t, k.MsgSetDepositLimits(ctx, types.NewMsgSetDepositLimits(
		admin, sdkmath.NewInt(5_000_000), sdkmath.NewInt(20_000_000_000))))

	// Exactly at minimum succeeds.
	require.NoError(t, k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(5_000_000))))

	// Exactly at maximum succeeds.
	require.NoError(t, k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(20_000_000_000))))
}

func TestDepositOneUnitBelowMinimum(t *testing.T) {
	k, bank, ctx, _ := setupInitializedVault(t)
	user := testAddr(0x42)
	bank.fund(user, 100_000_000)

	// Default minimum of 1 USDC.
	err := k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(999_999)))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrDepositLimit)
	require.Contains(t, err.Error(), "Below minimum deposit")

	// No transfer happened.
	require.Equal(t, sdkmath.NewInt(100_000_000), bank.Balances[user].AmountOf(testDenom))
	require.True(t, bank.ModuleBalances[types.ModuleName].IsZero())
}

func TestDepositOneUnitAboveMaximum(t *testing.T) {
	k, bank, ctx, admin := setupInitializedVault(t)
	user := testAddr(0x42)
	bank.fund(user, 100_000_000)

	require.NoError(t, k.MsgSetDepositLimits(ctx, types.NewMsgSetDepositLimits(
		admin, sdkmath.NewInt(1_000_000), sdkmath.NewInt(10_000_000))))

	err := k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(10_000_001)))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrDepositLimit)
	require.Contains(t, err.Error(), "Exceeds maximum deposit")

	require.Equal(t, sdkmath.NewInt(100_000_000), bank.Balances[user].AmountOf(testDenom))
}

func TestDepositAccumulatesPosition(t *testing.T) {
	k, bank, ctx, _ := setupInitializedVault(t)
	user := testAddr(0x42)
	bank.fund(user, 100_000_000)

	require.NoError(t, k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(2_000_000))))
	require.NoError(t, k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(3_000_000))))

	pos, found, err := k.GetPosition(ctx, user)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, sdkmath.NewInt(5_000_000), pos.Amount)
	require.Equal(t, uint64(2), pos.DepositCount)

	total, err := k.GetTotalDeposited(ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(5_000_000), total)
}

func TestDepositBankErrorPropagates(t *testing.T) {
	k, bank, ctx, _ := setupInitializedVault(t)
	user := testAddr(0x42)
	bank.fund(user, 100_000_000)
	bank.SendErr = errors.New("token contract halted")

	err := k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(5_000_000)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "token contract halted")

	// Ledger untouched when the transfer fails.
	_, found, err := k.GetPosition(ctx, user)
	require.NoError(t, err)
	require.False(t, found)

	total, err := k.GetTotalDeposited(ctx)
	require.NoError(t, err)
	require.True(t, total.IsZero())
}

func TestDepositInsufficientBalanceFails(t *testing.T) {
	k, bank, ctx, _ := setupInitializedVault(t)
	user := testAddr(0x42)
	bank.fund(user, 1_500_000)

	err := k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(2_000_000)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "smaller than")
}

func TestDepositRejectsInvalidAddress(t *testing.T) {
	k, _, ctx, _ := setupInitializedVault(t)

	err := k.MsgDeposit(ctx, types.NewMsgDeposit("not-a-bech32-address", sdkmath.NewInt(5_000_000)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid depositor address")
}

func TestDepositUninitializedVaultFails(t *testing.T) {
	k, _, ctx := setupKeeper(t)

	err := k.MsgDeposit(ctx, types.NewMsgDeposit(testAddr(0x42), sdkmath.NewInt(5_000_000)))
	require.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestUpdatedLimitsApplyImmediately(t *testing.T) {
	k, bank, ctx, admin := setupInitializedVault(t)
	user := testAddr(0x42)
	bank.fund(user, 100_000_000)

	// 2 USDC is valid under the default bounds.
	require.NoError(t, k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(2_000_000))))

	// Raise the minimum to 3 USDC; the previously valid amount now fails.
	require.NoError(t, k.MsgSetDepositLimits(ctx, types.NewMsgSetDepositLimits(
		admin, sdkmath.NewInt(3_000_000), sdkmath.NewInt(15_000_000_000))))

	err := k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(2_000_000)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Below minimum deposit")

	require.NoError(t, k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(3_000_000))))
}

func TestDepositEmitsEvent(t *testing.T) {
	k, bank, ctx, _ := setupInitializedVault(t)
	user := testAddr(0x42)
	bank.fund(user, 100_000_000)

	require.NoError(t, k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(5_000_000))))

	var found bool
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == "vault_deposit" {
			found = true
			attrs := make(map[string]string, len(ev.Attributes))
			for _, attr := range ev.Attributes {
				attrs[attr.Key] = attr.Value
			}
			require.Equal(t, user, attrs["depositor"])
			require.Equal(t, "5000000", attrs["amount"])
			require.Equal(t, testDenom, attrs["denom"])
		}
	}
	require.True(t, found)
}

func TestEndToEndDepositScenario(t *testing.T) {
	k, bank, ctx, admin := setupInitializedVault(t)
	user := testAddr(0x42)
	bank.fund(user, 100_000_000_000)

	require.NoError(t, k.MsgSetDepositLimits(ctx, types.NewMsgSetDepositLimits(
		admin, sdkmath.NewInt(5_000_000), sdkmath.NewInt(20_000_000_000))))

	err := k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(4_000_000)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Below minimum deposit")

	require.NoError(t, k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(5_000_000))))

	err = k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(20_000_000_001)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Exceeds maximum deposit")

	total, err := k.GetTotalDeposited(ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(5_000_000), total)
}

func TestDepositLargeAmountBeyondInt64(t *testing.T) {
	k, bank, ctx, admin := setupInitializedVault(t)
	user := testAddr(0x42)

	huge, ok := sdkmath.NewIntFromString("50000000000000000000000") // > 2^63
	require.True(t, ok)
	bank.Balances[user] = sdk.NewCoins(sdk.NewCoin(testDenom, huge))

	require.NoError(t, k.MsgSetDepositLimits(ctx, types.NewMsgSetDepositLimits(
		admin, sdkmath.NewInt(1_000_000), huge)))

	require.NoError(t, k.MsgDeposit(ctx, types.NewMsgDeposit(user, huge)))

	total, err := k.GetTotalDeposited(ctx)
	require.NoError(t, err)
	require.Equal(t, huge, total)
}
