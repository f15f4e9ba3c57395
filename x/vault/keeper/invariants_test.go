package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/Neurowealth/NeuroWealth-Smartcontract/x/vault/keeper"
	"github.com/Neurowealth/NeuroWealth-Smartcontract/x/vault/types"
)

func TestInvariantsHoldOnHealthyState(t *testing.T) {
	k, bank, ctx, admin := setupInitializedVault(t)
	user := testAddr(0x42)
	bank.fund(user, 100_000_000)

	require.NoError(t, k.MsgSetDepositLimits(ctx, types.NewMsgSetDepositLimits(
		admin, sdkmath.NewInt(2_000_000), sdkmath.NewInt(30_000_000_000))))
	require.NoError(t, k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(5_000_000))))

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

func TestInvariantsPassOnUninitializedVault(t *testing.T) {
	k, _, ctx := setupKeeper(t)

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

func TestLedgerInvariantDetectsDrift(t *testing.T) {
	k, bank, ctx, _ := setupInitializedVault(t)
	user := testAddr(0x42)
	bank.fund(user, 100_000_000)

	require.NoError(t, k.MsgDeposit(ctx, types.NewMsgDeposit(user, sdkmath.NewInt(5_000_000))))

	// Corrupt the running total behind the keeper's back.
	require.NoError(t, k.TotalDeposited.Set(ctx, sdkmath.NewInt(999).String()))

	msg, broken := keeper.LedgerConsistencyInvariant(k)(ctx)
	require.True(t, broken)
	require.Contains(t, msg, "total deposited")
}

func TestBoundsInvariantDetectsCorruptParams(t *testing.T) {
	k, _, ctx, _ := setupInitializedVault(t)

	// Write a params record that violates the minimum floor directly.
	require.NoError(t, k.Params.Set(ctx, `{"min_deposit":"1","max_deposit":"2"}`))

	msg, broken := keeper.DepositBoundsInvariant(k)(ctx)
	require.True(t, broken)
	require.Contains(t, msg, "stored bounds invalid")
}
