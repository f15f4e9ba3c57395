package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Neurowealth/NeuroWealth-Smartcontract/x/vault/types"
)

// MsgSetDepositLimits replaces both deposit bounds. Only the administrator
// persisted at initialization may invoke it. Validation order is fixed: the
// minimum floor is checked before the ordering constraint, and no state is
// written unless both pass.
func (k Keeper) MsgSetDepositLimits(ctx context.Context, msg types.MsgSetDepositLimits) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	info, err := k.GetVaultInfo(ctx)
	if err != nil {
		return err
	}

	if msg.Authority != info.Admin {
		k.metrics.UnauthorizedLimitChanges.Inc()
		if sdkCtx, ok := unwrapSDKContext(ctx); ok {
			k.auditLogger.Record(sdkCtx, AuditSeverityWarning, "set_deposit_limits_unauthorized", msg.Authority, map[string]string{
				"expected_admin": info.Admin,
			})
		}
		return fmt.Errorf("%w: expected admin %s, got %s", types.ErrUnauthorized, info.Admin, msg.Authority)
	}

	current, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	updated := types.Params{MinDeposit: msg.MinDeposit, MaxDeposit: msg.MaxDeposit}
	if err := updated.Validate(); err != nil {
		k.metrics.RejectedLimitChanges.Inc()
		return err
	}

	// Both bounds land in one record write; readers never observe a torn pair.
	if err := k.SetParams(ctx, updated); err != nil {
		return err
	}

	k.metrics.LimitUpdates.Inc()
	k.metrics.ObserveBounds(updated)

	if sdkCtx, ok := unwrapSDKContext(ctx); ok {
		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			"vault_limits_updated",
			sdk.NewAttribute("authority", msg.Authority),
			sdk.NewAttribute("old_min_deposit", current.MinDeposit.String()),
			sdk.NewAttribute("old_max_deposit", current.MaxDeposit.String()),
			sdk.NewAttribute("min_deposit", updated.MinDeposit.String()),
			sdk.NewAttribute("max_deposit", updated.MaxDeposit.String()),
		))

		k.auditLogger.Record(sdkCtx, AuditSeverityInfo, "set_deposit_limits", msg.Authority, map[string]string{
			"old_min": current.MinDeposit.String(),
			"old_max": current.MaxDeposit.String(),
			"new_min": updated.MinDeposit.String(),
			"new_max": updated.MaxDeposit.String(),
		})

		sdkCtx.Logger().Info(
			"vault deposit limits updated",
			"authority", msg.Authority,
			"min_deposit", updated.MinDeposit.String(),
			"max_deposit", updated.MaxDeposit.String(),
		)
	}

	return nil
}

func (k Keeper) auditRejectedDeposit(ctx context.Context, msg types.MsgDeposit, reason string) {
	if sdkCtx, ok := unwrapSDKContext(ctx); ok {
		k.auditLogger.Record(sdkCtx, AuditSeverityInfo, "deposit_rejected", msg.Depositor, map[string]string{
			"amount": msg.Amount.String(),
			"reason": reason,
		})
	}
}

// MsgDeposit validates the amount against the current bounds and, if both
// checks pass, delegates the transfer to the bank keeper and updates the
// positions ledger. Bounds are inclusive on both ends. Errors from the bank
// keeper propagate unchanged.
func (k Keeper) MsgDeposit(ctx context.Context, msg types.MsgDeposit) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	info, err := k.GetVaultInfo(ctx)
	if err != nil {
		return err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	if msg.Amount.LT(params.MinDeposit) {
		k.metrics.DepositsBelowMinimum.Inc()
		k.auditRejectedDeposit(ctx, msg, types.ReasonBelowMinimum)
		return fmt.Errorf("%w: %s", types.ErrDepositLimit, types.ReasonBelowMinimum)
	}
	if msg.Amount.GT(params.MaxDeposit) {
		k.metrics.DepositsAboveMaximum.Inc()
		k.auditRejectedDeposit(ctx, msg, types.ReasonAboveMaximum)
		return fmt.Errorf("%w: %s", types.ErrDepositLimit, types.ReasonAboveMaximum)
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return fmt.Errorf("invalid depositor address: %w", err)
	}

	coins := sdk.NewCoins(sdk.NewCoin(info.Denom, msg.Amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, depositor, types.ModuleName, coins); err != nil {
		return err
	}

	sdkCtx, hasSDKCtx := unwrapSDKContext(ctx)
	now := int64(0)
	if hasSDKCtx {
		now = sdkCtx.BlockTime().Unix()
	}

	pos, found, err := k.GetPosition(ctx, msg.Depositor)
	if err != nil {
		return err
	}
	if !found {
		pos = types.Position{
			Depositor:        msg.Depositor,
			Amount:           msg.Amount,
			DepositCount:     1,
			FirstDepositUnix: now,
			LastDepositUnix:  now,
		}
	} else {
		pos.Amount = pos.Amount.Add(msg.Amount)
		pos.DepositCount++
		pos.LastDepositUnix = now
	}
	if err := k.setPosition(ctx, pos); err != nil {
		return err
	}

	total, err := k.GetTotalDeposited(ctx)
	if err != nil {
		return err
	}
	if err := k.TotalDeposited.Set(ctx, total.Add(msg.Amount).String()); err != nil {
		return err
	}

	count, err := k.GetDepositCount(ctx)
	if err != nil {
		return err
	}
	if err := k.DepositCount.Set(ctx, count+1); err != nil {
		return err
	}

	k.metrics.DepositsAccepted.Inc()
	if msg.Amount.IsInt64() {
		k.metrics.DepositedTotal.Add(msg.Amount.Int64())
	}

	if hasSDKCtx {
		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			"vault_deposit",
			sdk.NewAttribute("depositor", msg.Depositor),
			sdk.NewAttribute("amount", msg.Amount.String()),
			sdk.NewAttribute("denom", info.Denom),
			sdk.NewAttribute("position_total", pos.Amount.String()),
		))

		sdkCtx.Logger().Info(
			"vault deposit accepted",
			"depositor", msg.Depositor,
			"amount", msg.Amount.String(),
			"denom", info.Denom,
		)
	}

	return nil
}
