package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Neurowealth/NeuroWealth-Smartcontract/x/vault/types"
)

const (
	flagKnownMin = "known-min"
	flagKnownMax = "known-max"

	depositBaseDenom    = "uusdc"
	depositDisplayDenom = "usdc"

	// 1 USDC == 1,000,000 uusdc
	displayDenomExponent = 6
)

// GetTxCmd returns the transaction commands for the module.
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdDeposit(),
		CmdSetDepositLimits(),
	)

	return cmd
}

// CmdDeposit creates a CLI command that builds a vault deposit document.
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [amount]",
		Short: "Deposit value into the vault",
		Long: "Build a vault deposit for the given amount.\n" +
			"Accepted denoms: usdc, uusdc (1usdc = 1000000uusdc).\n" +
			"Pass --known-min and --known-max to reject an out-of-range amount\n" +
			"locally with the same reason the chain would give.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			coin, err := parseDepositAmount(args[0])
			if err != nil {
				return err
			}

			if err := preflightFromFlags(cmd, coin.Amount); err != nil {
				return err
			}

			msg := types.NewMsgDeposit(clientCtx.GetFromAddress().String(), coin.Amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return printMsgDocument(clientCtx, msg.Type(), msg)
		},
	}

	cmd.Flags().String(flagKnownMin, "", "Known on-chain minimum deposit in uusdc, for local preflight")
	cmd.Flags().String(flagKnownMax, "", "Known on-chain maximum deposit in uusdc, for local preflight")

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// CmdSetDepositLimits creates a CLI command that builds a deposit limit
// change. Only the vault administrator's submission will be accepted on
// chain; the bounds invariants are still checked locally so a bad pair
// fails before broadcast.
func CmdSetDepositLimits() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-deposit-limits [min] [max]",
		Short: "Replace both vault deposit limits (administrator only)",
		Long: "Build a deposit limit change with the given bounds.\n" +
			"Accepted denoms: usdc, uusdc. The minimum must be at least 1usdc\n" +
			"and the maximum must not be below the minimum.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			minCoin, err := parseDepositAmount(args[0])
			if err != nil {
				return err
			}
			maxCoin, err := parseDepositAmount(args[1])
			if err != nil {
				return err
			}

			params := types.Params{MinDeposit: minCoin.Amount, MaxDeposit: maxCoin.Amount}
			if err := params.Validate(); err != nil {
				return err
			}

			msg := types.NewMsgSetDepositLimits(
				clientCtx.GetFromAddress().String(),
				minCoin.Amount,
				maxCoin.Amount,
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return printMsgDocument(clientCtx, msg.Type(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// parseDepositAmount parses a coin string in either the base denom (uusdc)
// or the display denom (usdc) and normalizes it to the base denom.
func parseDepositAmount(amountStr string) (sdk.Coin, error) {
	coin, err := sdk.ParseCoinNormalized(strings.TrimSpace(amountStr))
	if err != nil {
		return sdk.Coin{}, fmt.Errorf("invalid deposit amount %q: %w", amountStr, err)
	}

	switch coin.Denom {
	case depositBaseDenom:
		return coin, nil
	case depositDisplayDenom:
		factor := sdkmath.NewIntWithDecimal(1, displayDenomExponent)
		return sdk.NewCoin(depositBaseDenom, coin.Amount.Mul(factor)), nil
	default:
		return sdk.Coin{}, fmt.Errorf("unsupported deposit denom %q: expected %s or %s",
			coin.Denom, depositBaseDenom, depositDisplayDenom)
	}
}

// preflightFromFlags applies preflightDepositBounds when both known-bound
// flags are set. Preflight is opt-in: the on-chain bounds may differ from
// any default the client could assume.
func preflightFromFlags(cmd *cobra.Command, amount sdkmath.Int) error {
	minRaw, err := cmd.Flags().GetString(flagKnownMin)
	if err != nil {
		return err
	}
	maxRaw, err := cmd.Flags().GetString(flagKnownMax)
	if err != nil {
		return err
	}
	if minRaw == "" || maxRaw == "" {
		return nil
	}

	minDeposit, ok := sdkmath.NewIntFromString(minRaw)
	if !ok {
		return fmt.Errorf("invalid --%s value %q", flagKnownMin, minRaw)
	}
	maxDeposit, ok := sdkmath.NewIntFromString(maxRaw)
	if !ok {
		return fmt.Errorf("invalid --%s value %q", flagKnownMax, maxRaw)
	}

	return preflightDepositBounds(amount, minDeposit, maxDeposit)
}

// preflightDepositBounds checks a normalized amount against known bounds
// client-side, so an out-of-range deposit fails before broadcast with the
// same reason the chain would give.
func preflightDepositBounds(amount, minDeposit, maxDeposit sdkmath.Int) error {
	if amount.LT(minDeposit) {
		return fmt.Errorf("%s", types.ReasonBelowMinimum)
	}
	if amount.GT(maxDeposit) {
		return fmt.Errorf("%s", types.ReasonAboveMaximum)
	}
	return nil
}

// printMsgDocument renders the built message as an indented JSON document
// on the client output.
func printMsgDocument(clientCtx client.Context, msgType string, msg interface{}) error {
	doc := struct {
		Type    string      `json:"type"`
		Message interface{} `json:"message"`
	}{Type: msgType, Message: msg}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(out) + "\n")
}
