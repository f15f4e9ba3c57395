package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/Neurowealth/NeuroWealth-Smartcontract/x/vault/types"
)

// GetQueryCmd returns the query commands for the module.
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdDefaultLimits(),
	)

	return cmd
}

// CmdDefaultLimits prints the deposit bounds the vault applies at
// initialization, in both the base and display denom.
func CmdDefaultLimits() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "default-limits",
		Short: "Show the deposit limits applied at vault initialization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			report := buildLimitsReport(types.DefaultParams())
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// depositLimitsReport is the JSON shape printed for deposit limit queries.
type depositLimitsReport struct {
	MinDeposit        string `json:"min_deposit"`
	MaxDeposit        string `json:"max_deposit"`
	MinDepositDisplay string `json:"min_deposit_display"`
	MaxDepositDisplay string `json:"max_deposit_display"`
}

// buildLimitsReport formats a bounds pair in both the base and display denom.
func buildLimitsReport(params types.Params) depositLimitsReport {
	factor := sdkmath.NewIntWithDecimal(1, displayDenomExponent)
	return depositLimitsReport{
		MinDeposit:        params.MinDeposit.String() + depositBaseDenom,
		MaxDeposit:        params.MaxDeposit.String() + depositBaseDenom,
		MinDepositDisplay: params.MinDeposit.Quo(factor).String() + depositDisplayDenom,
		MaxDepositDisplay: params.MaxDeposit.Quo(factor).String() + depositDisplayDenom,
	}
}
