package types

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func testAccAddress(seed byte) string {
	addr := make([]byte, 20)
	for i := range addr {
		addr[i] = seed
	}
	return sdk.AccAddress(addr).String()
}

func TestMsgSetDepositLimitsValidateBasic(t *testing.T) {
	msg := NewMsgSetDepositLimits(testAccAddress(1), sdkmath.NewInt(1_000_000), sdkmath.NewInt(10_000_000_000))
	if err := msg.ValidateBasic(); err != nil {
		t.Fatalf("expected valid msg, got %v", err)
	}

	msg.Authority = ""
	if err := msg.ValidateBasic(); err == nil {
		t.Fatalf("expected error for empty authority")
	}

	msg.Authority = testAccAddress(1)
	msg.MinDeposit = sdkmath.Int{}
	if err := msg.ValidateBasic(); err == nil {
		t.Fatalf("expected error for nil minimum")
	}

	msg.MinDeposit = sdkmath.NewInt(1_000_000)
	msg.MaxDeposit = sdkmath.Int{}
	if err := msg.ValidateBasic(); err == nil {
		t.Fatalf("expected error for nil maximum")
	}
}

// Out-of-order bounds pass stateless validation; the handler rejects them so
// the reason strings surface with the configured floor applied.
func TestMsgSetDepositLimitsBoundsNotCheckedStateless(t *testing.T) {
	msg := NewMsgSetDepositLimits(testAccAddress(2), sdkmath.NewInt(5), sdkmath.NewInt(1))
	if err := msg.ValidateBasic(); err != nil {
		t.Fatalf("stateless validation must not check bounds, got %v", err)
	}
}

func TestMsgDepositValidateBasic(t *testing.T) {
	msg := NewMsgDeposit(testAccAddress(3), sdkmath.NewInt(1_000_000))
	if err := msg.ValidateBasic(); err != nil {
		t.Fatalf("expected valid msg, got %v", err)
	}

	msg.Depositor = "  "
	if err := msg.ValidateBasic(); err == nil {
		t.Fatalf("expected error for blank depositor")
	}

	msg.Depositor = testAccAddress(3)
	msg.Amount = sdkmath.ZeroInt()
	if err := msg.ValidateBasic(); err == nil {
		t.Fatalf("expected error for zero amount")
	}

	msg.Amount = sdkmath.NewInt(-1)
	if err := msg.ValidateBasic(); err == nil {
		t.Fatalf("expected error for negative amount")
	}

	msg.Amount = sdkmath.Int{}
	if err := msg.ValidateBasic(); err == nil {
		t.Fatalf("expected error for nil amount")
	}
}

func TestMsgTypes(t *testing.T) {
	if got := (MsgSetDepositLimits{}).Type(); got != TypeMsgSetDepositLimits {
		t.Fatalf("unexpected type tag %q", got)
	}
	if got := (MsgDeposit{}).Type(); got != TypeMsgDeposit {
		t.Fatalf("unexpected type tag %q", got)
	}
}
