package types

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
)

const (
	TypeMsgSetDepositLimits = "set_deposit_limits"
	TypeMsgDeposit          = "deposit"
)

// MsgSetDepositLimits replaces both deposit bounds. Only the vault
// administrator may submit it.
type MsgSetDepositLimits struct {
	Authority  string      `json:"authority"`
	MinDeposit sdkmath.Int `json:"min_deposit"`
	MaxDeposit sdkmath.Int `json:"max_deposit"`
}

// NewMsgSetDepositLimits creates a new MsgSetDepositLimits.
func NewMsgSetDepositLimits(authority string, minDeposit, maxDeposit sdkmath.Int) MsgSetDepositLimits {
	return MsgSetDepositLimits{
		Authority:  authority,
		MinDeposit: minDeposit,
		MaxDeposit: maxDeposit,
	}
}

// Type returns the message type tag.
func (msg MsgSetDepositLimits) Type() string { return TypeMsgSetDepositLimits }

// ValidateBasic performs stateless validation. The bounds invariants are
// checked statefully by the handler so their reason strings surface in order.
func (msg MsgSetDepositLimits) ValidateBasic() error {
	if strings.TrimSpace(msg.Authority) == "" {
		return fmt.Errorf("authority address cannot be empty")
	}
	if msg.MinDeposit.IsNil() {
		return fmt.Errorf("minimum deposit cannot be nil")
	}
	if msg.MaxDeposit.IsNil() {
		return fmt.Errorf("maximum deposit cannot be nil")
	}
	return nil
}

// MsgDeposit requests a value transfer from the depositor into the vault.
// The depositor's consent is the transaction signature; the handler validates
// the amount against the current bounds before any transfer is attempted.
type MsgDeposit struct {
	Depositor string      `json:"depositor"`
	Amount    sdkmath.Int `json:"amount"`
}

// NewMsgDeposit creates a new MsgDeposit.
func NewMsgDeposit(depositor string, amount sdkmath.Int) MsgDeposit {
	return MsgDeposit{
		Depositor: depositor,
		Amount:    amount,
	}
}

// Type returns the message type tag.
func (msg MsgDeposit) Type() string { return TypeMsgDeposit }

// ValidateBasic performs stateless validation.
func (msg MsgDeposit) ValidateBasic() error {
	if strings.TrimSpace(msg.Depositor) == "" {
		return fmt.Errorf("depositor address cannot be empty")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return fmt.Errorf("deposit amount must be positive")
	}
	return nil
}
