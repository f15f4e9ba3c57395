package types

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// VaultInfo carries the identities persisted at initialization: the single
// administrator allowed to change the deposit bounds, and the token denom
// the vault accepts.
type VaultInfo struct {
	Admin string `json:"admin"`
	Denom string `json:"denom"`
}

// Validate checks that both identities are present and the denom is well formed.
func (v VaultInfo) Validate() error {
	if strings.TrimSpace(v.Admin) == "" {
		return fmt.Errorf("admin address cannot be empty")
	}
	if strings.TrimSpace(v.Denom) == "" {
		return fmt.Errorf("denom cannot be empty")
	}
	return nil
}

// Position tracks a depositor's accepted deposits. The vault performs no
// share issuance; the position is a plain running total of transferred value.
type Position struct {
	Depositor        string      `json:"depositor"`
	Amount           sdkmath.Int `json:"amount"`
	DepositCount     uint64      `json:"deposit_count"`
	FirstDepositUnix int64       `json:"first_deposit_unix"`
	LastDepositUnix  int64       `json:"last_deposit_unix"`
}

// Validate checks internal consistency of a position record.
func (p Position) Validate() error {
	if strings.TrimSpace(p.Depositor) == "" {
		return fmt.Errorf("position depositor cannot be empty")
	}
	if p.Amount.IsNil() || !p.Amount.IsPositive() {
		return fmt.Errorf("position amount must be positive")
	}
	if p.DepositCount == 0 {
		return fmt.Errorf("position deposit count must be positive")
	}
	if p.LastDepositUnix < p.FirstDepositUnix {
		return fmt.Errorf("position last deposit predates first deposit")
	}
	return nil
}
