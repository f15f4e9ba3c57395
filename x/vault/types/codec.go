package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// RegisterLegacyAminoCodec registers the module's concrete types for amino
// serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSetDepositLimits{}, "neurowealth/vault/MsgSetDepositLimits", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "neurowealth/vault/MsgDeposit", nil)
}

// RegisterInterfaces registers the module's interface types. The vault msgs
// are dispatched through the keeper's message handlers rather than the msg
// service router, so there is nothing to register beyond the amino codec.
func RegisterInterfaces(_ cdctypes.InterfaceRegistry) {}
