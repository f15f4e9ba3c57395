package types

const (
	// ModuleName defines the module name
	ModuleName = "vault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

var (
	// ParamsKey is the key for storing the deposit limits
	ParamsKey = []byte{0x01}

	// VaultInfoKey is the key for storing the admin and accepted denom
	VaultInfoKey = []byte{0x02}

	// PositionKeyPrefix is the prefix for storing per-depositor positions
	PositionKeyPrefix = []byte{0x03}

	// TotalDepositedKey is the key for storing the running deposit total
	TotalDepositedKey = []byte{0x04}

	// DepositCountKey is the key for storing the accepted deposit sequence
	DepositCountKey = []byte{0x05}
)
