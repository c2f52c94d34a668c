package runtime

import (
	dbm "github.com/cometbft/cometbft-db"
	"github.com/rs/zerolog"

	"github.com/CosmWasm/blsverify/internal/runtime/gas"
)

// Config configures a VM.
type Config struct {
	// BaseDir holds the code database. Ignored by the memdb backend.
	BaseDir string
	// DBBackend selects the cometbft-db backend for stored code.
	DBBackend dbm.BackendType
	// MemoryLimitPages caps each guest memory, in 64 KiB pages.
	MemoryLimitPages uint32
	// MaxFunctionArgs rejects guests exporting functions with more parameters.
	MaxFunctionArgs int
	Gas             gas.Config
	Logger          zerolog.Logger
}

// DefaultConfig keeps code in memory and allows 16 MiB of guest memory.
func DefaultConfig() Config {
	return Config{
		DBBackend:        dbm.MemDBBackend,
		MemoryLimitPages: 256,
		MaxFunctionArgs:  100,
		Gas:              gas.DefaultConfig(),
		Logger:           zerolog.Nop(),
	}
}
