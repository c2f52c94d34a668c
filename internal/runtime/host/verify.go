package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/CosmWasm/blsverify/internal/bls"
	"github.com/CosmWasm/blsverify/internal/contract"
	"github.com/CosmWasm/blsverify/internal/runtime/memory"
)

// ErrNoEnvironment is raised when a host function runs without an
// Environment in its context.
var ErrNoEnvironment = errors.New("host function called without environment")

// verifyFunc builds the host function for one variant:
//
//	fn(data_ptr, data_len) -> (err_ptr, err_len)
//
// A (0, 0) result means the signature was accepted. Otherwise the failure
// payload was written to a fresh guest allocation. Memory faults and gas
// exhaustion abort the guest call.
func verifyFunc(entry *contract.Entrypoint, name string) func(context.Context, api.Module, uint32, uint32) (uint32, uint32) {
	return func(ctx context.Context, m api.Module, dataPtr, dataLen uint32) (uint32, uint32) {
		env, ok := EnvironmentFrom(ctx)
		if !ok {
			panic(ErrNoEnvironment)
		}
		mem, err := memory.NewManager(m)
		if err != nil {
			panic(err)
		}

		// Charge before reading so oversized calldata is never copied.
		if err := env.Gas.ConsumeGas(env.Config.VerifyCharge(uint64(dataLen)), name); err != nil {
			panic(err)
		}
		data, err := mem.Read(dataPtr, dataLen)
		if err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}

		verr := entry.Verify(data)
		kind := contract.Classify(verr)
		log := env.Logger.Debug().
			Str("fn", name).
			Uint32("data_len", dataLen).
			Stringer("result", kind)
		if verr != nil {
			log = log.AnErr("cause", verr)
		}
		log.Msg("bls12-381 verify")

		failure := contract.FailurePayload(entry.Variant(), kind)
		if len(failure) == 0 {
			return 0, 0
		}
		if err := env.Gas.ConsumeGas(env.Config.PerByte*uint64(len(failure)), name+" result"); err != nil {
			panic(err)
		}
		ptr, n, err := mem.WriteNew(ctx, failure)
		if err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
		return ptr, n
	}
}

// verifyVariants lists each host import with the variant it serves.
var verifyVariants = []struct {
	name    string
	variant bls.Variant
}{
	{ImportVerifyG2PubKey, bls.VariantG2PubKey},
	{ImportVerifyG1PubKey, bls.VariantG1PubKey},
}
