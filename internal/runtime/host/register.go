// Package host provides the "env" module a verifier guest imports.
package host

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/CosmWasm/blsverify/internal/contract"
)

const (
	// ModuleName is the import module of every host function.
	ModuleName = "env"

	ImportVerifyG2PubKey = "bls12_381_verify_g2_pubkey"
	ImportVerifyG1PubKey = "bls12_381_verify_g1_pubkey"
)

// Imports returns the names of all functions exported by the host module.
func Imports() []string {
	names := make([]string, 0, len(verifyVariants))
	for _, v := range verifyVariants {
		names = append(names, v.name)
	}
	return names
}

// Instantiate registers the host module in r. It must run once per runtime,
// before any guest is instantiated.
func Instantiate(ctx context.Context, r wazero.Runtime) (api.Module, error) {
	builder := r.NewHostModuleBuilder(ModuleName)
	for _, v := range verifyVariants {
		entry, err := contract.New(v.variant)
		if err != nil {
			return nil, err
		}
		builder.NewFunctionBuilder().
			WithFunc(verifyFunc(entry, v.name)).
			WithParameterNames("data_ptr", "data_len").
			WithResultNames("err_ptr", "err_len").
			Export(v.name)
	}
	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("instantiate %s module: %w", ModuleName, err)
	}
	return mod, nil
}
