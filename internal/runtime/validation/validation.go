// Package validation performs static checks on verifier guests before they
// are stored.
package validation

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

var ErrInvalidModule = errors.New("invalid verifier module")

// Requirements lists what a guest may import and must export.
type Requirements struct {
	ImportModule    string
	AllowedImports  []string
	AllocateExport  string
	MaxFunctionArgs int
}

// Validate checks the compiled module: exactly one exported memory, an
// allocate(i32) -> i32 export, and function imports restricted to the
// allowed host functions.
func Validate(compiled wazero.CompiledModule, req Requirements) error {
	if n := len(compiled.ExportedMemories()); n != 1 {
		return fmt.Errorf("%w: must export exactly one memory, found %d", ErrInvalidModule, n)
	}

	exports := compiled.ExportedFunctions()
	alloc, ok := exports[req.AllocateExport]
	if !ok {
		return fmt.Errorf("%w: missing required export %q", ErrInvalidModule, req.AllocateExport)
	}
	if !HasSignature(alloc, []api.ValueType{api.ValueTypeI32}, []api.ValueType{api.ValueTypeI32}) {
		return fmt.Errorf("%w: %q must have type (i32) -> i32", ErrInvalidModule, req.AllocateExport)
	}
	if req.MaxFunctionArgs > 0 {
		for name, def := range exports {
			if len(def.ParamTypes()) > req.MaxFunctionArgs {
				return fmt.Errorf("%w: export %q takes %d arguments, limit is %d", ErrInvalidModule, name, len(def.ParamTypes()), req.MaxFunctionArgs)
			}
		}
	}

	for _, def := range compiled.ImportedFunctions() {
		module, name, _ := def.Import()
		if module != req.ImportModule || !slices.Contains(req.AllowedImports, name) {
			return fmt.Errorf("%w: unsupported import %s.%s", ErrInvalidModule, module, name)
		}
	}
	return nil
}

// HasSignature reports whether def has exactly the given parameter and
// result types.
func HasSignature(def api.FunctionDefinition, params, results []api.ValueType) bool {
	return slices.Equal(def.ParamTypes(), params) && slices.Equal(def.ResultTypes(), results)
}
