// Package runtime stores verifier guests and executes them on wazero with
// the BLS12-381 host functions linked in.
package runtime

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/CosmWasm/blsverify/internal/runtime/cache"
	"github.com/CosmWasm/blsverify/internal/runtime/db"
	rterrors "github.com/CosmWasm/blsverify/internal/runtime/error"
	"github.com/CosmWasm/blsverify/internal/runtime/gas"
	"github.com/CosmWasm/blsverify/internal/runtime/host"
	"github.com/CosmWasm/blsverify/internal/runtime/memory"
	"github.com/CosmWasm/blsverify/internal/runtime/validation"
	"github.com/CosmWasm/blsverify/types"
)

var (
	i32x2       = []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}
	codeDBName  = "code"
	copyGasDesc = "copy calldata"
)

// VM owns a wazero runtime, a code store and a compiled-module cache. All
// methods are safe for concurrent use.
type VM struct {
	cfg     Config
	logger  zerolog.Logger
	runtime wazero.Runtime
	store   *db.Store
	cache   *cache.Cache

	// codeMu serializes pinning and removal.
	codeMu sync.Mutex
}

// NewVM opens the code store and links the host module.
func NewVM(cfg Config) (*VM, error) {
	ctx := context.Background()

	store, err := db.Open(codeDBName, cfg.DBBackend, cfg.BaseDir)
	if err != nil {
		return nil, err
	}

	rcfg := wazero.NewRuntimeConfig().WithCloseOnContextDone(true)
	if cfg.MemoryLimitPages > 0 {
		rcfg = rcfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	r := wazero.NewRuntimeWithConfig(ctx, rcfg)
	if _, err := host.Instantiate(ctx, r); err != nil {
		_ = r.Close(ctx)
		_ = store.Close()
		return nil, err
	}

	vm := &VM{
		cfg:     cfg,
		logger:  cfg.Logger.With().Str("module", "vm").Logger(),
		runtime: r,
		store:   store,
		cache:   cache.New(),
	}
	vm.logger.Debug().
		Str("backend", string(cfg.DBBackend)).
		Str("dir", cfg.BaseDir).
		Uint32("memory_limit_pages", cfg.MemoryLimitPages).
		Msg("vm started")
	return vm, nil
}

func (vm *VM) requirements() validation.Requirements {
	return validation.Requirements{
		ImportModule:    host.ModuleName,
		AllowedImports:  host.Imports(),
		AllocateExport:  memory.AllocateExport,
		MaxFunctionArgs: vm.cfg.MaxFunctionArgs,
	}
}

// StoreCode compiles and validates code, then persists it. Storing the same
// code twice returns the same checksum.
func (vm *VM) StoreCode(code []byte) (types.Checksum, error) {
	ctx := context.Background()
	cs := types.ChecksumOf(code)

	compiled, err := vm.runtime.CompileModule(ctx, code)
	if err != nil {
		return types.Checksum{}, rterrors.Wrap(err, "compile %s", cs)
	}
	if err := validation.Validate(compiled, vm.requirements()); err != nil {
		_ = compiled.Close(ctx)
		return types.Checksum{}, err
	}
	if err := vm.store.Set(cs, code); err != nil {
		_ = compiled.Close(ctx)
		return types.Checksum{}, rterrors.Wrap(err, "store %s", cs)
	}
	if _, fresh := vm.cache.Save(cs, compiled); !fresh {
		_ = compiled.Close(ctx)
	}
	vm.logger.Info().Stringer("checksum", cs).Int("size", len(code)).Msg("stored code")
	return cs, nil
}

// GetCode returns the stored bytecode for cs.
func (vm *VM) GetCode(cs types.Checksum) ([]byte, error) {
	code, err := vm.store.Get(cs)
	if err != nil {
		return nil, rterrors.Wrap(err, "load %s", cs)
	}
	if code == nil {
		return nil, types.NoSuchCode{Checksum: cs}
	}
	return code, nil
}

// RemoveCode deletes code and its compiled module. Pinned code cannot be
// removed.
func (vm *VM) RemoveCode(cs types.Checksum) error {
	vm.codeMu.Lock()
	defer vm.codeMu.Unlock()

	ok, err := vm.store.Has(cs)
	if err != nil {
		return rterrors.Wrap(err, "load %s", cs)
	}
	if !ok {
		return types.NoSuchCode{Checksum: cs}
	}
	ctx := context.Background()
	if !vm.cache.Remove(ctx, cs) {
		return fmt.Errorf("remove %s: %w", cs, rterrors.ErrPinned)
	}
	if err := vm.store.Delete(cs); err != nil {
		return rterrors.Wrap(err, "delete %s", cs)
	}
	// A concurrent Call may have recompiled the code before it was deleted.
	vm.cache.Remove(ctx, cs)
	return nil
}

// Checksums lists all stored code.
func (vm *VM) Checksums() ([]types.Checksum, error) {
	return vm.store.Checksums()
}

// Pin keeps the compiled module for cs in memory and protects it from
// RemoveCode.
func (vm *VM) Pin(cs types.Checksum) error {
	vm.codeMu.Lock()
	defer vm.codeMu.Unlock()

	if _, err := vm.compiled(context.Background(), cs); err != nil {
		return err
	}
	if !vm.cache.Pin(cs) {
		return types.NoSuchCode{Checksum: cs}
	}
	return nil
}

func (vm *VM) Unpin(cs types.Checksum) {
	vm.cache.Unpin(cs)
}

func (vm *VM) Metrics() cache.Metrics {
	return vm.cache.Metrics()
}

// compiled returns the cached module for cs, compiling stored code on a miss.
func (vm *VM) compiled(ctx context.Context, cs types.Checksum) (wazero.CompiledModule, error) {
	if mod, ok := vm.cache.Load(cs); ok {
		return mod, nil
	}
	code, err := vm.GetCode(cs)
	if err != nil {
		return nil, err
	}
	mod, err := vm.runtime.CompileModule(ctx, code)
	if err != nil {
		return nil, rterrors.Wrap(err, "compile %s", cs)
	}
	saved, fresh := vm.cache.Save(cs, mod)
	if !fresh {
		_ = mod.Close(ctx)
	}
	return saved, nil
}

// Call runs export of the code stored under cs with payload as calldata.
//
// The export must have type (i32, i32) -> (i32, i32): it receives the
// calldata region and returns the failure region, (0, 0) on success. Each
// call gets a fresh instance and a gas meter limited to gasLimit. Errors are
// reserved for runtime faults; a rejected signature is a successful call
// with a non-empty Failure.
func (vm *VM) Call(ctx context.Context, cs types.Checksum, export string, payload []byte, gasLimit uint64) (*types.CallResult, error) {
	compiled, err := vm.compiled(ctx, cs)
	if err != nil {
		return nil, err
	}
	def, ok := compiled.ExportedFunctions()[export]
	if !ok {
		return nil, types.MissingExport{Name: export}
	}
	if !validation.HasSignature(def, i32x2, i32x2) {
		return nil, fmt.Errorf("%w: %q must have type (i32, i32) -> (i32, i32)", validation.ErrInvalidModule, export)
	}

	logger := vm.logger.With().Stringer("checksum", cs).Str("export", export).Logger()
	env := host.NewEnvironment(gasLimit, vm.cfg.Gas, logger)

	mod, err := vm.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		return nil, rterrors.Wrap(err, "instantiate %s", cs)
	}
	defer mod.Close(ctx)

	mem, err := memory.NewManager(mod)
	if err != nil {
		return nil, err
	}
	copyCost := vm.cfg.Gas.PerByte * uint64(len(payload))
	if err := env.Gas.ConsumeGas(copyCost, copyGasDesc); err != nil {
		return nil, err
	}
	ptr, n, err := mem.WriteNew(ctx, payload)
	if err != nil {
		return nil, rterrors.Wrap(err, "write calldata")
	}

	res, err := mod.ExportedFunction(export).Call(host.WithEnvironment(ctx, env), uint64(ptr), uint64(n))
	if err != nil {
		logger.Debug().Err(err).Msg("call aborted")
		return nil, rterrors.Wrap(err, "call %s", export)
	}

	result := &types.CallResult{}
	if errPtr, errLen := api.DecodeU32(res[0]), api.DecodeU32(res[1]); errPtr != 0 || errLen != 0 {
		if result.Failure, err = mem.Read(errPtr, errLen); err != nil {
			return nil, rterrors.Wrap(err, "read result")
		}
	}
	result.GasReport = gas.Report(env.Gas, gasLimit, copyCost)

	logger.Debug().
		Bool("accepted", result.Accepted()).
		Uint64("gas_used", result.GasReport.Used()).
		Msg("call finished")
	return result, nil
}

// Close releases compiled modules, the wazero runtime and the code store.
func (vm *VM) Close(ctx context.Context) error {
	cacheErr := vm.cache.Close(ctx)
	runtimeErr := vm.runtime.Close(ctx)
	storeErr := vm.store.Close()
	for _, err := range []error{cacheErr, runtimeErr, storeErr} {
		if err != nil {
			return err
		}
	}
	return nil
}
