package main

import (
	"context"
	"fmt"
	"os"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/spf13/cobra"

	blsverify "github.com/CosmWasm/blsverify"
)

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Store a verifier guest and call one of its exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.variant()
			if err != nil {
				return err
			}
			code, err := os.ReadFile(a.v.GetString("wasm"))
			if err != nil {
				return err
			}
			data, err := a.hexFlag("data")
			if err != nil {
				return err
			}

			cfg := blsverify.DefaultConfig()
			cfg.Logger = a.logger
			cfg.MemoryLimitPages = a.v.GetUint32("memory-limit")
			if a.v.IsSet("gas") {
				if err := a.v.UnmarshalKey("gas", &cfg.Gas); err != nil {
					return fmt.Errorf("gas config: %w", err)
				}
			}
			if home := a.v.GetString("home"); home != "" {
				cfg.DBBackend = dbm.GoLevelDBBackend
				cfg.BaseDir = home
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			vm, err := blsverify.NewVM(cfg)
			if err != nil {
				return err
			}
			defer vm.Close(ctx)

			cs, err := vm.StoreCode(code)
			if err != nil {
				return err
			}
			export := a.v.GetString("export")
			if export == "" {
				export = blsverify.GuestExport(v)
			}
			res, err := vm.Call(ctx, cs, export, data, a.v.GetUint64("gas-limit"))
			if err != nil {
				return err
			}
			a.logger.Info().
				Stringer("checksum", cs).
				Str("export", export).
				Uint64("gas_used", res.GasReport.Used()).
				Msg("call finished")
			if !res.Accepted() {
				return &rejectedError{reason: describeFailure(res.Failure)}
			}
			fmt.Fprintln(a.stdout, "accepted")
			return nil
		},
	}
	flags := cmd.Flags()
	flags.String("wasm", "", "guest Wasm file")
	flags.String("export", "", "export to call, defaults to the variant's entry point")
	flags.String("data", "", "calldata, hex")
	flags.Uint64("gas-limit", 100_000_000, "gas limit for the call")
	flags.Uint32("memory-limit", 256, "guest memory limit in 64 KiB pages")
	flags.String("home", "", "directory for a persistent code store; in memory when empty")
	return cmd
}
