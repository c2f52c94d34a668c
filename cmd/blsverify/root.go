package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CosmWasm/blsverify/internal/bls"
)

const envPrefix = "BLSVERIFY"

// app carries state shared by all subcommands.
type app struct {
	v      *viper.Viper
	logger zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr, logger: zerolog.Nop()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "blsverify",
		Short:         "Verify BLS12-381 signatures",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if path := a.v.GetString("config"); path != "" {
				a.v.SetConfigFile(path)
				if err := a.v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			}
			return a.setupLogger()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.String("variant", bls.VariantG2PubKey.String(), "g2-pubkey (48 byte signatures) or g1-pubkey (96 byte signatures)")
	flags.String("log-level", "info", "log level")
	flags.String("log-format", "console", "console or json")

	root.AddCommand(
		a.verifyCmd(),
		a.payloadCmd(),
		a.hashCmd(),
		a.runCmd(),
	)
	return root
}

func (a *app) setupLogger() error {
	level, err := zerolog.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	var w io.Writer = a.stderr
	if a.v.GetString("log-format") == "console" {
		w = zerolog.ConsoleWriter{Out: a.stderr, NoColor: true}
	}
	a.logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return nil
}

func (a *app) variant() (bls.Variant, error) {
	return bls.ParseVariant(a.v.GetString("variant"))
}

// hexFlag decodes a hex flag value, with or without a 0x prefix.
func (a *app) hexFlag(name string) ([]byte, error) {
	s := strings.TrimPrefix(strings.TrimSpace(a.v.GetString(name)), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return b, nil
}
