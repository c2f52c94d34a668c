package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CosmWasm/blsverify/internal/bls"
	"github.com/CosmWasm/blsverify/internal/contract"
)

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature over a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.variant()
			if err != nil {
				return err
			}
			sig, err := a.hexFlag("sig")
			if err != nil {
				return err
			}
			key, err := a.hexFlag("pubkey")
			if err != nil {
				return err
			}
			msg := []byte(a.v.GetString("msg-text"))
			if a.v.GetString("msg") != "" {
				if msg, err = a.hexFlag("msg"); err != nil {
					return err
				}
			}

			err = bls.VerifyBLSSignature(v, sig, msg, key)
			a.logger.Debug().Stringer("variant", v).Int("msg_len", len(msg)).AnErr("result", err).Msg("verify")
			if err != nil {
				return &rejectedError{reason: err.Error()}
			}
			fmt.Fprintln(a.stdout, "accepted")
			return nil
		},
	}
	cmd.Flags().String("sig", "", "signature, hex")
	cmd.Flags().String("pubkey", "", "public key, hex")
	cmd.Flags().String("msg", "", "message, hex")
	cmd.Flags().String("msg-text", "", "message as text, used when --msg is empty")
	return cmd
}

func (a *app) payloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Verify a calldata buffer and print the result a deployed verifier returns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.variant()
			if err != nil {
				return err
			}
			data, err := a.hexFlag("data")
			if err != nil {
				return err
			}
			entry, err := contract.New(v)
			if err != nil {
				return err
			}
			verr := entry.Verify(data)
			kind := contract.Classify(verr)
			a.logger.Debug().Stringer("variant", v).Stringer("kind", kind).AnErr("cause", verr).Msg("payload")
			if kind == contract.Accepted {
				fmt.Fprintln(a.stdout, "accepted")
				return nil
			}
			return &rejectedError{reason: describeFailure(contract.FailurePayload(v, kind))}
		},
	}
	cmd.Flags().String("data", "", "calldata, hex")
	return cmd
}

func (a *app) hashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Hash a message into the signature group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.variant()
			if err != nil {
				return err
			}
			msg, err := a.hexFlag("msg")
			if err != nil {
				return err
			}
			h, err := bls.HashToSignatureGroup(v, msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, hex.EncodeToString(h))
			return nil
		},
	}
	cmd.Flags().String("msg", "", "message, hex")
	return cmd
}

// describeFailure renders a failure payload: printable payloads as text,
// anything else as hex.
func describeFailure(p []byte) string {
	for _, c := range p {
		if c < 0x20 || c > 0x7e {
			return "0x" + hex.EncodeToString(p)
		}
	}
	return string(p)
}
