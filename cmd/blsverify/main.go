// Command blsverify verifies BLS12-381 signatures from the command line and
// runs verifier guests on the embedded Wasm runtime.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// rejectedError marks a well-formed request whose signature did not verify.
// It maps to exit code 1 like any other failure but is reported on stdout.
type rejectedError struct {
	reason string
}

func (e *rejectedError) Error() string { return "rejected: " + e.reason }

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var rejected *rejectedError
		if errors.As(err, &rejected) {
			fmt.Fprintln(stdout, rejected.Error())
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
