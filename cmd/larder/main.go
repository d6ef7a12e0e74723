// Package main provides the larder CLI, a small inventory notebook backed
// by the larder mapping layer. It doubles as the worked example for the
// library: one declared record type, CRUD subcommands, and a JSONL dump.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps an error to the CLI exit code. Violations the user can fix
// (bad lookups, bad values) exit 1; everything else is a system error.
func exitCode(err error) int {
	for _, userErr := range []error{
		types.ErrNotFound,
		types.ErrMultipleResults,
		types.ErrUnknownField,
		types.ErrTypeMismatch,
		types.ErrInvalidSchema,
		types.ErrNotSaved,
		types.ErrDeleted,
		errBadArgument,
	} {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}
