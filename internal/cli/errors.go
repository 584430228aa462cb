package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageErrorf(format string, a ...any) error {
	return usageError{err: fmt.Errorf(format, a...)}
}

// reportedError carries an exit code for an outcome already printed.
type reportedError struct{ code int }

func (e reportedError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func isReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// ExitCode maps an Execute error to 1 (runtime) or 2 (usage, rejected input).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var r reportedError
	if errors.As(err, &r) {
		return r.code
	}
	var u usageError
	if errors.As(err, &u) {
		return 2
	}
	return 1
}

// usageArgs wraps a cobra.PositionalArgs so its failures exit with 2.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}
