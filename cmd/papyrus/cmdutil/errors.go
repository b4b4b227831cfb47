package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	ExitCodeFailure = 1
	ExitCodeUsage   = 2
)

// ExitError carries the process exit code for main.
type ExitError struct {
	code int
	err  error
}

func (e ExitError) Error() string { return e.err.Error() }
func (e ExitError) Unwrap() error { return e.err }
func (e ExitError) ExitCode() int { return e.code }

// Usage marks err as a command-line usage error.
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return ExitError{code: ExitCodeUsage, err: err}
}

// Usagef formats a usage error.
func Usagef(format string, args ...any) error {
	return Usage(fmt.Errorf(format, args...))
}

// ExactArgs is cobra.ExactArgs reporting a usage error.
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return Usage(cobra.ExactArgs(n)(cmd, args))
	}
}

// RangeArgs is cobra.RangeArgs reporting a usage error.
func RangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return Usage(cobra.RangeArgs(lo, hi)(cmd, args))
	}
}

// MinimumNArgs is cobra.MinimumNArgs reporting a usage error.
func MinimumNArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return Usage(cobra.MinimumNArgs(n)(cmd, args))
	}
}
