package version

import (
	"fmt"

	"github.com/flarebyte/papyrus/cmd/papyrus/cmdutil"
	"github.com/flarebyte/papyrus/internal/buildinfo"
	"github.com/spf13/cobra"
)

// NewCmd creates `papyrus version`.
func NewCmd() *cobra.Command {
	var (
		flagShort bool
		flagJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cmdutil.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagShort || !flagJSON {
				// Exactly one line.
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "papyrus %s\n", buildinfo.Summary())
				return err
			}
			// JSON goes to stdout, a human friendly line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "papyrus version: %s\n", buildinfo.Summary())
			return cmdutil.PrintValue(cmd.OutOrStdout(), buildinfo.Current(), "", false)
		},
	}
	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	return cmd
}
