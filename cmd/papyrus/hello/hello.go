package hello

import (
	"github.com/flarebyte/papyrus/cmd/papyrus/cmdutil"
	"github.com/flarebyte/papyrus/internal/greeting"
	"github.com/spf13/cobra"
)

// NewCmd creates `papyrus hello`.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Print the greeting line",
		Args:  cmdutil.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return greeting.Print(cmd.OutOrStdout())
		},
	}
}
