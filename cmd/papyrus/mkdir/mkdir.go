package mkdir

import (
	"github.com/flarebyte/papyrus/cmd/papyrus/cmdutil"
	"github.com/flarebyte/papyrus/internal/fileio"
	"github.com/spf13/cobra"
)

// NewCmd creates `papyrus mkdir`.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <dir>...",
		Short: "Create directories and missing parents",
		Args:  cmdutil.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, dir := range args {
				if err := fileio.EnsureDir(dir); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
