package info

import (
	"github.com/flarebyte/papyrus/cmd/papyrus/cmdutil"
	"github.com/flarebyte/papyrus/internal/fileio"
	"github.com/spf13/cobra"
)

type fileInfo struct {
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	Extension string `json:"extension"`
}

// NewCmd creates `papyrus info`.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <path>",
		Short: "Print the size and extension of a file",
		Args:  cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			opts := cmdutil.FileOptions(cmdutil.SettingsFrom(cmd.Context()), cmdutil.FormatText)
			size, err := fileio.FileSize(path, opts...)
			if err != nil {
				return err
			}
			return cmdutil.PrintValue(cmd.OutOrStdout(), fileInfo{
				Path:      path,
				Size:      size,
				Extension: fileio.FileExtension(path),
			}, "", false)
		},
	}
}
