package read

import (
	"io"

	"github.com/flarebyte/papyrus/cmd/papyrus/cmdutil"
	"github.com/flarebyte/papyrus/internal/fileio"
	"github.com/flarebyte/papyrus/internal/logger"
	"github.com/spf13/cobra"
)

// NewCmd creates `papyrus read`.
func NewCmd() *cobra.Command {
	var (
		flagFormat  string
		flagQuery   string
		flagCompact bool
	)
	cmd := &cobra.Command{
		Use:   "read <path>",
		Short: "Decode a file and print it as JSON",
		Long: "Decode a file in the given format and print the value as JSON.\n" +
			"Text is printed as-is unless --query is given.",
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmdutil.ParseFormat(flagFormat)
			if err != nil {
				return err
			}
			path := args[0]
			opts := cmdutil.FileOptions(cmdutil.SettingsFrom(cmd.Context()), format)
			logger.Named("read").Debug("reading file", "path", path, "format", format)

			var v any
			switch format {
			case cmdutil.FormatText:
				text, err := fileio.ReadText(path, opts...)
				if err != nil {
					return err
				}
				if flagQuery == "" {
					_, err = io.WriteString(cmd.OutOrStdout(), text)
					return err
				}
				v = text
			case cmdutil.FormatLines:
				v, err = fileio.ReadLines(path, opts...)
			case cmdutil.FormatJSON:
				v, err = fileio.ReadJSON(path, opts...)
			case cmdutil.FormatCSV:
				v, err = fileio.ReadCSV(path, opts...)
			case cmdutil.FormatYAML:
				v, err = fileio.ReadYAML(path, opts...)
			}
			if err != nil {
				return err
			}
			return cmdutil.PrintValue(cmd.OutOrStdout(), v, flagQuery, flagCompact)
		},
	}
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "", "File format: "+cmdutil.FormatNames())
	cmd.Flags().StringVarP(&flagQuery, "query", "q", "", "gjson path selecting part of the value (e.g. users.0.name)")
	cmd.Flags().BoolVar(&flagCompact, "compact", false, "Print compact JSON")
	return cmd
}
