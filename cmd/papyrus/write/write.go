package write

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/flarebyte/papyrus/cmd/papyrus/cmdutil"
	"github.com/flarebyte/papyrus/internal/fileio"
	"github.com/flarebyte/papyrus/internal/logger"
	"github.com/spf13/cobra"
)

// NewCmd creates `papyrus write`.
func NewCmd() *cobra.Command {
	var (
		flagFormat string
		flagAppend bool
		flagRows   bool
		flagFields string
		flagIndent int
	)
	cmd := &cobra.Command{
		Use:   "write <path>",
		Short: "Write stdin to a file in the given format",
		Long: "Read a JSON document from stdin and write it to <path> in the given format.\n" +
			"For --format text stdin is written as-is; for lines it must be a JSON array of\n" +
			"strings; for csv a JSON array of objects (or of arrays with --rows).",
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmdutil.ParseFormat(flagFormat)
			if err != nil {
				return err
			}
			if flagAppend && format != cmdutil.FormatText {
				return cmdutil.Usagef("--append is only supported with --format text")
			}
			if flagRows && format != cmdutil.FormatCSV {
				return cmdutil.Usagef("--rows is only supported with --format csv")
			}
			path := args[0]
			opts := cmdutil.FileOptions(cmdutil.SettingsFrom(cmd.Context()), format)
			if cmd.Flags().Changed("indent") {
				opts = append(opts, fileio.WithIndent(flagIndent))
			}
			if flagFields != "" {
				opts = append(opts, fileio.WithFieldNames(strings.Split(flagFields, ",")...))
			}

			input, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			logger.Named("write").Debug("writing file", "path", path, "format", format, "bytes", len(input))

			switch format {
			case cmdutil.FormatText:
				if flagAppend {
					return fileio.AppendText(path, string(input), opts...)
				}
				return fileio.WriteText(path, string(input), opts...)
			case cmdutil.FormatLines:
				var lines []string
				if err := json.Unmarshal(input, &lines); err != nil {
					return fmt.Errorf("invalid input: expected a JSON array of strings: %v", err)
				}
				return fileio.WriteLines(path, lines, opts...)
			case cmdutil.FormatCSV:
				if flagRows {
					var rows [][]string
					if err := json.Unmarshal(input, &rows); err != nil {
						return fmt.Errorf("invalid input: expected a JSON array of string arrays: %v", err)
					}
					return fileio.WriteCSVRows(path, rows, opts...)
				}
				var rows []map[string]string
				if err := json.Unmarshal(input, &rows); err != nil {
					return fmt.Errorf("invalid input: expected a JSON array of objects with string values: %v", err)
				}
				return fileio.WriteCSV(path, rows, opts...)
			}

			v, err := fileio.DecodeJSON(input)
			if err != nil {
				return fmt.Errorf("invalid input: %v", err)
			}
			if format == cmdutil.FormatYAML {
				return fileio.WriteYAML(path, v, opts...)
			}
			return fileio.WriteJSON(path, v, opts...)
		},
	}
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "", "File format: "+cmdutil.FormatNames())
	cmd.Flags().BoolVarP(&flagAppend, "append", "a", false, "Append instead of overwriting (text only)")
	cmd.Flags().BoolVar(&flagRows, "rows", false, "CSV input is an array of rows, header included")
	cmd.Flags().StringVar(&flagFields, "fields", "", "Comma-separated CSV field names and order")
	cmd.Flags().IntVar(&flagIndent, "indent", 0, "Indent width for JSON/YAML (overrides config)")
	return cmd
}
