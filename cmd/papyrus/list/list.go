package list

import (
	"fmt"
	"path/filepath"

	"github.com/flarebyte/papyrus/cmd/papyrus/cmdutil"
	"github.com/flarebyte/papyrus/internal/fileio"
	"github.com/flarebyte/papyrus/internal/logger"
	"github.com/flarebyte/papyrus/internal/luafilter"
	"github.com/spf13/cobra"
)

// NewCmd creates `papyrus list`.
func NewCmd() *cobra.Command {
	var (
		flagExt       string
		flagRecursive bool
		flagGitignore bool
		flagWhere     string
		flagJSON      bool
	)
	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List files in a directory, optionally by extension",
		Args:  cmdutil.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			s := cmdutil.SettingsFrom(cmd.Context())
			flags := cmd.Flags()
			if !flags.Changed("ext") {
				flagExt = s.List.Extension
			}
			if !flags.Changed("recursive") {
				flagRecursive = s.List.Recursive
			}
			if !flags.Changed("gitignore") {
				flagGitignore = s.List.Gitignore
			}
			if !flags.Changed("where") {
				flagWhere = s.List.Where
			}

			opts := []fileio.Option{fileio.WithExtension(flagExt)}
			if flagRecursive {
				opts = append(opts, fileio.WithRecursive())
			}
			if flagGitignore {
				opts = append(opts, fileio.WithGitignore())
			}
			log := logger.Named("list")
			paths, err := fileio.ListFiles(dir, opts...)
			if err != nil {
				return err
			}
			log.Debug("listed directory", "dir", dir, "count", len(paths))

			if flagWhere == "" && !flagJSON {
				for _, p := range paths {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
						return err
					}
				}
				return nil
			}

			entries := make([]luafilter.Entry, 0, len(paths))
			for _, p := range paths {
				size, err := fileio.FileSize(p)
				if err != nil {
					return err
				}
				entries = append(entries, luafilter.Entry{
					Path: p,
					Name: filepath.Base(p),
					Ext:  fileio.FileExtension(p),
					Size: size,
				})
			}
			if flagWhere != "" {
				entries, err = luafilter.Filter(cmd.Context(), flagWhere, entries)
				if err != nil {
					return err
				}
				log.Debug("filtered entries", "where", flagWhere, "count", len(entries))
			}
			if flagJSON {
				return cmdutil.PrintValue(cmd.OutOrStdout(), entries, "", false)
			}
			for _, e := range entries {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), e.Path); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagExt, "ext", "e", "", "Keep only files ending with this extension (e.g. .csv)")
	cmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVar(&flagGitignore, "gitignore", false, "Skip entries matched by .gitignore files")
	cmd.Flags().StringVarP(&flagWhere, "where", "w", "", "Lua predicate over path, name, ext and size")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print entries as a JSON array with sizes")
	return cmd
}
