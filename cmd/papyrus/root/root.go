package root

import (
	"context"
	"log/slog"

	"github.com/flarebyte/papyrus/cmd/papyrus/cmdutil"
	"github.com/flarebyte/papyrus/cmd/papyrus/demo"
	"github.com/flarebyte/papyrus/cmd/papyrus/hello"
	"github.com/flarebyte/papyrus/cmd/papyrus/info"
	"github.com/flarebyte/papyrus/cmd/papyrus/list"
	"github.com/flarebyte/papyrus/cmd/papyrus/mkdir"
	"github.com/flarebyte/papyrus/cmd/papyrus/read"
	"github.com/flarebyte/papyrus/cmd/papyrus/version"
	"github.com/flarebyte/papyrus/cmd/papyrus/write"
	"github.com/flarebyte/papyrus/internal/config"
	"github.com/flarebyte/papyrus/internal/logger"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for papyrus.
func NewRootCmd() *cobra.Command {
	var (
		cfgPath string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "papyrus",
		Short: "CLI: read, write and list text, JSON, CSV and YAML files",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmdutil.Usagef("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger.Initialize(cmd.ErrOrStderr(), level)

			settings := config.Default()
			if cfgPath != "" {
				s, err := config.Load(cfgPath)
				if err != nil {
					return cmdutil.Usage(err)
				}
				settings = s
				logger.Named("config").Debug("loaded config", "path", cfgPath)
			}
			cmd.SetContext(cmdutil.WithSettings(cmd.Context(), settings))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdutil.Usage(err)
	})

	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (.cue)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	// Subcommands
	cmd.AddCommand(hello.NewCmd())
	cmd.AddCommand(version.NewCmd())
	cmd.AddCommand(read.NewCmd())
	cmd.AddCommand(write.NewCmd())
	cmd.AddCommand(list.NewCmd())
	cmd.AddCommand(info.NewCmd())
	cmd.AddCommand(mkdir.NewCmd())
	cmd.AddCommand(demo.NewCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}
