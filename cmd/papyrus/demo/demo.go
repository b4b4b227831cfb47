package demo

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/flarebyte/papyrus/cmd/papyrus/cmdutil"
	"github.com/flarebyte/papyrus/internal/config"
	"github.com/flarebyte/papyrus/internal/fileio"
	"github.com/flarebyte/papyrus/internal/logger"
	"github.com/spf13/cobra"
)

const rule = "--------------------------------------------------"

// NewCmd creates `papyrus demo`.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [dir]",
		Short: "Write, read back and list sample text, JSON, CSV and YAML files",
		Args:  cmdutil.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "examples"
			if len(args) == 1 {
				dir = args[0]
			}
			return run(cmd.OutOrStdout(), dir, cmdutil.SettingsFrom(cmd.Context()))
		},
	}
}

func run(w io.Writer, dir string, s config.Settings) error {
	opts := func(f cmdutil.Format) []fileio.Option { return cmdutil.FileOptions(s, f) }
	log := logger.Named("demo")
	p := func(format string, a ...any) { _, _ = fmt.Fprintf(w, format+"\n", a...) }

	p("File utility demo")
	p(rule)

	if err := fileio.EnsureDir(dir, opts(cmdutil.FormatText)...); err != nil {
		return err
	}
	p("Created directory: %s", dir)

	textFile := filepath.Join(dir, "hello.txt")
	content := "Hello, World!\nThis is a sample text file.\nFile utility test."
	if err := fileio.WriteText(textFile, content, opts(cmdutil.FormatText)...); err != nil {
		return err
	}
	p("Wrote text file: %s", textFile)
	text, err := fileio.ReadText(textFile, opts(cmdutil.FormatText)...)
	if err != nil {
		return err
	}
	p("Read text file:\n%s", text)
	p(rule)

	jsonFile := filepath.Join(dir, "config.json")
	sample := map[string]any{
		"name":    "Sample config",
		"version": "1.0.0",
		"settings": map[string]any{
			"debug":       true,
			"log_level":   "INFO",
			"max_retries": 3,
		},
		"users": []any{
			map[string]any{"id": 1, "name": "User 1"},
			map[string]any{"id": 2, "name": "User 2"},
		},
	}
	if err := fileio.WriteJSON(jsonFile, sample, opts(cmdutil.FormatJSON)...); err != nil {
		return err
	}
	p("Wrote JSON file: %s", jsonFile)
	readConfig, err := fileio.ReadJSON(jsonFile, opts(cmdutil.FormatJSON)...)
	if err != nil {
		return err
	}
	p("Read JSON file:")
	if err := cmdutil.PrintValue(w, readConfig, "", false); err != nil {
		return err
	}
	p(rule)

	csvFile := filepath.Join(dir, "data.csv")
	products := []map[string]string{
		{"id": "1", "name": "Product 1", "price": "100.0"},
		{"id": "2", "name": "Product 2", "price": "200.0"},
		{"id": "3", "name": "Product 3", "price": "300.0"},
	}
	if err := fileio.WriteCSV(csvFile, products, append(opts(cmdutil.FormatCSV), fileio.WithFieldNames("id", "name", "price"))...); err != nil {
		return err
	}
	p("Wrote CSV file: %s", csvFile)
	rows, err := fileio.ReadCSV(csvFile, opts(cmdutil.FormatCSV)...)
	if err != nil {
		return err
	}
	p("Read CSV file:")
	for _, row := range rows {
		_, _ = io.WriteString(w, "  ")
		if err := cmdutil.PrintValue(w, row, "", true); err != nil {
			return err
		}
	}
	p(rule)

	yamlFile := filepath.Join(dir, "config.yaml")
	if err := fileio.WriteYAML(yamlFile, readConfig, opts(cmdutil.FormatYAML)...); err != nil {
		return err
	}
	p("Wrote YAML file: %s", yamlFile)
	yamlText, err := fileio.ReadText(yamlFile, opts(cmdutil.FormatYAML)...)
	if err != nil {
		return err
	}
	p("Read YAML file:\n%s", strings.TrimRight(yamlText, "\n"))
	p(rule)

	files, err := fileio.ListFiles(dir, opts(cmdutil.FormatText)...)
	if err != nil {
		return err
	}
	p("Files in %s:", dir)
	for _, f := range files {
		size, err := fileio.FileSize(f, opts(cmdutil.FormatText)...)
		if err != nil {
			return err
		}
		p("  %s (size: %d bytes, extension: %s)", filepath.Base(f), size, fileio.FileExtension(f))
	}
	log.Debug("demo finished", "dir", dir, "files", len(files))

	p("\nDemo complete!")
	return nil
}
