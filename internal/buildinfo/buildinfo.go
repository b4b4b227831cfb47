// Package buildinfo exposes version metadata for papyrus. Values are set at
// build time via -ldflags; cli.Version and cli.Date are honoured as fallbacks
// for external build scripts.
package buildinfo

import (
	"runtime"
	"strings"

	"github.com/flarebyte/papyrus/cli"
)

var (
	// Version falls back to cli.Version, then "dev".
	Version = ""
	Commit  = ""
	// Date falls back to cli.Date.
	Date    = ""
	BuiltBy = ""
)

// Info is the JSON shape printed by `papyrus version --json`.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	BuiltBy string `json:"built_by"`
	Go      string `json:"go"`
	GoOS    string `json:"go_os"`
	GoArch  string `json:"go_arch"`
}

func version() string {
	v := Version
	if v == "" {
		v = cli.Version
	}
	if v == "" {
		v = "dev"
	}
	return v
}

func date() string {
	if Date != "" {
		return Date
	}
	return cli.Date
}

// Current returns the resolved build metadata.
func Current() Info {
	return Info{
		Version: version(),
		Commit:  Commit,
		Date:    date(),
		BuiltBy: BuiltBy,
		Go:      runtime.Version(),
		GoOS:    runtime.GOOS,
		GoArch:  runtime.GOARCH,
	}
}

// Summary returns a concise single-line version string.
func Summary() string {
	v := version()
	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if d := date(); d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
