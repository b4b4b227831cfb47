package cmdutil

import "strings"

// Format names a file format selected on the command line.
type Format string

const (
	FormatText  Format = "text"
	FormatLines Format = "lines"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatYAML  Format = "yaml"
)

var formats = []Format{FormatText, FormatLines, FormatJSON, FormatCSV, FormatYAML}

// FormatNames lists the accepted --format values.
func FormatNames() string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}

// ParseFormat validates a --format value. The format is never guessed
// from the file name.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return "", Usagef("missing required flag: --format (%s)", FormatNames())
	}
	for _, f := range formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", Usagef("unsupported format: %q (expected %s)", s, FormatNames())
}
