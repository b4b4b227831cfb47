package config

import (
	"fmt"
	"unicode/utf8"

	"cuelang.org/go/cue"
	"golang.org/x/text/encoding/htmlindex"
)

// Settings holds the defaults read from a papyrus.cue file. Has* flags record
// which optional fields were present so command-line flags can still win.
type Settings struct {
	ConfigVersion string
	Encoding      string
	JSON          Indent
	YAML          Indent
	CSV           CSV
	List          List
}

// Indent holds an optional indentation width.
type Indent struct {
	Width    int
	HasWidth bool
}

// CSV holds optional CSV settings.
type CSV struct {
	Delimiter    rune
	HasDelimiter bool
}

// List holds optional listing settings.
type List struct {
	Extension string
	Recursive bool
	Gitignore bool
	Where     string
}

// Default returns the settings used when no config file is given.
func Default() Settings {
	return Settings{ConfigVersion: CurrentConfigVersion, Encoding: "utf-8"}
}

// Load reads and validates a CUE config file.
//
//	configVersion: "1"        // required
//	encoding:      "utf-8"
//	json: indent:  4
//	yaml: indent:  2
//	csv: delimiter: ","
//	list: {extension: ".csv", recursive: false, gitignore: true, where: "size > 0"}
func Load(path string) (Settings, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Settings{}, err
	}
	return parse(v)
}

func parse(v cue.Value) (Settings, error) {
	s := Default()
	var err error
	if err := requireStringField(v, "configVersion"); err != nil {
		return Settings{}, err
	}
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&s.ConfigVersion); err != nil {
		return Settings{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if !IsSupportedConfigVersion(s.ConfigVersion) {
		return Settings{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)", s.ConfigVersion, SupportedConfigVersionsCSV())
	}

	if enc, ok, err := lookupString(v, "encoding"); err != nil {
		return Settings{}, err
	} else if ok {
		if _, err := htmlindex.Get(enc); err != nil {
			return Settings{}, fmt.Errorf("invalid value for encoding: unknown encoding %q", enc)
		}
		s.Encoding = enc
	}

	if s.JSON, err = parseIndent(v, "json.indent", 0, 16); err != nil {
		return Settings{}, err
	}
	if s.YAML, err = parseIndent(v, "yaml.indent", 2, 9); err != nil {
		return Settings{}, err
	}

	if d, ok, err := lookupString(v, "csv.delimiter"); err != nil {
		return Settings{}, err
	} else if ok {
		r, size := utf8.DecodeRuneInString(d)
		if size == 0 || size != len(d) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
			return Settings{}, fmt.Errorf("invalid value for csv.delimiter: %q (expected a single character)", d)
		}
		s.CSV = CSV{Delimiter: r, HasDelimiter: true}
	}

	if s.List.Extension, _, err = lookupString(v, "list.extension"); err != nil {
		return Settings{}, err
	}
	if s.List.Recursive, _, err = lookupBool(v, "list.recursive"); err != nil {
		return Settings{}, err
	}
	if s.List.Gitignore, _, err = lookupBool(v, "list.gitignore"); err != nil {
		return Settings{}, err
	}
	if s.List.Where, _, err = lookupString(v, "list.where"); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func parseIndent(v cue.Value, path string, lo, hi int) (Indent, error) {
	n, ok, err := lookupInt(v, path)
	if err != nil || !ok {
		return Indent{}, err
	}
	if n < lo || n > hi {
		return Indent{}, fmt.Errorf("invalid value for %s: %d (expected %d..%d)", path, n, lo, hi)
	}
	return Indent{Width: n, HasWidth: true}, nil
}
