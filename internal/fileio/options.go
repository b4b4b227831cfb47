package fileio

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

const (
	defaultEncoding   = "utf-8"
	defaultDelimiter  = ','
	defaultJSONIndent = 4
	defaultYAMLIndent = 2
)

// Option tunes a single call. Options are never retained between calls.
type Option func(*options)

type options struct {
	fs         billy.Filesystem
	encoding   string
	delimiter  rune
	indent     int
	fieldNames []string
	extension  string
	recursive  bool
	gitignore  bool
}

func newOptions(opts []Option) options {
	o := options{
		encoding:  defaultEncoding,
		delimiter: defaultDelimiter,
		indent:    -1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.fs == nil {
		o.fs = osfs.New("/")
	}
	return o
}

func (o options) indentOr(def int) int {
	if o.indent < 0 {
		return def
	}
	return o.indent
}

// WithFS sets the filesystem used by the call. Defaults to the local disk.
func WithFS(fs billy.Filesystem) Option {
	return func(o *options) { o.fs = fs }
}

// WithEncoding sets the text encoding by WHATWG label (e.g. "utf-8", "gbk").
func WithEncoding(name string) Option {
	return func(o *options) {
		if name != "" {
			o.encoding = name
		}
	}
}

// WithDelimiter sets the CSV field delimiter.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		if r != 0 {
			o.delimiter = r
		}
	}
}

// WithIndent sets the indentation width for JSON and YAML output.
// Zero writes compact JSON.
func WithIndent(n int) Option {
	return func(o *options) { o.indent = n }
}

// WithFieldNames sets the CSV header and column order for WriteCSV.
func WithFieldNames(names ...string) Option {
	return func(o *options) { o.fieldNames = append([]string(nil), names...) }
}

// WithExtension keeps only files whose name ends with ext when listing.
func WithExtension(ext string) Option {
	return func(o *options) { o.extension = ext }
}

// WithRecursive lists files in subdirectories too.
func WithRecursive() Option {
	return func(o *options) { o.recursive = true }
}

// WithGitignore skips entries matched by .gitignore files under the listed directory.
func WithGitignore() Option {
	return func(o *options) { o.gitignore = true }
}
