package fileio

import (
	"path/filepath"
	"strings"
)

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string, opts ...Option) error {
	o := newOptions(opts)
	abs, err := absPath(dir)
	if err != nil {
		return pathError("mkdir", dir, err)
	}
	return pathError("mkdir", dir, o.fs.MkdirAll(abs, 0o755))
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string, opts ...Option) bool {
	o := newOptions(opts)
	abs, err := absPath(path)
	if err != nil {
		return false
	}
	fi, err := o.fs.Stat(abs)
	return err == nil && fi.Mode().IsRegular()
}

// FileSize returns the size in bytes of a regular file.
func FileSize(path string, opts ...Option) (int64, error) {
	const op = "size"
	o := newOptions(opts)
	abs, err := absPath(path)
	if err != nil {
		return 0, pathError(op, path, err)
	}
	fi, err := o.fs.Stat(abs)
	if err != nil {
		return 0, pathError(op, path, err)
	}
	if !fi.Mode().IsRegular() {
		return 0, pathError(op, path, ErrNotFile)
	}
	return fi.Size(), nil
}

// FileExtension returns the extension of the last path element, dot
// included. Leading dots do not start an extension: ".bashrc" has none.
func FileExtension(path string) string {
	base := strings.TrimLeft(filepath.Base(path), ".")
	return filepath.Ext(base)
}
