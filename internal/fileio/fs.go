package fileio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

// absPath makes path absolute so it resolves the same way on every backend,
// which are all rooted at "/".
func absPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Abs(path)
}

// readAll returns the file content decoded from the configured encoding.
func readAll(o options, path string) ([]byte, error) {
	abs, err := absPath(path)
	if err != nil {
		return nil, err
	}
	f, err := o.fs.Open(abs)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	r, err := decodingReader(f, o.encoding)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// requireParent fails unless the directory holding path already exists.
// Billy backends create missing parents on open, so this is checked up front.
func requireParent(bfs billy.Filesystem, abs string) error {
	dir := filepath.Dir(abs)
	fi, err := bfs.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return &os.PathError{Op: "stat", Path: dir, Err: ErrNotDir}
	}
	return nil
}

// writeAll encodes data to the configured encoding and writes it to path.
// The file is created when missing, truncated unless appending.
func writeAll(o options, path string, data []byte, appending bool) error {
	abs, err := absPath(path)
	if err != nil {
		return err
	}
	encoded, err := encodeBytes(data, o.encoding)
	if err != nil {
		return err
	}
	if err := requireParent(o.fs, abs); err != nil {
		return err
	}
	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if appending {
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	f, err := o.fs.OpenFile(abs, flag, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(encoded); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
