package fileio

import "errors"

var (
	// ErrNoRows is returned when writing CSV mappings with no rows.
	ErrNoRows = errors.New("no rows to write")
	// ErrNoFieldNames is returned when CSV field names resolve to an empty list.
	ErrNoFieldNames = errors.New("no field names")
	// ErrUnknownField is returned when a CSV row holds a key outside the field names.
	ErrUnknownField = errors.New("field not in field names")
	// ErrNotDir is returned when a directory was expected.
	ErrNotDir = errors.New("not a directory")
	// ErrNotFile is returned when a regular file was expected.
	ErrNotFile = errors.New("not a regular file")
	// ErrUnknownEncoding is returned for an encoding label that is not recognised.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// PathError records a failed file operation and the path it was applied to.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

func pathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &PathError{Op: op, Path: path, Err: err}
}
