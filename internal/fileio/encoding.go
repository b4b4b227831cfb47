package fileio

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

func isUTF8(enc encoding.Encoding) bool {
	name, err := htmlindex.Name(enc)
	return err == nil && name == "utf-8"
}

// decodingReader converts r from the named encoding to UTF-8. UTF-8 input is
// validated rather than repaired, so invalid bytes fail with
// encoding.ErrInvalidUTF8.
func decodingReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	if isUTF8(enc) {
		return transform.NewReader(r, encoding.UTF8Validator), nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// encodeBytes converts UTF-8 data to the named encoding.
func encodeBytes(data []byte, name string) ([]byte, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, encoding.ErrInvalidUTF8
	}
	if isUTF8(enc) {
		return data, nil
	}
	out, _, err := transform.Bytes(enc.NewEncoder(), data)
	if err != nil {
		return nil, err
	}
	return out, nil
}
