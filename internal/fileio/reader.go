package fileio

import (
	"bytes"
	"encoding/csv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadText returns the whole file as a string.
func ReadText(path string, opts ...Option) (string, error) {
	o := newOptions(opts)
	b, err := readAll(o, path)
	if err != nil {
		return "", pathError("read-text", path, err)
	}
	return string(b), nil
}

// ReadLines returns the file split into lines without their terminators.
// "\n", "\r\n" and a lone "\r" all end a line. A trailing terminator does
// not produce a final empty line.
func ReadLines(path string, opts ...Option) ([]string, error) {
	o := newOptions(opts)
	b, err := readAll(o, path)
	if err != nil {
		return nil, pathError("read-lines", path, err)
	}
	return splitLines(string(b)), nil
}

func splitLines(s string) []string {
	lines := []string{}
	if s == "" {
		return lines
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return append(lines, strings.Split(s, "\n")...)
}

// ReadJSON decodes a JSON file into maps, slices and scalars.
func ReadJSON(path string, opts ...Option) (any, error) {
	o := newOptions(opts)
	b, err := readAll(o, path)
	if err != nil {
		return nil, pathError("read-json", path, err)
	}
	v, err := DecodeJSON(b)
	if err != nil {
		return nil, pathError("read-json", path, err)
	}
	return v, nil
}

// ReadJSONInto decodes a JSON file into v.
func ReadJSONInto(path string, v any, opts ...Option) error {
	o := newOptions(opts)
	b, err := readAll(o, path)
	if err != nil {
		return pathError("read-json", path, err)
	}
	return pathError("read-json", path, decodeJSONInto(b, v))
}

// ReadCSV decodes a CSV file whose first row is the header. Each following
// row becomes a mapping from header name to cell.
func ReadCSV(path string, opts ...Option) ([]map[string]string, error) {
	rows, err := readCSVRecords("read-csv", path, opts)
	if err != nil {
		return nil, err
	}
	out := []map[string]string{}
	if len(rows) == 0 {
		return out, nil
	}
	header := rows[0]
	for _, rec := range rows[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			row[name] = rec[i]
		}
		out = append(out, row)
	}
	return out, nil
}

// ReadCSVRows returns every CSV record, header included.
func ReadCSVRows(path string, opts ...Option) ([][]string, error) {
	return readCSVRecords("read-csv", path, opts)
}

func readCSVRecords(op, path string, opts []Option) ([][]string, error) {
	o := newOptions(opts)
	b, err := readAll(o, path)
	if err != nil {
		return nil, pathError(op, path, err)
	}
	r := csv.NewReader(bytes.NewReader(b))
	r.Comma = o.delimiter
	rows, err := r.ReadAll()
	if err != nil {
		return nil, pathError(op, path, err)
	}
	if rows == nil {
		rows = [][]string{}
	}
	return rows, nil
}

// ReadYAML decodes the first YAML document of a file. An empty file yields nil.
// Mapping keys are always strings; non-string keys are formatted with fmt.Sprint.
func ReadYAML(path string, opts ...Option) (any, error) {
	var v any
	if err := ReadYAMLInto(path, &v, opts...); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

// ReadYAMLInto decodes the first YAML document of a file into v.
func ReadYAMLInto(path string, v any, opts ...Option) error {
	o := newOptions(opts)
	b, err := readAll(o, path)
	if err != nil {
		return pathError("read-yaml", path, err)
	}
	return pathError("read-yaml", path, yaml.Unmarshal(b, v))
}
