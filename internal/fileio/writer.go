package fileio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
)

// WriteText creates or truncates path and writes content.
func WriteText(path, content string, opts ...Option) error {
	o := newOptions(opts)
	return pathError("write-text", path, writeAll(o, path, []byte(content), false))
}

// AppendText creates path when missing and appends content.
func AppendText(path, content string, opts ...Option) error {
	o := newOptions(opts)
	return pathError("append-text", path, writeAll(o, path, []byte(content), true))
}

// WriteLines writes each line followed by a newline.
func WriteLines(path string, lines []string, opts ...Option) error {
	o := newOptions(opts)
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return pathError("write-lines", path, writeAll(o, path, []byte(b.String()), false))
}

// WriteJSON writes v as indented JSON (four spaces unless WithIndent is given).
func WriteJSON(path string, v any, opts ...Option) error {
	o := newOptions(opts)
	data, err := EncodeJSON(v, o.indentOr(defaultJSONIndent))
	if err != nil {
		return pathError("write-json", path, err)
	}
	return pathError("write-json", path, writeAll(o, path, data, false))
}

// WriteYAML writes v as a block-style YAML document with sorted keys.
func WriteYAML(path string, v any, opts ...Option) error {
	o := newOptions(opts)
	data, err := EncodeYAML(v, o.indentOr(defaultYAMLIndent))
	if err != nil {
		return pathError("write-yaml", path, err)
	}
	return pathError("write-yaml", path, writeAll(o, path, data, false))
}

// WriteCSV writes a header row followed by one record per mapping.
// Field names come from WithFieldNames, or the sorted keys of the first row.
// Keys missing from a row are written as empty cells.
func WriteCSV(path string, rows []map[string]string, opts ...Option) error {
	o := newOptions(opts)
	records, err := csvRecords(rows, o.fieldNames)
	if err != nil {
		return pathError("write-csv", path, err)
	}
	data, err := encodeCSV(records, o.delimiter)
	if err != nil {
		return pathError("write-csv", path, err)
	}
	return pathError("write-csv", path, writeAll(o, path, data, false))
}

// WriteCSVRows writes records as they are.
func WriteCSVRows(path string, rows [][]string, opts ...Option) error {
	o := newOptions(opts)
	data, err := encodeCSV(rows, o.delimiter)
	if err != nil {
		return pathError("write-csv", path, err)
	}
	return pathError("write-csv", path, writeAll(o, path, data, false))
}

func csvRecords(rows []map[string]string, fields []string) ([][]string, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	if fields == nil {
		fields = make([]string, 0, len(rows[0]))
		for k := range rows[0] {
			fields = append(fields, k)
		}
		sort.Strings(fields)
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldNames
	}
	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f] = struct{}{}
	}
	records := make([][]string, 0, len(rows)+1)
	records = append(records, fields)
	for i, row := range rows {
		for k := range row {
			if _, ok := known[k]; !ok {
				return nil, fmt.Errorf("row %d: %w: %q", i, ErrUnknownField, k)
			}
		}
		rec := make([]string, len(fields))
		for j, f := range fields {
			rec[j] = row[f]
		}
		records = append(records, rec)
	}
	return records, nil
}

func encodeCSV(records [][]string, delimiter rune) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = delimiter
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
