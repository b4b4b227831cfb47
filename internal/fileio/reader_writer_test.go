package fileio

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

func TestJSONRoundTrip(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, mfs.MkdirAll("/data", 0o755))

	in := map[string]any{"name": "test", "value": 123}
	require.NoError(t, WriteJSON("/data/sample.json", in, WithFS(mfs)))

	got, err := ReadJSON("/data/sample.json", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestJSONRoundTrip_Nested(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, mfs.MkdirAll("/data", 0o755))

	in := map[string]any{
		"name":    "测试配置",
		"version": "1.0.0",
		"settings": map[string]any{
			"debug":       true,
			"log_level":   "INFO",
			"max_retries": 3,
			"ratio":       0.5,
		},
		"users": []any{
			map[string]any{"id": 1, "name": "用户1"},
			map[string]any{"id": 2, "name": "<b>&</b>"},
		},
		"empty": nil,
	}
	require.NoError(t, WriteJSON("/data/config.json", in, WithFS(mfs)))

	got, err := ReadJSON("/data/config.json", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, in, got)

	raw, err := util.ReadFile(mfs, "/data/config.json")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "测试配置")
	assert.Contains(t, string(raw), "<b>&</b>")
	assert.Contains(t, string(raw), "\n    \"empty\": null")
}

func TestWriteJSON_CompactIndent(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, mfs.MkdirAll("/data", 0o755))

	require.NoError(t, WriteJSON("/data/c.json", map[string]any{"a": 1, "b": []any{"x"}}, WithFS(mfs), WithIndent(0)))
	raw, err := util.ReadFile(mfs, "/data/c.json")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1,\"b\":[\"x\"]}\n", string(raw))
}

func TestReadJSONInto(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, util.WriteFile(mfs, "/cfg.json", []byte(`{"name":"test","value":123}`), 0o644))

	var cfg struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	require.NoError(t, ReadJSONInto("/cfg.json", &cfg, WithFS(mfs)))
	assert.Equal(t, "test", cfg.Name)
	assert.Equal(t, 123, cfg.Value)
}

func TestReadJSON_Malformed(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, util.WriteFile(mfs, "/bad.json", []byte(`{"name": `), 0o644))
	require.NoError(t, util.WriteFile(mfs, "/trailing.json", []byte(`{"a":1} {"b":2}`), 0o644))

	_, err := ReadJSON("/bad.json", WithFS(mfs))
	require.Error(t, err)
	var pe *PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "read-json", pe.Op)
	assert.Equal(t, "/bad.json", pe.Path)

	_, err = ReadJSON("/trailing.json", WithFS(mfs))
	require.Error(t, err)
}

func TestDecodeJSON_Numbers(t *testing.T) {
	v, err := DecodeJSON([]byte(`[1, -2, 2.5, 1e3, 9223372036854775807]`))
	require.NoError(t, err)
	assert.Equal(t, []any{1, -2, 2.5, 1000.0, 9223372036854775807}, v)
}

func TestYAMLRoundTrip(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, mfs.MkdirAll("/data", 0o755))

	in := map[string]any{
		"name":  "test",
		"value": 123,
		"items": []any{"a", "b", "c"},
		"nested": map[string]any{
			"enabled": true,
			"ratio":   0.25,
			"zip":     "01234",
			"none":    nil,
		},
	}
	require.NoError(t, WriteYAML("/data/sample.yaml", in, WithFS(mfs)))

	got, err := ReadYAML("/data/sample.yaml", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestWriteYAML_Canonical(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, mfs.MkdirAll("/data", 0o755))

	in := map[string]any{
		"z": 1,
		"a": map[string]any{
			"d": 4,
			"b": 2,
			"c": map[string]any{"y": 2, "x": 1},
		},
	}
	require.NoError(t, WriteYAML("/data/m.yaml", in, WithFS(mfs)))
	raw, err := util.ReadFile(mfs, "/data/m.yaml")
	require.NoError(t, err)
	want := "a:\n  b: 2\n  c:\n    x: 1\n    y: 2\n  d: 4\nz: 1\n"
	assert.Equal(t, want, string(raw))

	// Rewriting the same value yields identical bytes.
	require.NoError(t, WriteYAML("/data/m2.yaml", in, WithFS(mfs)))
	raw2, err := util.ReadFile(mfs, "/data/m2.yaml")
	require.NoError(t, err)
	assert.Equal(t, raw, raw2)
}

func TestReadYAML_EmptyAndInto(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, util.WriteFile(mfs, "/empty.yaml", nil, 0o644))
	require.NoError(t, util.WriteFile(mfs, "/cfg.yaml", []byte("name: demo\nport: 8080\n"), 0o644))

	v, err := ReadYAML("/empty.yaml", WithFS(mfs))
	require.NoError(t, err)
	assert.Nil(t, v)

	var cfg struct {
		Name string `yaml:"name"`
		Port int    `yaml:"port"`
	}
	require.NoError(t, ReadYAMLInto("/cfg.yaml", &cfg, WithFS(mfs)))
	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
}

func TestReadYAML_Malformed(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, util.WriteFile(mfs, "/bad.yaml", []byte("a: [1, 2\n"), 0o644))

	_, err := ReadYAML("/bad.yaml", WithFS(mfs))
	var pe *PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "read-yaml", pe.Op)
}

func TestCSVRoundTrip(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, mfs.MkdirAll("/data", 0o755))

	rows := []map[string]string{
		{"id": "1", "name": "产品1", "price": "100.0"},
		{"id": "2", "name": "product, two", "price": "200.0"},
		{"id": "3", "name": "say \"hi\"", "price": "300.0"},
	}
	require.NoError(t, WriteCSV("/data/data.csv", rows, WithFS(mfs), WithFieldNames("id", "name", "price")))

	got, err := ReadCSV("/data/data.csv", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	raw, err := ReadCSVRows("/data/data.csv", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "price"}, raw[0])
	assert.Len(t, raw, 4)
}

func TestWriteCSV_DefaultFieldsAndDelimiter(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, mfs.MkdirAll("/data", 0o755))

	rows := []map[string]string{
		{"b": "2", "a": "1"},
		{"a": "3"},
	}
	require.NoError(t, WriteCSV("/data/semi.csv", rows, WithFS(mfs), WithDelimiter(';')))

	text, err := ReadText("/data/semi.csv", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, "a;b\n1;2\n3;\n", text)

	got, err := ReadCSV("/data/semi.csv", WithFS(mfs), WithDelimiter(';'))
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{{"a": "1", "b": "2"}, {"a": "3", "b": ""}}, got)
}

func TestWriteCSV_Errors(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, mfs.MkdirAll("/data", 0o755))

	err := WriteCSV("/data/x.csv", nil, WithFS(mfs))
	require.ErrorIs(t, err, ErrNoRows)

	err = WriteCSV("/data/x.csv", []map[string]string{{}}, WithFS(mfs))
	require.ErrorIs(t, err, ErrNoFieldNames)

	err = WriteCSV("/data/x.csv", []map[string]string{{"a": "1", "extra": "2"}}, WithFS(mfs), WithFieldNames("a"))
	require.ErrorIs(t, err, ErrUnknownField)

	assert.False(t, FileExists("/data/x.csv", WithFS(mfs)))
}

func TestReadCSV_EmptyAndRagged(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, util.WriteFile(mfs, "/empty.csv", nil, 0o644))
	require.NoError(t, util.WriteFile(mfs, "/header.csv", []byte("a,b\n"), 0o644))
	require.NoError(t, util.WriteFile(mfs, "/ragged.csv", []byte("a,b\n1,2,3\n"), 0o644))

	rows, err := ReadCSV("/empty.csv", WithFS(mfs))
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)

	rows, err = ReadCSV("/header.csv", WithFS(mfs))
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = ReadCSV("/ragged.csv", WithFS(mfs))
	require.Error(t, err)
}

func TestCSVRowsRoundTrip(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, mfs.MkdirAll("/data", 0o755))

	rows := [][]string{{"h1", "h2"}, {"x", "multi\nline"}}
	require.NoError(t, WriteCSVRows("/data/rows.csv", rows, WithFS(mfs)))
	got, err := ReadCSVRows("/data/rows.csv", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestTextAndLines(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, mfs.MkdirAll("/data", 0o755))

	content := "Hello, World!\nThis is a test file."
	require.NoError(t, WriteText("/data/sample.txt", content, WithFS(mfs)))
	got, err := ReadText("/data/sample.txt", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, WriteText("/data/sample.txt", "short", WithFS(mfs)))
	got, err = ReadText("/data/sample.txt", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, "short", got)

	require.NoError(t, AppendText("/data/sample.txt", "\nmore", WithFS(mfs)))
	lines, err := ReadLines("/data/sample.txt", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, []string{"short", "more"}, lines)

	require.NoError(t, WriteLines("/data/lines.txt", []string{"a", "", "c"}, WithFS(mfs)))
	lines, err = ReadLines("/data/lines.txt", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "c"}, lines)
}

func TestReadLines_CRLF(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, util.WriteFile(mfs, "/crlf.txt", []byte("one\r\ntwo\r\n"), 0o644))
	require.NoError(t, util.WriteFile(mfs, "/empty.txt", nil, 0o644))

	lines, err := ReadLines("/crlf.txt", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)

	require.NoError(t, util.WriteFile(mfs, "/cr.txt", []byte("one\rtwo\r\nthree\r"), 0o644))
	lines, err = ReadLines("/cr.txt", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)

	lines, err = ReadLines("/empty.txt", WithFS(mfs))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestEncoding(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, mfs.MkdirAll("/data", 0o755))

	require.NoError(t, WriteText("/data/gbk.txt", "文件工具库", WithFS(mfs), WithEncoding("gbk")))
	raw, err := util.ReadFile(mfs, "/data/gbk.txt")
	require.NoError(t, err)
	assert.Len(t, raw, 10)

	got, err := ReadText("/data/gbk.txt", WithFS(mfs), WithEncoding("gbk"))
	require.NoError(t, err)
	assert.Equal(t, "文件工具库", got)

	_, err = ReadText("/data/gbk.txt", WithFS(mfs), WithEncoding("no-such-encoding"))
	require.ErrorIs(t, err, ErrUnknownEncoding)

	err = WriteText("/data/latin.txt", "文", WithFS(mfs), WithEncoding("iso-8859-1"))
	require.Error(t, err)
}

func TestInvalidUTF8(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, util.WriteFile(mfs, "/bad.txt", []byte("a\xff\xfeb"), 0o644))
	require.NoError(t, util.WriteFile(mfs, "/bad.json", []byte("{\"k\":\"a\xffb\"}"), 0o644))
	require.NoError(t, util.WriteFile(mfs, "/bad.csv", []byte("h\n\xff\n"), 0o644))
	require.NoError(t, util.WriteFile(mfs, "/bad.yaml", []byte("k: \xff\n"), 0o644))

	readers := map[string]func() error{
		"text":  func() error { _, err := ReadText("/bad.txt", WithFS(mfs)); return err },
		"lines": func() error { _, err := ReadLines("/bad.txt", WithFS(mfs)); return err },
		"json":  func() error { _, err := ReadJSON("/bad.json", WithFS(mfs)); return err },
		"csv":   func() error { _, err := ReadCSV("/bad.csv", WithFS(mfs)); return err },
		"yaml":  func() error { _, err := ReadYAML("/bad.yaml", WithFS(mfs)); return err },
	}
	for name, read := range readers {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, read(), encoding.ErrInvalidUTF8)
		})
	}

	err := WriteText("/out.txt", "a\xffb", WithFS(mfs))
	require.ErrorIs(t, err, encoding.ErrInvalidUTF8)
	_, statErr := mfs.Stat("/out.txt")
	require.ErrorIs(t, statErr, fs.ErrNotExist)

	err = WriteText("/out.txt", "a\xffb", WithFS(mfs), WithEncoding("gbk"))
	require.ErrorIs(t, err, encoding.ErrInvalidUTF8)
}

func TestReadYAML_NonStringKeys(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, util.WriteFile(mfs, "/k.yaml", []byte("1: a\n2:\n  true: b\nlist:\n  - 3: c\n"), 0o644))

	got, err := ReadYAML("/k.yaml", WithFS(mfs))
	require.NoError(t, err)
	want := map[string]any{
		"1":    "a",
		"2":    map[string]any{"true": "b"},
		"list": []any{map[string]any{"3": "c"}},
	}
	assert.Equal(t, want, got)

	require.NoError(t, WriteJSON("/k.json", got, WithFS(mfs)))
	back, err := ReadJSON("/k.json", WithFS(mfs))
	require.NoError(t, err)
	assert.Equal(t, want, back)
}

func TestReaders_MissingPath(t *testing.T) {
	mfs := memfs.New()
	const missing = "/nope/missing.file"

	readers := map[string]func() error{
		"text":     func() error { _, err := ReadText(missing, WithFS(mfs)); return err },
		"lines":    func() error { _, err := ReadLines(missing, WithFS(mfs)); return err },
		"json":     func() error { _, err := ReadJSON(missing, WithFS(mfs)); return err },
		"jsonInto": func() error { var v any; return ReadJSONInto(missing, &v, WithFS(mfs)) },
		"csv":      func() error { _, err := ReadCSV(missing, WithFS(mfs)); return err },
		"csvRows":  func() error { _, err := ReadCSVRows(missing, WithFS(mfs)); return err },
		"yaml":     func() error { _, err := ReadYAML(missing, WithFS(mfs)); return err },
		"yamlInto": func() error { var v any; return ReadYAMLInto(missing, &v, WithFS(mfs)) },
	}
	for name, read := range readers {
		t.Run(name, func(t *testing.T) {
			err := read()
			require.Error(t, err)
			assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
			var pe *PathError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, missing, pe.Path)
		})
	}
}

func TestWriters_MissingParent(t *testing.T) {
	mfs := memfs.New()
	const target = "/nope/out.file"

	writers := map[string]func() error{
		"text":    func() error { return WriteText(target, "x", WithFS(mfs)) },
		"append":  func() error { return AppendText(target, "x", WithFS(mfs)) },
		"lines":   func() error { return WriteLines(target, []string{"x"}, WithFS(mfs)) },
		"json":    func() error { return WriteJSON(target, map[string]any{"a": 1}, WithFS(mfs)) },
		"csv":     func() error { return WriteCSV(target, []map[string]string{{"a": "1"}}, WithFS(mfs)) },
		"csvRows": func() error { return WriteCSVRows(target, [][]string{{"a"}}, WithFS(mfs)) },
		"yaml":    func() error { return WriteYAML(target, map[string]any{"a": 1}, WithFS(mfs)) },
	}
	for name, write := range writers {
		t.Run(name, func(t *testing.T) {
			err := write()
			require.Error(t, err)
			assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
			_, statErr := mfs.Stat("/nope")
			assert.Error(t, statErr)
		})
	}
}

func TestWriters_LocalDisk(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "disk.json")

	require.NoError(t, WriteJSON(p, map[string]any{"ok": true}))
	got, err := ReadJSON(p)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, got)

	err = WriteJSON(filepath.Join(dir, "missing", "disk.json"), map[string]any{"ok": true})
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteJSON_Unserializable(t *testing.T) {
	mfs := memfs.New()
	require.NoError(t, util.WriteFile(mfs, "/keep.json", []byte("{\"a\":1}\n"), 0o644))

	err := WriteJSON("/keep.json", map[string]any{"ch": make(chan int)}, WithFS(mfs))
	require.Error(t, err)

	raw, err := util.ReadFile(mfs, "/keep.json")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n", string(raw))
}
