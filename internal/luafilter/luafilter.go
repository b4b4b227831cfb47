// Package luafilter keeps listed files that satisfy a Lua predicate.
//
// The predicate sees the globals path, name, ext and size. An expression
// without an explicit return is wrapped as "return (<expr>)", so
// `size > 10 and ext == ".csv"` and `return name ~= "skip.csv"` are both valid.
package luafilter

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

const (
	chunkName      = "where"
	defaultTimeout = 2 * time.Second
)

// ErrTimeout is returned when a predicate runs past its time budget.
var ErrTimeout = errors.New("sandbox timeout")

// Entry is the file view exposed to a predicate.
type Entry struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Ext  string `json:"ext"`
	Size int64  `json:"size"`
}

// Predicate is a compiled Lua expression. It is safe to reuse; every Match
// runs in a fresh Lua state.
type Predicate struct {
	proto   *lua.FunctionProto
	timeout time.Duration
}

// Option configures a Predicate.
type Option func(*Predicate)

// WithTimeout bounds a single evaluation. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(p *Predicate) { p.timeout = d }
}

// Compile parses expr once. expr is either an expression or a chunk of
// statements ending in a return.
func Compile(expr string, opts ...Option) (*Predicate, error) {
	code := wrapExpression(expr)
	chunk, err := parse.Parse(strings.NewReader(code), chunkName)
	if err != nil && code != strings.TrimSpace(expr) {
		if stmts, serr := parse.Parse(strings.NewReader(expr), chunkName); serr == nil {
			chunk, err = stmts, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("where: %s", oneLine(err.Error()))
	}
	proto, err := lua.Compile(chunk, chunkName)
	if err != nil {
		return nil, fmt.Errorf("where: %s", oneLine(err.Error()))
	}
	p := &Predicate{proto: proto, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Match reports whether e satisfies the predicate. Lua truthiness applies:
// only nil and false reject.
func (p *Predicate) Match(ctx context.Context, e Entry) (bool, error) {
	L := newSandboxState()
	defer L.Close()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	L.SetContext(ctx)

	L.SetGlobal("path", lua.LString(e.Path))
	L.SetGlobal("name", lua.LString(e.Name))
	L.SetGlobal("ext", lua.LString(e.Ext))
	L.SetGlobal("size", lua.LNumber(e.Size))

	L.Push(L.NewFunctionFromProto(p.proto))
	if err := L.PCall(0, 1, nil); err != nil {
		if ctx.Err() != nil {
			return false, fmt.Errorf("where %s: %w", e.Path, ErrTimeout)
		}
		return false, fmt.Errorf("where %s: %s", e.Path, oneLine(err.Error()))
	}
	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(ret), nil
}

// Filter returns the entries accepted by expr, in their original order.
func Filter(ctx context.Context, expr string, entries []Entry, opts ...Option) ([]Entry, error) {
	p, err := Compile(expr, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		keep, err := p.Match(ctx, e)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, e)
		}
	}
	return out, nil
}

// newSandboxState opens only the base, string, table and math libraries,
// with file loading removed from base.
func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

var leadingReturn = regexp.MustCompile(`^return\b`)

// wrapExpression turns a bare expression into a chunk returning it. Code
// that already starts with a return statement is used as is.
func wrapExpression(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "return true"
	}
	if leadingReturn.MatchString(code) {
		return code
	}
	return "return (" + code + ")"
}

func oneLine(msg string) string {
	s := strings.Join(strings.Fields(msg), " ")
	if s == "" {
		return "error"
	}
	return s
}
