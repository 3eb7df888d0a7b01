package lua

import (
	"context"
	"errors"
	"io"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimmapper/internal/mapping"
)

// Option keys accepted in declaration tables.
const (
	optDesc     = "desc"
	optFileType = "filetype"
	optName     = "name"
)

// DSL exposes a mapping tree to Lua through the normal, visual, command,
// prefix and leader globals.
type DSL struct {
	state  *State
	tree   *mapping.Tree
	bridge *Bridge

	// scopes is the stack of open prefix bodies; the globals declare into
	// the innermost one.
	scopes []*mapping.Scope

	// err holds the first definition error raised during a run.
	err error
}

// Install registers the declaration globals on s.
func Install(s *State, tree *mapping.Tree) *DSL {
	d := &DSL{
		state:  s,
		tree:   tree,
		bridge: NewBridge(s.L),
		scopes: []*mapping.Scope{tree.Root()},
	}
	for name, fn := range d.functions(d.current, nil) {
		s.RegisterFunc(name, fn)
	}
	s.RegisterFunc("leader", d.leader)
	return d
}

// Evaluate runs the Lua declaration read from r against tree in a fresh
// sandboxed state. Definition errors are returned with their original type.
func Evaluate(ctx context.Context, tree *mapping.Tree, r io.Reader, name string, opts ...StateOption) error {
	s := NewState(opts...)
	defer s.Close()
	return Install(s, tree).Run(ctx, r, name)
}

// Run executes a chunk. A definition error aborts the chunk and is returned
// even when the script catches it with pcall.
func (d *DSL) Run(ctx context.Context, r io.Reader, name string) error {
	d.err = nil
	d.scopes = d.scopes[:1]
	err := d.state.Do(ctx, r, name)
	if d.err != nil {
		return d.err
	}
	return err
}

func (d *DSL) current() *mapping.Scope {
	return d.scopes[len(d.scopes)-1]
}

// functions builds the declaration functions for a scope. When self is set
// the functions are fields of that table and accept method call syntax.
func (d *DSL) functions(scope func() *mapping.Scope, self *lua.LTable) map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"normal":  d.binding(scope, self, mapping.ModeNormal),
		"visual":  d.binding(scope, self, mapping.ModeVisual),
		"command": d.command(scope, self),
		"prefix":  d.prefix(scope, self),
	}
}

func (d *DSL) binding(scope func() *mapping.Scope, self *lua.LTable, mode mapping.Mode) lua.LGFunction {
	return func(L *lua.LState) int {
		dropSelf(L, self)
		key := L.CheckString(1)
		action := L.CheckString(2)
		o := d.options(L, 3, optDesc, optDesc, optFileType)

		var err error
		if mode == mapping.ModeVisual {
			err = scope().Visual(key, action, o.desc, o.mappingOptions()...)
		} else {
			err = scope().Normal(key, action, o.desc, o.mappingOptions()...)
		}
		d.check(L, err)
		return 0
	}
}

func (d *DSL) command(scope func() *mapping.Scope, self *lua.LTable) lua.LGFunction {
	return func(L *lua.LState) int {
		dropSelf(L, self)
		name := L.CheckString(1)
		action := L.CheckString(2)
		o := d.options(L, 3, optDesc, optDesc, optFileType)
		d.check(L, scope().Command(name, action, o.desc, o.mappingOptions()...))
		return 0
	}
}

func (d *DSL) prefix(scope func() *mapping.Scope, self *lua.LTable) lua.LGFunction {
	return func(L *lua.LState) int {
		dropSelf(L, self)
		key := L.CheckString(1)
		o := d.options(L, 2, optName, optName, optDesc, optFileType)
		body := L.OptFunction(3, nil)
		d.check(L, scope().Prefix(key, o.name, o.desc, d.body(L, body), o.mappingOptions()...))
		return 0
	}
}

func (d *DSL) leader(L *lua.LState) int {
	key := L.CheckString(1)
	body := L.OptFunction(2, nil)
	d.check(L, d.tree.Leader(key, d.body(L, body)))
	return 0
}

// body adapts a Lua function into a prefix body. The function is called with
// a scope table and the scope stays on the stack while it runs.
func (d *DSL) body(L *lua.LState, fn *lua.LFunction) func(*mapping.Scope) error {
	if fn == nil {
		return nil
	}
	return func(s *mapping.Scope) error {
		d.scopes = append(d.scopes, s)
		defer func() { d.scopes = d.scopes[:len(d.scopes)-1] }()
		return L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, d.scopeTable(L, s))
	}
}

func (d *DSL) scopeTable(L *lua.LState, s *mapping.Scope) *lua.LTable {
	t := L.NewTable()
	L.SetFuncs(t, d.functions(func() *mapping.Scope { return s }, t))
	if p := s.Current(); p != nil {
		t.RawSetString("key", lua.LString(p.Key()))
		t.RawSetString("name", lua.LString(p.Name()))
	}
	return t
}

// check raises err in Lua. Errors from a nested Lua body are re-raised
// unchanged; definition errors are recorded so Run can return them.
func (d *DSL) check(L *lua.LState, err error) {
	if err == nil {
		return
	}
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && d.err == nil {
		L.Error(apiErr.Object, 0)
		return
	}
	if d.err == nil {
		d.err = err
	}
	L.RaiseError("%s", err.Error())
}

type declOptions struct {
	desc     string
	fileType string
	name     string
}

func (o declOptions) mappingOptions() []mapping.Option {
	if o.fileType == "" {
		return nil
	}
	return []mapping.Option{mapping.WithFileType(o.fileType)}
}

// options reads the argument at n: nil, a bare string stored under bare,
// or a table restricted to the allowed keys.
func (d *DSL) options(L *lua.LState, n int, bare string, allowed ...string) declOptions {
	var fields map[string]string
	switch v := L.Get(n).(type) {
	case *lua.LNilType:
	case lua.LString:
		fields = map[string]string{bare: string(v)}
	case *lua.LTable:
		f, err := d.bridge.StringFields(v, allowed...)
		if err != nil {
			L.ArgError(n, err.Error())
		}
		fields = f
	default:
		L.ArgError(n, "string or table expected, got "+v.Type().String())
	}
	return declOptions{
		desc:     fields[optDesc],
		fileType: fields[optFileType],
		name:     fields[optName],
	}
}

// dropSelf removes the receiver pushed by method call syntax (p:normal).
func dropSelf(L *lua.LState, self *lua.LTable) {
	if self != nil && L.GetTop() > 0 && L.Get(1) == self {
		L.Remove(1)
	}
}
