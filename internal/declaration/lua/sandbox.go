package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// removedGlobals are base library functions that reach the file system or
// load code from outside the declaration.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
}

// openSafeLibraries opens only the libraries a declaration needs.
// io, os, debug, package and channel are never opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// installSandbox strips loaders from the base library and routes print
// through printer.
func installSandbox(L *lua.LState, printer func(string)) {
	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		if printer != nil {
			printer(strings.Join(parts, "\t"))
		}
		return 0
	}))
}
