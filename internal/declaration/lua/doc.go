// Package lua evaluates Lua mapping declarations in a sandboxed gopher-lua
// state.
//
// A declaration calls the globals installed by Install:
//
//	leader("<space>", function(p)
//	    p.normal("w", ":w<CR>", "Write buffer")
//	    p.prefix("g", { name = "Git", desc = "Git commands" }, function(g)
//	        g.normal("s", ":Git<CR>", "Status")
//	        g.visual("b", ":Git blame<CR>", { desc = "Blame", filetype = "go" })
//	    end)
//	end)
//
//	command("Format", ":lua vim.lsp.buf.format()", "Format buffer")
//	normal("Q", "<nop>", "Disable ex mode")
//
// Options are a table with desc, filetype and, for prefix, name keys, or a
// bare string: the description for bindings and commands, the name for a
// prefix. Inside a body the bare globals declare into the innermost open
// prefix, so p.normal(...) and normal(...) are equivalent there.
//
// # Sandbox
//
// Only the base, table, string and math libraries are opened. dofile,
// loadfile, load, loadstring, require and module are removed, and print is
// routed to the printer configured with WithPrinter. Each evaluation runs
// under a context deadline set by WithExecutionTimeout.
package lua
