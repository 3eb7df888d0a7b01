// Package mapping provides the key mapping tree and its Vim script renderer.
//
// A Tree is built from declarations (normal and visual bindings, editor
// commands, prefixes and the leader) and rendered into an ordered list of
// Vim script statements. The tree is rebuilt from scratch for every
// compilation run; nothing is persisted.
//
// # Key Concepts
//
// KeyStroke: A node identified by a key fragment and a file type. It holds
// either commands (at most one per mode) or a nested Prefix, never both.
//
// Prefix: A named group of key strokes sharing a leading key sequence. Every
// prefix owns a which-key help menu variable describing its children.
//
// Leader: The distinguished top-level prefix bound to mapleader. Its children
// use the symbolic <leader> key and register into g:which_key_map.
//
// Scope: The builder handle passed to declaration bodies. Declarations made
// through a Scope land in the prefix it wraps.
//
// # Usage
//
//	tree := mapping.New()
//	err := tree.Leader("<space>", func(s *mapping.Scope) error {
//	    return s.Prefix("g", "Git", "Git commands", func(s *mapping.Scope) error {
//	        return s.Normal("s", ":Git<CR>", "Status")
//	    })
//	})
//	if err != nil {
//	    return err
//	}
//	text := tree.Render()
//
// # Rendering
//
// Rendering walks the tree depth first in declaration order. Each node
// writes its own lines to a Sink before its children do. Rendering does not
// mutate the tree, so rendering twice yields identical text.
package mapping
