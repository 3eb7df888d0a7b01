package mapping

// Binding is a flattened view of one rendered key binding.
type Binding struct {
	Mode     Mode
	Keys     string
	Action   string
	Desc     string
	FileType string
	// Prefix is the display name of the owning prefix, or "".
	Prefix string
}

// Stats summarizes a tree.
type Stats struct {
	Prefixes int
	Normal   int
	Visual   int
	Commands int
	Leader   bool
}

// Bindings returns every key binding in render order.
func (t *Tree) Bindings() []Binding {
	var out []Binding
	t.walk(&t.group, func(e entry) {
		ks, ok := e.(*KeyStroke)
		if !ok {
			return
		}
		owner := ""
		if ks.parent != nil {
			owner = ks.parent.name
		}
		for _, c := range []*Command{ks.normal, ks.visual} {
			if c == nil {
				continue
			}
			out = append(out, Binding{
				Mode:     c.Mode,
				Keys:     ks.FullKey(),
				Action:   c.Action,
				Desc:     c.Desc,
				FileType: c.FileType,
				Prefix:   owner,
			})
		}
	})
	return out
}

// Commands returns every editor command definition in render order.
func (t *Tree) Commands() []UserCommand {
	var out []UserCommand
	t.walk(&t.group, func(e entry) {
		if c, ok := e.(*UserCommand); ok {
			out = append(out, *c)
		}
	})
	return out
}

// Stats counts the declarations in the tree.
func (t *Tree) Stats() Stats {
	st := Stats{Leader: t.leader != nil}
	t.walk(&t.group, func(e entry) {
		switch v := e.(type) {
		case *UserCommand:
			st.Commands++
		case *KeyStroke:
			if v.normal != nil {
				st.Normal++
			}
			if v.visual != nil {
				st.Visual++
			}
			if v.prefix != nil && !v.prefix.IsLeader() {
				st.Prefixes++
			}
		}
	})
	return st
}

// walk visits entries depth first in declaration order.
func (t *Tree) walk(g *group, fn func(entry)) {
	for _, e := range g.entries {
		fn(e)
		if ks, ok := e.(*KeyStroke); ok && ks.prefix != nil {
			t.walk(&ks.prefix.group, fn)
		}
	}
}
