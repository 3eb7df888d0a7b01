package mapping

import "fmt"

// Mode is the editor mode a binding applies to.
type Mode uint8

const (
	// ModeNormal binds in normal mode.
	ModeNormal Mode = iota
	// ModeVisual binds in visual mode.
	ModeVisual
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeVisual:
		return "visual"
	default:
		return "unknown"
	}
}

// mapCommand returns the non-recursive map command for the mode.
func (m Mode) mapCommand() string {
	if m == ModeVisual {
		return "xnoremap"
	}
	return "nnoremap"
}

func (m Mode) kind() Kind {
	if m == ModeVisual {
		return KindVisual
	}
	return KindNormal
}

// Command is a concrete binding attached to a key stroke.
type Command struct {
	Mode     Mode
	Action   string
	Desc     string
	FileType string
}

// render writes the binding. key is the fragment registered in the help
// menu; menu is nil for bindings outside any prefix.
func (c *Command) render(s *Sink, indent int, fullKey, key string, menu *helpMenu) {
	lines := []string{
		comment(c.Desc),
		guard(c.FileType, fmt.Sprintf("%s <silent> %s %s", c.Mode.mapCommand(), fullKey, c.Action)),
	}
	if c.Mode == ModeNormal && menu != nil {
		lines = append(lines, guard(c.FileType, fmt.Sprintf("call extend(%s, {'%s':'%s'})",
			menu.dictPath(), quote(key), quote(helpLabel(c.Desc)))))
	}
	s.writeIndented(indent, lines...)
}

// UserCommand is an editor command definition (command!), not bound to a key.
type UserCommand struct {
	Name     string
	Action   string
	Desc     string
	FileType string

	parent *Prefix
}

func (c *UserCommand) render(s *Sink) {
	indent := 0
	if c.parent != nil {
		indent = c.parent.indent + 2
	}
	s.writeIndented(indent,
		comment(c.Desc),
		guard(c.FileType, "command! "+c.Name+" "+c.Action),
	)
}
