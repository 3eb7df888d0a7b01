package mapping

// strokeKind tags what a key stroke holds.
type strokeKind uint8

const (
	strokeEmpty strokeKind = iota
	strokeLeaf
	strokeBranch
)

// KeyStroke is a tree node identified by a key fragment within a file type
// scope. A leaf holds up to one command per mode; a branch holds one prefix.
type KeyStroke struct {
	key      string
	fileType string
	parent   *Prefix
	kind     strokeKind

	normal *Command
	visual *Command
	prefix *Prefix
}

func newKeyStroke(key, fileType string, parent *Prefix) *KeyStroke {
	return &KeyStroke{key: key, fileType: fileType, parent: parent}
}

// Key returns the fragment this node contributes.
func (k *KeyStroke) Key() string {
	return k.key
}

// FileType returns the file type scope the node was created in.
func (k *KeyStroke) FileType() string {
	return k.fileType
}

// FullKey returns the key sequence from the root to this node.
// Under the leader the sequence starts with <leader>.
func (k *KeyStroke) FullKey() string {
	if k.parent == nil {
		return k.key
	}
	return k.parent.key + k.key
}

// Indent returns the indentation of the node's rendered lines.
func (k *KeyStroke) Indent() int {
	if k.parent == nil {
		return 0
	}
	return k.parent.indent + 2
}

// Normal returns the normal mode command, or nil.
func (k *KeyStroke) Normal() *Command {
	return k.normal
}

// Visual returns the visual mode command, or nil.
func (k *KeyStroke) Visual() *Command {
	return k.visual
}

// Prefix returns the nested prefix, or nil.
func (k *KeyStroke) Prefix() *Prefix {
	return k.prefix
}

// setCommand attaches c in its mode slot.
func (k *KeyStroke) setCommand(c *Command) error {
	if k.kind == strokeBranch {
		return ErrConflict
	}
	slot := &k.normal
	if c.Mode == ModeVisual {
		slot = &k.visual
	}
	if *slot != nil {
		return ErrDuplicate
	}
	*slot = c
	k.kind = strokeLeaf
	return nil
}

// setPrefix turns the node into a branch.
func (k *KeyStroke) setPrefix(p *Prefix) error {
	switch k.kind {
	case strokeBranch:
		return ErrDuplicate
	case strokeLeaf:
		return ErrConflict
	}
	k.prefix = p
	k.kind = strokeBranch
	return nil
}

func (k *KeyStroke) render(s *Sink) {
	var menu *helpMenu
	if k.parent != nil {
		menu = &k.parent.menu
	}
	indent, full := k.Indent(), k.FullKey()
	if k.normal != nil {
		k.normal.render(s, indent, full, k.key, menu)
	}
	if k.visual != nil {
		k.visual.render(s, indent, full, k.key, menu)
	}
	if k.prefix != nil {
		k.prefix.render(s)
	}
}
