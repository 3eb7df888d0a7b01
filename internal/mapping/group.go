package mapping

// entry is anything rendered in declaration order.
type entry interface {
	render(s *Sink)
}

// entryID keys children by fragment (or command name) and file type.
type entryID struct {
	key      string
	fileType string
}

// group holds the ordered children of the root or of a prefix.
type group struct {
	entries  []entry
	strokes  map[entryID]*KeyStroke
	commands map[entryID]*UserCommand
}

func (g *group) reset() {
	g.entries = nil
	g.strokes = make(map[entryID]*KeyStroke)
	g.commands = make(map[entryID]*UserCommand)
}

// stroke returns the child for (key, fileType), creating it if needed.
func (g *group) stroke(key, fileType string, parent *Prefix) *KeyStroke {
	id := entryID{key: key, fileType: fileType}
	if ks, ok := g.strokes[id]; ok {
		return ks
	}
	ks := newKeyStroke(key, fileType, parent)
	g.strokes[id] = ks
	g.entries = append(g.entries, ks)
	return ks
}

// lookup returns the child for (key, fileType) without creating it.
func (g *group) lookup(key, fileType string) *KeyStroke {
	return g.strokes[entryID{key: key, fileType: fileType}]
}

func (g *group) addCommand(c *UserCommand) error {
	id := entryID{key: c.Name, fileType: c.FileType}
	if _, ok := g.commands[id]; ok {
		return ErrDuplicate
	}
	g.commands[id] = c
	g.entries = append(g.entries, c)
	return nil
}

func (g *group) render(s *Sink) {
	for _, e := range g.entries {
		e.render(s)
	}
}
