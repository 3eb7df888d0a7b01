package mapping

// Tree is the root registry of a mapping declaration.
//
// A Tree is not safe for concurrent use. Build it, render it and discard it
// within a single compilation run.
type Tree struct {
	group

	leader *Prefix
	root   *Scope
}

// New creates an empty tree.
func New() *Tree {
	t := &Tree{}
	t.root = &Scope{tree: t}
	t.Reset()
	return t
}

// Reset clears every declaration, including the leader.
func (t *Tree) Reset() {
	t.group.reset()
	t.leader = nil
}

// Root returns the top-level scope.
func (t *Tree) Root() *Scope {
	return t.root
}

// LeaderPrefix returns the leader prefix, or nil if none was declared.
func (t *Tree) LeaderPrefix() *Prefix {
	return t.leader
}

// Lookup returns the top-level key stroke for (key, fileType), or nil.
func (t *Tree) Lookup(key, fileType string) *KeyStroke {
	return t.lookup(key, fileType)
}

// Normal declares a top-level normal mode binding.
func (t *Tree) Normal(key, action, desc string, opts ...Option) error {
	return t.root.Normal(key, action, desc, opts...)
}

// Visual declares a top-level visual mode binding.
func (t *Tree) Visual(key, action, desc string, opts ...Option) error {
	return t.root.Visual(key, action, desc, opts...)
}

// Command declares a top-level editor command.
func (t *Tree) Command(name, action, desc string, opts ...Option) error {
	return t.root.Command(name, action, desc, opts...)
}

// Prefix declares a top-level prefix and evaluates body inside it.
func (t *Tree) Prefix(key, name, desc string, body func(*Scope) error, opts ...Option) error {
	return t.root.Prefix(key, name, desc, body, opts...)
}

// Leader declares the leader prefix bound to key and evaluates body inside
// it. Children of the leader use <leader> in their key sequences.
func (t *Tree) Leader(key string, body func(*Scope) error) error {
	if key == "" {
		return &DefinitionError{Kind: KindLeader, Key: key, Err: ErrEmptyKey}
	}
	if t.leader != nil {
		return &DefinitionError{Kind: KindLeader, Key: key, Err: ErrLeaderDefined}
	}
	ks := t.stroke(leaderKey, "", nil)
	p := newLeader(key, ks)
	if err := ks.setPrefix(p); err != nil {
		return &DefinitionError{Kind: KindLeader, Key: key, Err: err}
	}
	t.leader = p
	if body == nil {
		return nil
	}
	return body(&Scope{tree: t, prefix: p})
}

// RenderTo resets s and renders the tree into it.
func (t *Tree) RenderTo(s *Sink) {
	s.Reset()
	t.group.render(s)
}

// Render renders the tree and returns the Vim script text.
func (t *Tree) Render() string {
	s := NewSink()
	t.RenderTo(s)
	return s.Flush()
}
