package mapping

// Option configures a declaration.
type Option func(*options)

type options struct {
	fileType string
}

// WithFileType scopes a declaration to buffers of the given file type.
// Declarations without one inherit the enclosing prefix's file type.
func WithFileType(fileType string) Option {
	return func(o *options) {
		o.fileType = fileType
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Scope is the declaration context handed to prefix and leader bodies.
// Declarations made through a Scope are added to the prefix it wraps, or
// to the top level for the tree's root scope.
type Scope struct {
	tree   *Tree
	prefix *Prefix
}

// Current returns the prefix this scope declares into, or nil at top level.
func (s *Scope) Current() *Prefix {
	return s.prefix
}

func (s *Scope) group() *group {
	if s.prefix == nil {
		return &s.tree.group
	}
	return &s.prefix.group
}

func (s *Scope) fileType(o options) string {
	if o.fileType != "" {
		return o.fileType
	}
	if s.prefix != nil {
		return s.prefix.fileType
	}
	return ""
}

// Normal declares a normal mode binding.
func (s *Scope) Normal(key, action, desc string, opts ...Option) error {
	return s.bind(ModeNormal, key, action, desc, opts)
}

// Visual declares a visual mode binding.
func (s *Scope) Visual(key, action, desc string, opts ...Option) error {
	return s.bind(ModeVisual, key, action, desc, opts)
}

func (s *Scope) bind(mode Mode, key, action, desc string, opts []Option) error {
	ft := s.fileType(applyOptions(opts))
	if key == "" {
		return &DefinitionError{Kind: mode.kind(), Key: key, FileType: ft, Err: ErrEmptyKey}
	}
	ks := s.group().stroke(key, ft, s.prefix)
	cmd := &Command{Mode: mode, Action: action, Desc: desc, FileType: ft}
	if err := ks.setCommand(cmd); err != nil {
		return &DefinitionError{Kind: mode.kind(), Key: key, FileType: ft, Err: err}
	}
	return nil
}

// Command declares an editor command.
func (s *Scope) Command(name, action, desc string, opts ...Option) error {
	ft := s.fileType(applyOptions(opts))
	if name == "" {
		return &DefinitionError{Kind: KindCommand, Key: name, FileType: ft, Err: ErrEmptyName}
	}
	cmd := &UserCommand{Name: name, Action: action, Desc: desc, FileType: ft, parent: s.prefix}
	if err := s.group().addCommand(cmd); err != nil {
		return &DefinitionError{Kind: KindCommand, Key: name, FileType: ft, Err: err}
	}
	return nil
}

// Prefix declares a prefix at key and evaluates body in its scope.
// A nil body declares an empty prefix.
func (s *Scope) Prefix(key, name, desc string, body func(*Scope) error, opts ...Option) error {
	ft := s.fileType(applyOptions(opts))
	if key == "" {
		return &DefinitionError{Kind: KindPrefix, Key: key, FileType: ft, Err: ErrEmptyKey}
	}
	if name == "" {
		return &DefinitionError{Kind: KindPrefix, Key: key, FileType: ft, Err: ErrEmptyName}
	}
	ks := s.group().stroke(key, ft, s.prefix)
	p := newPrefix(name, desc, ft, ks)
	if err := ks.setPrefix(p); err != nil {
		return &DefinitionError{Kind: KindPrefix, Key: key, FileType: ft, Err: err}
	}
	if body == nil {
		return nil
	}
	return body(&Scope{tree: s.tree, prefix: p})
}
