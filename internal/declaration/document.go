package declaration

import (
	"fmt"

	schemagen "github.com/invopop/jsonschema"

	"github.com/dshills/vimmapper/internal/mapping"
)

// Document is a declaration expressed as data. YAML, TOML and JSON files
// all decode into it.
type Document struct {
	Leader   *Leader   `json:"leader,omitempty" yaml:"leader,omitempty" toml:"leader,omitempty" jsonschema:"description=Leader key and the mappings under it"`
	Commands []Command `json:"commands,omitempty" yaml:"commands,omitempty" toml:"commands,omitempty" jsonschema:"description=Top level editor commands"`
	Mappings []Mapping `json:"mappings,omitempty" yaml:"mappings,omitempty" toml:"mappings,omitempty" jsonschema:"description=Top level mappings and prefixes"`
}

// Leader declares the leader key.
type Leader struct {
	Key      string    `json:"key" yaml:"key" toml:"key" jsonschema:"minLength=1,description=Value assigned to mapleader"`
	Commands []Command `json:"commands,omitempty" yaml:"commands,omitempty" toml:"commands,omitempty"`
	Mappings []Mapping `json:"mappings,omitempty" yaml:"mappings,omitempty" toml:"mappings,omitempty"`
}

// Command declares an editor command.
type Command struct {
	Name     string `json:"name" yaml:"name" toml:"name" jsonschema:"minLength=1"`
	Action   string `json:"action" yaml:"action" toml:"action"`
	Desc     string `json:"desc,omitempty" yaml:"desc,omitempty" toml:"desc,omitempty"`
	FileType string `json:"filetype,omitempty" yaml:"filetype,omitempty" toml:"filetype,omitempty"`
}

// Mapping declares a key binding, a prefix, or both modes of a binding.
// An entry with a prefix name opens a prefix whose children are listed in
// Mappings and Commands.
type Mapping struct {
	Key      string    `json:"key" yaml:"key" toml:"key" jsonschema:"minLength=1"`
	Desc     string    `json:"desc,omitempty" yaml:"desc,omitempty" toml:"desc,omitempty"`
	Normal   string    `json:"normal,omitempty" yaml:"normal,omitempty" toml:"normal,omitempty" jsonschema:"description=Normal mode action"`
	Visual   string    `json:"visual,omitempty" yaml:"visual,omitempty" toml:"visual,omitempty" jsonschema:"description=Visual mode action"`
	FileType string    `json:"filetype,omitempty" yaml:"filetype,omitempty" toml:"filetype,omitempty"`
	Prefix   string    `json:"prefix,omitempty" yaml:"prefix,omitempty" toml:"prefix,omitempty" jsonschema:"description=Prefix name shown in the help menu"`
	Commands []Command `json:"commands,omitempty" yaml:"commands,omitempty" toml:"commands,omitempty"`
	Mappings []Mapping `json:"mappings,omitempty" yaml:"mappings,omitempty" toml:"mappings,omitempty"`
}

// JSONSchemaExtend requires an action or a prefix name on every entry and a
// prefix name on entries with children.
func (Mapping) JSONSchemaExtend(s *schemagen.Schema) {
	s.AnyOf = []*schemagen.Schema{
		{Required: []string{"normal"}},
		{Required: []string{"visual"}},
		{Required: []string{"prefix"}},
	}
	s.DependentRequired = map[string][]string{
		"mappings": {"prefix"},
		"commands": {"prefix"},
	}
}

// Apply declares the document into tree: commands, then the leader, then
// mappings. Within a prefix, commands precede mappings.
func (d *Document) Apply(tree *mapping.Tree) error {
	root := tree.Root()
	if err := applyCommands(root, d.Commands); err != nil {
		return err
	}
	if d.Leader != nil {
		err := tree.Leader(d.Leader.Key, func(s *mapping.Scope) error {
			if err := applyCommands(s, d.Leader.Commands); err != nil {
				return err
			}
			return applyMappings(s, d.Leader.Mappings)
		})
		if err != nil {
			return err
		}
	}
	return applyMappings(root, d.Mappings)
}

func applyCommands(s *mapping.Scope, cmds []Command) error {
	for _, c := range cmds {
		if err := s.Command(c.Name, c.Action, c.Desc, fileType(c.FileType)...); err != nil {
			return err
		}
	}
	return nil
}

func applyMappings(s *mapping.Scope, ms []Mapping) error {
	for i := range ms {
		if err := ms[i].apply(s); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mapping) apply(s *mapping.Scope) error {
	opts := fileType(m.FileType)

	switch {
	case m.Prefix != "":
		err := s.Prefix(m.Key, m.Prefix, m.Desc, func(p *mapping.Scope) error {
			if err := applyCommands(p, m.Commands); err != nil {
				return err
			}
			return applyMappings(p, m.Mappings)
		}, opts...)
		if err != nil {
			return err
		}
	case len(m.Mappings) > 0 || len(m.Commands) > 0:
		return fmt.Errorf("%w: mapping %q has children but no prefix name", ErrInvalidDocument, m.Key)
	case m.Normal == "" && m.Visual == "":
		return fmt.Errorf("%w: mapping %q has no normal, visual or prefix", ErrInvalidDocument, m.Key)
	}

	if m.Normal != "" {
		if err := s.Normal(m.Key, m.Normal, m.Desc, opts...); err != nil {
			return err
		}
	}
	if m.Visual != "" {
		if err := s.Visual(m.Key, m.Visual, m.Desc, opts...); err != nil {
			return err
		}
	}
	return nil
}

func fileType(ft string) []mapping.Option {
	if ft == "" {
		return nil
	}
	return []mapping.Option{mapping.WithFileType(ft)}
}
