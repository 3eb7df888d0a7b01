package declaration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	schemagen "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "declaration.schema.json"

var (
	schemaOnce     sync.Once
	schemaJSON     []byte
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// Schema returns the JSON Schema that data documents are validated against.
func Schema() ([]byte, error) {
	loadSchema()
	if schemaErr != nil {
		return nil, schemaErr
	}
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)
	return out, nil
}

func loadSchema() {
	schemaOnce.Do(func() {
		r := &schemagen.Reflector{
			Anonymous: true,
		}
		s := r.Reflect(&Document{})
		s.Title = "vimmapper declaration"
		s.Description = "Key mappings and which-key help menus compiled to Vim script."

		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiled, err := compiler.Compile(schemaURL)
		if err != nil {
			schemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}

		schemaJSON = append(data, '\n')
		schemaCompiled = compiled
	})
}

// validate checks a decoded document against the schema. v must hold
// JSON-compatible values.
func validate(path string, v any) error {
	loadSchema()
	if schemaErr != nil {
		return schemaErr
	}
	err := schemaCompiled.Validate(v)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return &ParseError{Path: path, Message: describe(ve), Err: ve}
}

// describe flattens a validation error into its leaf causes, one per
// instance location.
func describe(ve *jsonschema.ValidationError) string {
	var leaves []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			leaves = append(leaves, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)

	slices.Sort(leaves)
	leaves = slices.Compact(leaves)
	return "schema validation failed: " + strings.Join(leaves, "; ")
}
