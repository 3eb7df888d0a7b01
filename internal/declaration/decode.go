package declaration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decode parses a data document. The document is validated against the
// schema before it is decoded strictly into a Document.
func Decode(path string, data []byte, format Format) (*Document, error) {
	if !format.IsData() {
		return nil, fmt.Errorf("%w: %q is not a data format", ErrUnknownFormat, format)
	}

	generic, err := decodeGeneric(path, data, format)
	if err != nil {
		return nil, err
	}
	if err := validate(path, generic); err != nil {
		return nil, err
	}

	var doc Document
	if len(bytes.TrimSpace(data)) == 0 {
		return &doc, nil
	}
	if err := decodeStrict(data, format, &doc); err != nil {
		return nil, parseError(path, data, err)
	}
	return &doc, nil
}

// decodeGeneric decodes data into JSON-compatible values for validation.
func decodeGeneric(path string, data []byte, format Format) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var v any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, parseError(path, data, err)
		}
		if v == nil {
			return map[string]any{}, nil
		}
	case FormatTOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, parseError(path, data, err)
		}
		v = m
	case FormatJSON:
		decoded, err := decodeJSONValue(data)
		if err != nil {
			return nil, parseError(path, data, err)
		}
		return decoded, nil
	}

	// Round trip through JSON so numbers and maps have the shapes the
	// validator expects.
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return decodeJSONValue(raw)
}

// decodeJSONValue decodes a single JSON value with numbers kept as
// json.Number, the form the schema validator expects.
func decodeJSONValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

func decodeStrict(data []byte, format Format, doc *Document) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(doc)
	case FormatTOML:
		return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(doc)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(doc)
	}
}

var yamlLine = regexp.MustCompile(`^yaml: line (\d+):`)

// parseError wraps a decoder error, recovering the position when the
// decoder reports one.
func parseError(path string, data []byte, err error) *ParseError {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var tomlErr *toml.DecodeError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &tomlErr):
		pe.Line, pe.Column = tomlErr.Position()
	case errors.As(err, &syntaxErr):
		pe.Line, pe.Column = position(data, syntaxErr.Offset)
	case errors.As(err, &typeErr):
		pe.Line, pe.Column = position(data, typeErr.Offset)
	default:
		if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
			pe.Line, _ = strconv.Atoi(m[1])
		}
	}
	return pe
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line = bytes.Count(before, []byte{'\n'}) + 1
	col = int(offset) - (bytes.LastIndexByte(before, '\n') + 1)
	if col < 1 {
		col = 1
	}
	return line, col
}
