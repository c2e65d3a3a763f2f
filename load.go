package gos

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed schema.yaml
var schemaYAML []byte

type yamlField struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Scalar   string     `yaml:"scalar"`
	Values   []string   `yaml:"values"`
	Node     string     `yaml:"node"`
	Elem     *yamlField `yaml:"elem"`
	Required bool       `yaml:"required"`
}

type yamlType struct {
	Name   string      `yaml:"name"`
	Fields []yamlField `yaml:"fields"`
}

type yamlSchema struct {
	Version  string            `yaml:"version"`
	Types    []yamlType        `yaml:"types"`
	Channels map[string]string `yaml:"channels"`
}

// LoadSchema parses a YAML schema table into a Registry. Field declaration
// order in the document becomes serialization order. Channel catalog entries
// must point at declared node types.
func LoadSchema(data []byte) (*Registry, error) {
	var ys yamlSchema
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("gos: parse schema document: %w", err)
	}
	reg := &Registry{
		version: ys.Version,
		types:   make(map[string]*NodeType, len(ys.Types)),
	}
	for _, yt := range ys.Types {
		if _, dup := reg.types[yt.Name]; dup {
			return nil, fmt.Errorf("gos: duplicate node type %q in schema document", yt.Name)
		}
		nt := &NodeType{name: yt.Name, fields: make(map[string]FieldSpec, len(yt.Fields))}
		for _, yf := range yt.Fields {
			fs, err := fieldSpecFromYAML(yt.Name, yf)
			if err != nil {
				return nil, err
			}
			if _, dup := nt.fields[fs.Name]; dup {
				return nil, fmt.Errorf("gos: duplicate field %q on %s", fs.Name, yt.Name)
			}
			nt.fields[fs.Name] = fs
			nt.order = append(nt.order, fs.Name)
		}
		reg.types[yt.Name] = nt
	}
	for channel, typeName := range ys.Channels {
		if _, ok := reg.types[typeName]; !ok {
			return nil, fmt.Errorf("gos: channel %q references unknown node type %q", channel, typeName)
		}
	}
	// Nested references are resolved lazily by name; verify them up front so
	// a bad document fails at load, not on first use.
	for _, nt := range reg.types {
		for _, name := range nt.order {
			if err := verifyNestedRefs(reg, nt.Name(), nt.fields[name]); err != nil {
				return nil, err
			}
		}
	}
	reg.catalog = NewChannelCatalog(ys.Channels)
	return reg, nil
}

func fieldSpecFromYAML(typeName string, yf yamlField) (FieldSpec, error) {
	fs := FieldSpec{Name: yf.Name, Required: yf.Required}
	switch yf.Kind {
	case "scalar":
		fs.Kind = KindScalar
		fs.Scalar = ScalarType(yf.Scalar)
		switch fs.Scalar {
		case ScalarString, ScalarNumber, ScalarBool, ScalarObject, ScalarAny:
		default:
			return fs, fmt.Errorf("gos: %s.%s: unknown scalar type %q", typeName, yf.Name, yf.Scalar)
		}
	case "enum":
		fs.Kind = KindEnum
		if len(yf.Values) == 0 {
			return fs, fmt.Errorf("gos: %s.%s: enum field declares no values", typeName, yf.Name)
		}
		fs.Enum = yf.Values
	case "nested":
		fs.Kind = KindNested
		fs.Node = yf.Node
	case "array":
		fs.Kind = KindArray
		if yf.Elem == nil {
			return fs, fmt.Errorf("gos: %s.%s: array field declares no element spec", typeName, yf.Name)
		}
		elem, err := fieldSpecFromYAML(typeName, *yf.Elem)
		if err != nil {
			return fs, err
		}
		fs.Elem = &elem
	default:
		return fs, fmt.Errorf("gos: %s.%s: unknown field kind %q", typeName, yf.Name, yf.Kind)
	}
	return fs, nil
}

func verifyNestedRefs(reg *Registry, typeName string, fs FieldSpec) error {
	switch fs.Kind {
	case KindNested:
		if _, ok := reg.types[fs.Node]; !ok {
			return fmt.Errorf("gos: %s.%s references unknown node type %q", typeName, fs.Name, fs.Node)
		}
	case KindArray:
		return verifyNestedRefs(reg, typeName, *fs.Elem)
	}
	return nil
}

// MustLoadSchema is LoadSchema that panics on error, for the embedded table.
func MustLoadSchema(data []byte) *Registry {
	reg, err := LoadSchema(data)
	if err != nil {
		panic(err)
	}
	return reg
}

var loadDefault = sync.OnceValue(func() *Registry {
	return MustLoadSchema(schemaYAML)
})

// DefaultSchema returns the registry loaded from the embedded, versioned
// schema table. It is loaded once per process and read-only afterwards.
func DefaultSchema() *Registry {
	return loadDefault()
}
