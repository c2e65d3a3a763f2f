package gos

import "fmt"

// FieldKind discriminates the accepted value shape of a field.
type FieldKind int

const (
	KindScalar FieldKind = iota // primitive value of a ScalarType
	KindEnum                    // one of a closed set of string literals
	KindNested                  // a Node of a named NodeType
	KindArray                   // sequence whose elements satisfy Elem
)

// ScalarType names the primitive shapes a KindScalar field accepts.
type ScalarType string

const (
	ScalarString ScalarType = "string"
	ScalarNumber ScalarType = "number"
	ScalarBool   ScalarType = "boolean"
	ScalarObject ScalarType = "object" // free-form map, e.g. a data-source descriptor
	ScalarAny    ScalarType = "any"
)

// FieldSpec describes one declared field of a NodeType.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Scalar   ScalarType // KindScalar only
	Enum     []string   // KindEnum only
	Node     string     // KindNested only: the nested NodeType name
	Elem     *FieldSpec // KindArray only
	Required bool
}

// NodeType is a named specification node kind with its declared fields.
type NodeType struct {
	name   string
	fields map[string]FieldSpec
	order  []string
}

// Name returns the node type name.
func (t *NodeType) Name() string { return t.name }

// Field looks up a declared field.
func (t *NodeType) Field(name string) (FieldSpec, bool) {
	fs, ok := t.fields[name]
	return fs, ok
}

// FieldNames returns the declared field names in declaration order.
func (t *NodeType) FieldNames() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Registry is the node-type table the schema document loads into. It is built
// once at load time and read-only afterwards.
type Registry struct {
	version string
	types   map[string]*NodeType
	catalog *ChannelCatalog
}

// Version returns the schema document version the registry was loaded from.
func (r *Registry) Version() string { return r.version }

// Catalog returns the encoding-channel catalog derived from the schema.
func (r *Registry) Catalog() *ChannelCatalog { return r.catalog }

// NodeType resolves a node type by name.
func (r *Registry) NodeType(name string) (*NodeType, error) {
	t, ok := r.types[name]
	if !ok {
		return nil, Issues{{Path: "/", Code: CodeUnknownField, Message: fmt.Sprintf("unknown node type %q", name)}}
	}
	return t, nil
}

// validateField checks (and normalizes) a single field write against the
// node type's FieldSpec. Undefined always passes: it means "unset this
// field". Plain maps destined for nested fields are converted to nodes here,
// so conversion failures surface at write time, not at serialization.
func (r *Registry) validateField(t *NodeType, name string, v any) (any, error) {
	fs, ok := t.Field(name)
	if !ok {
		return nil, Issues{{
			Path:    "/" + name,
			Code:    CodeUnknownField,
			Message: fmt.Sprintf("%s has no field %q", t.Name(), name),
		}}
	}
	if IsUndefined(v) {
		return Undefined, nil
	}
	return r.validateValue(fs, "/"+name, v)
}

func (r *Registry) validateValue(fs FieldSpec, path string, v any) (any, error) {
	switch fs.Kind {
	case KindScalar:
		return validateScalar(fs, path, v)
	case KindEnum:
		s, ok := v.(string)
		if !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidEnum, Message: fmt.Sprintf("expected one of %v, got %T", fs.Enum, v)}}
		}
		for _, lit := range fs.Enum {
			if s == lit {
				return s, nil
			}
		}
		return nil, Issues{{Path: path, Code: CodeInvalidEnum, Message: fmt.Sprintf("%q is not one of %v", s, fs.Enum)}}
	case KindNested:
		return r.validateNested(fs, path, v)
	case KindArray:
		return r.validateArray(fs, path, v)
	default:
		return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "unsupported field kind"}}
	}
}

func validateScalar(fs FieldSpec, path string, v any) (any, error) {
	ok := false
	switch fs.Scalar {
	case ScalarString:
		_, ok = v.(string)
	case ScalarNumber:
		switch v.(type) {
		case int, int32, int64, float32, float64:
			ok = true
		}
	case ScalarBool:
		_, ok = v.(bool)
	case ScalarObject:
		_, ok = v.(map[string]any)
	case ScalarAny:
		ok = true
	}
	if !ok {
		return nil, Issues{{
			Path:    path,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected %s, got %T", fs.Scalar, v),
		}}
	}
	return v, nil
}

func (r *Registry) validateNested(fs FieldSpec, path string, v any) (any, error) {
	switch n := v.(type) {
	case Channel:
		if len(n.iss) > 0 {
			return nil, rebaseIssues(path, n.iss)
		}
		v = n.node
	case *Channel:
		if len(n.iss) > 0 {
			return nil, rebaseIssues(path, n.iss)
		}
		v = n.node
	}
	switch n := v.(type) {
	case *Node:
		if n.Type().Name() != fs.Node {
			return nil, Issues{{
				Path:    path,
				Code:    CodeInvalidType,
				Message: fmt.Sprintf("expected %s node, got %s", fs.Node, n.Type().Name()),
			}}
		}
		return n, nil
	case map[string]any:
		conv, err := NewNode(r, fs.Node, n)
		if err != nil {
			return nil, rebaseIssues(path, err)
		}
		return conv, nil
	default:
		return nil, Issues{{
			Path:    path,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected %s node or map, got %T", fs.Node, v),
		}}
	}
}

func (r *Registry) validateArray(fs FieldSpec, path string, v any) (any, error) {
	var elems []any
	switch s := v.(type) {
	case []any:
		elems = s
	case []*Node:
		elems = make([]any, len(s))
		for i, n := range s {
			elems[i] = n
		}
	case []map[string]any:
		elems = make([]any, len(s))
		for i, m := range s {
			elems[i] = m
		}
	case []string:
		elems = make([]any, len(s))
		for i, e := range s {
			elems[i] = e
		}
	default:
		return nil, Issues{{Path: path, Code: CodeInvalidType, Message: fmt.Sprintf("expected array, got %T", v)}}
	}
	out := make([]any, len(elems))
	var iss Issues
	for i, e := range elems {
		ev, err := r.validateValue(*fs.Elem, fmt.Sprintf("%s/%d", path, i), e)
		if err != nil {
			iss = AppendIssues(iss, mustIssues(err)...)
			continue
		}
		out[i] = ev
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func mustIssues(err error) Issues {
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{{Path: "/", Code: CodeInvalidType, Message: err.Error(), Cause: err}}
}
