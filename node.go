package gos

// Node is an immutable instance of a NodeType. Fields never present in the
// mapping are unset; mutation always goes through WithFields, which returns a
// fresh node and leaves the receiver untouched.
type Node struct {
	reg    *Registry
	typ    *NodeType
	fields map[string]any
}

// NewNode constructs a node of the named type, validating every supplied
// field against the schema. Required fields may be left unset here; they are
// only enforced at serialization time so nodes can be built incrementally.
func NewNode(reg *Registry, typeName string, fields Fields) (*Node, error) {
	typ, err := reg.NodeType(typeName)
	if err != nil {
		return nil, err
	}
	n := &Node{reg: reg, typ: typ, fields: map[string]any{}}
	return n.WithFields(fields)
}

// Type returns the node's schema type.
func (n *Node) Type() *NodeType { return n.typ }

// Schema returns the registry the node validates against.
func (n *Node) Schema() *Registry { return n.reg }

// Field returns the current value of a field, or Undefined when unset.
func (n *Node) Field(name string) any {
	if v, ok := n.fields[name]; ok {
		return v
	}
	return Undefined
}

// WithFields returns a new node equal to the receiver with the overlay
// fields replaced. Each overlaid field is validated against the schema;
// overlaying with Undefined unsets the field.
func (n *Node) WithFields(overlay Fields) (*Node, error) {
	next := &Node{reg: n.reg, typ: n.typ, fields: make(map[string]any, len(n.fields)+len(overlay))}
	for k, v := range n.fields {
		next.fields[k] = v
	}
	var iss Issues
	for name, v := range overlay {
		nv, err := n.reg.validateField(n.typ, name, v)
		if err != nil {
			iss = AppendIssues(iss, mustIssues(err)...)
			continue
		}
		if IsUndefined(nv) {
			delete(next.fields, name)
			continue
		}
		next.fields[name] = nv
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return next, nil
}

// Clone returns a deep copy of the node: nested nodes, sequences and maps
// are all copied so the result shares no mutable state with the receiver.
func (n *Node) Clone() *Node {
	fields := make(map[string]any, len(n.fields))
	for k, v := range n.fields {
		fields[k] = deepCopyValue(v)
	}
	return &Node{reg: n.reg, typ: n.typ, fields: fields}
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case *Node:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopyValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}
