package gos

import "fmt"

// Doc converts the node tree into its wire-format document: a plain nested
// structure of maps, sequences and primitives. Fields still holding the
// Undefined sentinel are omitted. This is the only place required fields are
// enforced; a node missing one fails here with a "required" issue naming the
// node type and field.
func (n *Node) Doc() (map[string]any, error) {
	out := make(map[string]any, len(n.fields))
	var iss Issues
	for _, name := range n.typ.order {
		v, ok := n.fields[name]
		if !ok || IsUndefined(v) {
			continue
		}
		sv, err := serializeValue(v, "/"+name)
		if err != nil {
			iss = AppendIssues(iss, mustIssues(err)...)
			continue
		}
		out[name] = sv
	}
	for _, name := range n.typ.order {
		fs := n.typ.fields[name]
		if !fs.Required {
			continue
		}
		if _, ok := out[name]; !ok {
			iss = AppendIssues(iss, Issue{
				Path:    "/" + name,
				Code:    CodeRequired,
				Message: fmt.Sprintf("%s requires %q", n.typ.Name(), name),
			})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func serializeValue(v any, path string) (any, error) {
	switch t := v.(type) {
	case *Node:
		doc, err := t.Doc()
		if err != nil {
			return nil, rebaseIssues(path, err)
		}
		return doc, nil
	case []any:
		out := make([]any, len(t))
		var iss Issues
		for i, e := range t {
			sv, err := serializeValue(e, fmt.Sprintf("%s/%d", path, i))
			if err != nil {
				iss = AppendIssues(iss, mustIssues(err)...)
				continue
			}
			out[i] = sv
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return out, nil
	case map[string]any:
		return deepCopyValue(t), nil
	default:
		return v, nil
	}
}
