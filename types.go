package gos

// Fields is the keyword-argument form accepted by every builder operation.
// Values may be primitives, nested *Node values, Channel values, plain maps
// (structurally converted against the schema), sequences of any of these, or
// Undefined to unset a field.
type Fields = map[string]any

type undefined struct{}

func (*undefined) String() string { return "Undefined" }

// Undefined is the process-wide unset-field sentinel. Every optional field
// defaults to it, and any field still holding it is omitted entirely from
// serialized output. It is distinguishable from nil and from every legitimate
// value (empty maps, zero, false): exclusion happens by identity against this
// singleton, never by equality.
var Undefined = &undefined{}

// IsUndefined reports whether v is the unset sentinel.
func IsUndefined(v any) bool {
	u, ok := v.(*undefined)
	return ok && u == Undefined
}
