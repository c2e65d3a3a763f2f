package gos

// Channel is a visual-encoding channel definition: a node of one of the
// channel node types (X, Y, Color, ...) whose type name doubles as the
// discriminant tag positional-argument inference matches on. Construction
// failures travel with the value and surface when it is bound to a track.
type Channel struct {
	node *Node
	iss  Issues
}

// Node returns the underlying channel definition node. It is nil when
// construction failed; see Err.
func (c Channel) Node() *Node { return c.node }

// Err reports any construction failure carried by the channel.
func (c Channel) Err() error {
	if len(c.iss) > 0 {
		return c.iss
	}
	return nil
}

func newChannel(typeName string, fields Fields) Channel {
	n, err := NewNode(DefaultSchema(), typeName, fields)
	if err != nil {
		return Channel{iss: mustIssues(err)}
	}
	return Channel{node: n}
}

// X binds a field to the primary genomic axis.
func X(fields Fields) Channel { return newChannel("X", fields) }

// Xe binds the end position paired with X for interval marks.
func Xe(fields Fields) Channel { return newChannel("Xe", fields) }

// Y binds a field to the vertical axis.
func Y(fields Fields) Channel { return newChannel("Y", fields) }

// Ye binds the end position paired with Y.
func Ye(fields Fields) Channel { return newChannel("Ye", fields) }

// Row facets tracks vertically by a categorical field.
func Row(fields Fields) Channel { return newChannel("Row", fields) }

// Color binds a field to mark color.
func Color(fields Fields) Channel { return newChannel("Color", fields) }

// Size binds a field to mark size.
func Size(fields Fields) Channel { return newChannel("Size", fields) }

// Text binds a field to the text shown by text marks.
func Text(fields Fields) Channel { return newChannel("Text", fields) }

// Stroke binds a field to mark stroke color.
func Stroke(fields Fields) Channel { return newChannel("Stroke", fields) }

// StrokeWidth binds a field to mark stroke width.
func StrokeWidth(fields Fields) Channel { return newChannel("StrokeWidth", fields) }

// Opacity binds a field to mark opacity.
func Opacity(fields Fields) Channel { return newChannel("Opacity", fields) }

// Tooltip describes one tooltip entry; tracks take an array of them.
func Tooltip(fields Fields) Channel { return newChannel("Tooltip", fields) }
