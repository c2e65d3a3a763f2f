package gos

import "fmt"

// Default track dimensions, applied by NewTrack when not overridden.
const (
	DefaultWidth  = 800
	DefaultHeight = 180
)

// Track is a single visual track under construction. Every builder method
// returns a new Track; the receiver is never mutated. Validation failures
// accumulate on the value and surface through Err or at serialization, so
// chains stay uninterrupted.
type Track struct {
	node *Node
	iss  Issues
}

// NewTrack starts a track bound to the given data-source descriptor with the
// default width and height. Pass nil to leave the data field unset.
func NewTrack(source map[string]any) Track {
	fields := Fields{"width": DefaultWidth, "height": DefaultHeight}
	if source != nil {
		fields["data"] = source
	}
	node, err := NewNode(DefaultSchema(), "Track", fields)
	if err != nil {
		return Track{iss: mustIssues(err)}
	}
	return Track{node: node}
}

// Err reports any validation failure accumulated while building the track.
func (t Track) Err() error {
	if len(t.iss) > 0 {
		return t.iss
	}
	return nil
}

// Node returns the underlying specification node, or nil after a failure.
func (t Track) Node() *Node { return t.node }

// Encode binds encoding channels. Channel arguments are positional: each is
// routed to the unique channel field accepting its type. A Fields argument
// supplies explicit keyword bindings. Positional and keyword bindings for
// the same channel reject the call.
func (t Track) Encode(args ...any) Track {
	node, iss := encodeInto(t.node, t.iss, args)
	return Track{node: node, iss: iss}
}

// Properties overlays presentation fields directly, bypassing channel
// inference.
func (t Track) Properties(fields Fields) Track {
	node, iss := overlayInto(t.node, t.iss, fields)
	return Track{node: node, iss: iss}
}

func (t Track) mark(m string) Track {
	return t.Properties(Fields{"mark": m})
}

// Chart wraps a deep copy of the track into a new Root with a single-element
// track list, merged with the given document-level fields.
func (t Track) Chart(fields Fields) Root {
	if len(t.iss) > 0 {
		return Root{iss: t.iss}
	}
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["tracks"] = []any{t.node.Clone()}
	node, err := NewNode(t.node.Schema(), "Root", merged)
	if err != nil {
		return Root{iss: mustIssues(err)}
	}
	return Root{node: node}
}

// Doc serializes the track into its wire-format document.
func (t Track) Doc() (map[string]any, error) {
	return docOf(t.node, t.iss)
}

// PartialTrack is a track overlay specification: the same shape as Track
// with nothing required, so sparse fragments serialize as-is.
type PartialTrack struct {
	node *Node
	iss  Issues
}

// NewPartialTrack starts an empty partial track with the given fields.
func NewPartialTrack(fields Fields) PartialTrack {
	node, err := NewNode(DefaultSchema(), "PartialTrack", fields)
	if err != nil {
		return PartialTrack{iss: mustIssues(err)}
	}
	return PartialTrack{node: node}
}

// Err reports any validation failure accumulated while building.
func (t PartialTrack) Err() error {
	if len(t.iss) > 0 {
		return t.iss
	}
	return nil
}

// Node returns the underlying specification node, or nil after a failure.
func (t PartialTrack) Node() *Node { return t.node }

// Encode binds encoding channels; see Track.Encode.
func (t PartialTrack) Encode(args ...any) PartialTrack {
	node, iss := encodeInto(t.node, t.iss, args)
	return PartialTrack{node: node, iss: iss}
}

// Properties overlays presentation fields directly.
func (t PartialTrack) Properties(fields Fields) PartialTrack {
	node, iss := overlayInto(t.node, t.iss, fields)
	return PartialTrack{node: node, iss: iss}
}

func (t PartialTrack) mark(m string) PartialTrack {
	return t.Properties(Fields{"mark": m})
}

// Doc serializes the partial track into its wire-format document.
func (t PartialTrack) Doc() (map[string]any, error) {
	return docOf(t.node, t.iss)
}

// Root is a top-level document: an ordered list of tracks plus
// document-level properties.
type Root struct {
	node *Node
	iss  Issues
}

// NewRoot builds a document from document-level fields; tracks may be
// supplied as a "tracks" field holding Track nodes or plain maps.
func NewRoot(fields Fields) Root {
	node, err := NewNode(DefaultSchema(), "Root", fields)
	if err != nil {
		return Root{iss: mustIssues(err)}
	}
	return Root{node: node}
}

// Err reports any validation failure accumulated while building.
func (r Root) Err() error {
	if len(r.iss) > 0 {
		return r.iss
	}
	return nil
}

// Node returns the underlying specification node, or nil after a failure.
func (r Root) Node() *Node { return r.node }

// Properties overlays document-level fields.
func (r Root) Properties(fields Fields) Root {
	node, iss := overlayInto(r.node, r.iss, fields)
	return Root{node: node, iss: iss}
}

// Doc serializes the document, enforcing required fields.
func (r Root) Doc() (map[string]any, error) {
	return docOf(r.node, r.iss)
}

// JSON serializes the document to its JSON wire format.
func (r Root) JSON() ([]byte, error) {
	doc, err := r.Doc()
	if err != nil {
		return nil, err
	}
	return marshalJSON(doc)
}

// encodeInto resolves positional and keyword encoding arguments and overlays
// them on the node.
func encodeInto(n *Node, iss Issues, args []any) (*Node, Issues) {
	if len(iss) > 0 || n == nil {
		return nil, iss
	}
	var positional []Channel
	kw := Fields{}
	for i, arg := range args {
		switch a := arg.(type) {
		case Channel:
			positional = append(positional, a)
		case *Channel:
			positional = append(positional, *a)
		case Fields:
			for k, v := range a {
				if _, dup := kw[k]; dup {
					return nil, Issues{{
						Path:    "/" + k,
						Code:    CodeDuplicateChannel,
						Message: fmt.Sprintf("channel %q supplied twice by keyword", k),
					}}
				}
				kw[k] = v
			}
		default:
			return nil, Issues{{
				Path:    fmt.Sprintf("/%d", i),
				Code:    CodeInvalidType,
				Message: fmt.Sprintf("encode accepts Channel or Fields arguments, got %T", arg),
			}}
		}
	}
	merged, err := InferEncodingTypes(positional, kw, n.Schema().Catalog())
	if err != nil {
		return nil, mustIssues(err)
	}
	return overlayInto(n, nil, merged)
}

// overlayInto applies a copy-on-write field overlay, short-circuiting when
// the chain already failed.
func overlayInto(n *Node, iss Issues, fields Fields) (*Node, Issues) {
	if len(iss) > 0 || n == nil {
		return nil, iss
	}
	next, err := n.WithFields(fields)
	if err != nil {
		return nil, mustIssues(err)
	}
	return next, nil
}

func docOf(n *Node, iss Issues) (map[string]any, error) {
	if len(iss) > 0 {
		return nil, iss
	}
	if n == nil {
		return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: "nil specification node"}}
	}
	return n.Doc()
}
