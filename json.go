package gos

import json "github.com/goccy/go-json"

// marshalJSON renders a serialized document as JSON.
func marshalJSON(doc map[string]any) ([]byte, error) {
	return json.Marshal(doc)
}
