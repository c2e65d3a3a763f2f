package gos

import (
	"fmt"
	"sort"
	"strings"
)

// ChannelCatalog maps encoding-channel field names to the node type accepted
// for values bound to that channel. Its reverse index (node type -> channel
// names) drives positional-argument inference: a positional channel value is
// routed to the unique channel accepting its type.
type ChannelCatalog struct {
	byChannel map[string]string
	byType    map[string][]string
}

// NewChannelCatalog builds a catalog from a channel-name -> node-type-name
// mapping. Reverse-index entries are kept sorted so errors and lookups are
// deterministic regardless of map iteration order.
func NewChannelCatalog(mapping map[string]string) *ChannelCatalog {
	c := &ChannelCatalog{
		byChannel: make(map[string]string, len(mapping)),
		byType:    map[string][]string{},
	}
	for channel, typeName := range mapping {
		c.byChannel[channel] = typeName
		c.byType[typeName] = append(c.byType[typeName], channel)
	}
	for _, names := range c.byType {
		sort.Strings(names)
	}
	return c
}

// TypeFor returns the node type accepted by a channel.
func (c *ChannelCatalog) TypeFor(channel string) (string, bool) {
	t, ok := c.byChannel[channel]
	return t, ok
}

// ChannelFor resolves a node type name to the single channel accepting it.
// Zero matches or more than one match fail: guessing between overlapping
// channels would make positional encoding order-dependent.
func (c *ChannelCatalog) ChannelFor(typeName string) (string, error) {
	names := c.byType[typeName]
	switch len(names) {
	case 1:
		return names[0], nil
	case 0:
		return "", Issues{{
			Code:    CodeAmbiguousEncoding,
			Path:    "/",
			Message: fmt.Sprintf("no channel accepts %s", typeName),
		}}
	default:
		return "", Issues{{
			Code:    CodeAmbiguousEncoding,
			Path:    "/",
			Message: fmt.Sprintf("multiple channels accept %s (%s)", typeName, strings.Join(names, ", ")),
			Hint:    "pass the value as a keyword instead",
		}}
	}
}

// InferEncodingTypes resolves positional channel definitions to channel field
// names by their node type and merges them with the explicit keyword fields.
// It is a pure function: kw is never mutated and a fresh mapping is returned.
// Positional arguments are processed left to right so the first offending
// argument is the one reported.
func InferEncodingTypes(args []Channel, kw Fields, catalog *ChannelCatalog) (Fields, error) {
	merged := make(Fields, len(args)+len(kw))
	for k, v := range kw {
		merged[k] = v
	}
	for i, arg := range args {
		if len(arg.iss) > 0 {
			return nil, rebaseIssues(fmt.Sprintf("/%d", i), arg.iss)
		}
		if arg.node == nil {
			return nil, Issues{{
				Path:    fmt.Sprintf("/%d", i),
				Code:    CodeAmbiguousEncoding,
				Message: "empty channel definition",
			}}
		}
		name, err := catalog.ChannelFor(arg.node.Type().Name())
		if err != nil {
			return nil, rebaseIssues(fmt.Sprintf("/%d", i), err)
		}
		if _, dup := merged[name]; dup {
			return nil, Issues{{
				Path:    "/" + name,
				Code:    CodeDuplicateChannel,
				Message: fmt.Sprintf("channel %q supplied both positionally and by keyword", name),
			}}
		}
		merged[name] = arg
	}
	return merged, nil
}
