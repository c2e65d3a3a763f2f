package gos_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	gos "github.com/manzt/gos"
)

func mustNode(t *testing.T, typeName string, fields gos.Fields) *gos.Node {
	t.Helper()
	n, err := gos.NewNode(gos.DefaultSchema(), typeName, fields)
	if err != nil {
		t.Fatalf("NewNode(%s): %v", typeName, err)
	}
	return n
}

func TestNewNode_RejectsUnknownField(t *testing.T) {
	_, err := gos.NewNode(gos.DefaultSchema(), "Track", gos.Fields{"nope": 1})
	if !gos.HasCode(err, gos.CodeUnknownField) {
		t.Fatalf("expected unknown_field issue, got %v", err)
	}
}

func TestNewNode_RejectsBadScalar(t *testing.T) {
	_, err := gos.NewNode(gos.DefaultSchema(), "Track", gos.Fields{"width": "wide"})
	if !gos.HasCode(err, gos.CodeInvalidType) {
		t.Fatalf("expected invalid_type issue, got %v", err)
	}
}

func TestNewNode_RejectsBadEnum(t *testing.T) {
	_, err := gos.NewNode(gos.DefaultSchema(), "Track", gos.Fields{"mark": "sparkle"})
	if !gos.HasCode(err, gos.CodeInvalidEnum) {
		t.Fatalf("expected invalid_enum issue, got %v", err)
	}
}

func TestNewNode_ConvertsNestedMap(t *testing.T) {
	n := mustNode(t, "Track", gos.Fields{
		"x": map[string]any{"field": "pos", "type": "genomic"},
	})
	nested, ok := n.Field("x").(*gos.Node)
	if !ok {
		t.Fatalf("expected x to be converted to a node, got %T", n.Field("x"))
	}
	if got := nested.Type().Name(); got != "X" {
		t.Fatalf("nested node type = %q, want X", got)
	}
}

func TestNewNode_NestedConversionFailureSurfacesAtWrite(t *testing.T) {
	_, err := gos.NewNode(gos.DefaultSchema(), "Track", gos.Fields{
		"x": map[string]any{"type": "radial"},
	})
	if !gos.HasCode(err, gos.CodeInvalidEnum) {
		t.Fatalf("expected nested invalid_enum issue, got %v", err)
	}
}

func TestWithFields_CopyOnWrite(t *testing.T) {
	n := mustNode(t, "Track", gos.Fields{"width": 100})
	n2, err := n.WithFields(gos.Fields{"width": 250, "height": 40})
	if err != nil {
		t.Fatalf("WithFields: %v", err)
	}
	if got := n.Field("width"); got != 100 {
		t.Fatalf("receiver mutated: width = %v", got)
	}
	if got := n.Field("height"); !gos.IsUndefined(got) {
		t.Fatalf("receiver mutated: height = %v", got)
	}
	if got := n2.Field("width"); got != 250 {
		t.Fatalf("overlay lost: width = %v", got)
	}
	if got := n2.Field("height"); got != 40 {
		t.Fatalf("overlay lost: height = %v", got)
	}
}

func TestWithFields_UndefinedUnsetsField(t *testing.T) {
	n := mustNode(t, "PartialTrack", gos.Fields{"width": 120})
	n2, err := n.WithFields(gos.Fields{"width": gos.Undefined})
	if err != nil {
		t.Fatalf("WithFields: %v", err)
	}
	if got := n2.Field("width"); !gos.IsUndefined(got) {
		t.Fatalf("width should be unset, got %v", got)
	}
	doc, err := n2.Doc()
	if err != nil {
		t.Fatalf("Doc: %v", err)
	}
	if _, ok := doc["width"]; ok {
		t.Fatalf("unset field leaked into document: %v", doc)
	}
}

func TestUndefined_DistinctFromLegitimateValues(t *testing.T) {
	if gos.IsUndefined(nil) {
		t.Fatal("nil must not be the sentinel")
	}
	if gos.IsUndefined(0) || gos.IsUndefined(false) || gos.IsUndefined("") {
		t.Fatal("zero values must not be the sentinel")
	}
	if gos.IsUndefined(map[string]any{}) || gos.IsUndefined([]any{}) {
		t.Fatal("empty containers must not be the sentinel")
	}
	if !gos.IsUndefined(gos.Undefined) {
		t.Fatal("the sentinel must recognize itself")
	}
}

func TestClone_SharesNothing(t *testing.T) {
	src := map[string]any{"type": "csv", "url": "http://x/y.csv"}
	n := mustNode(t, "PartialTrack", gos.Fields{"data": src})
	clone := n.Clone()

	src["url"] = "http://mutated"
	doc, err := clone.Doc()
	if err != nil {
		t.Fatalf("Doc: %v", err)
	}
	want := map[string]any{"data": map[string]any{"type": "csv", "url": "http://x/y.csv"}}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("clone shares state with source (-want +got):\n%s", diff)
	}
}
