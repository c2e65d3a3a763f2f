package data_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/manzt/gos/data"
)

func TestSources_TagAndURL(t *testing.T) {
	cases := []struct {
		tag string
		got data.Source
	}{
		{"csv", data.CSV("http://x/a", nil)},
		{"bigwig", data.BigWig("http://x/a", nil)},
		{"json", data.JSON("http://x/a", nil)},
		{"beddb", data.BedDB("http://x/a", nil)},
		{"vector", data.Vector("http://x/a", nil)},
		{"multivec", data.MultiVec("http://x/a", nil)},
		{"bam", data.BAM("http://x/a", nil)},
		{"matrix", data.Matrix("http://x/a", nil)},
	}
	for _, tc := range cases {
		want := data.Source{"type": tc.tag, "url": "http://x/a"}
		if diff := cmp.Diff(want, tc.got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.tag, diff)
		}
	}
}

func TestSources_OptionsMergedVerbatim(t *testing.T) {
	got := data.MultiVec("http://x/m", map[string]any{
		"row":        "sample",
		"column":     "position",
		"value":      "peak",
		"categories": []string{"s1", "s2"},
		"binSize":    4,
	})
	if got["type"] != "multivec" || got["binSize"] != 4 {
		t.Fatalf("options not merged: %v", got)
	}
}
