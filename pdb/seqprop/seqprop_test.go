package seqprop_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/protstruct/pdb/cmmn"
	. "github.com/andrew-torda/protstruct/pdb/seqprop"
)

func notApproxEqual(x, y float64) bool {
	return math.IsNaN(x-y) || math.Abs(x-y) > 0.001
}

func TestComposition(t *testing.T) {
	got := Composition("GAAXG")
	want := []SymCount{
		{'A', 2, 40},
		{'G', 2, 40},
		{'X', 1, 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c := Composition(""); len(c) != 0 {
		t.Error("empty sequence gave", c)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		seq                   string
		weight, gravy, charge float64
	}{
		{"", 0, 0, 0},
		{"G", 75.07, -0.4, 0},
		{"GG", 2*75.07 - 18.015, -0.4, 0},
		{"KDH", 146.19 + 133.10 + 155.16 - 2*18.015, (-3.9 - 3.5 - 3.2) / 3, 0.5},
		{"AXA", 2*89.09 - 18.015, 3.6 / 3, 0},
		{"GAKX", 75.07 + 89.09 + 146.19 - 2*18.015, (-0.4 + 1.8 - 3.9) / 4, 1},
		{"XX", 0, 0, 0},
		{"RRE", 2*174.20 + 147.13 - 2*18.015, (-4.5*2 - 3.5) / 3, 1},
	}
	for _, tt := range tests {
		if w := MolWeight(tt.seq); notApproxEqual(w, tt.weight) {
			t.Errorf("%q: weight %g want %g", tt.seq, w, tt.weight)
		}
		if g := GRAVY(tt.seq); notApproxEqual(g, tt.gravy) {
			t.Errorf("%q: gravy %g want %g", tt.seq, g, tt.gravy)
		}
		if q := NetCharge(tt.seq); notApproxEqual(q, tt.charge) {
			t.Errorf("%q: charge %g want %g", tt.seq, q, tt.charge)
		}
		if h := Hydropathy(tt.seq); len(h) != len(tt.seq) {
			t.Errorf("%q: %d hydropathy values", tt.seq, len(h))
		}
	}
}

func TestWriteFasta(t *testing.T) {
	long := strings.Repeat("ACDEFGHIKL", 13) // 130 residues
	st := &Structure{
		Name: "1ABC",
		Chains: []*Chain{
			{ID: "A", Sequence: long},
			{ID: "B"},
			{ID: "C", Sequence: "GG"},
		},
	}
	var sb strings.Builder
	if err := WriteFasta(&sb, st); err != nil {
		t.Fatal(err)
	}
	want := ">1ABC|A\n" + long[:60] + "\n" + long[60:120] + "\n" + long[120:] + "\n" +
		">1ABC|C\nGG\n"
	if got := sb.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}
