package geom_test

import (
	"math"
	"testing"

	. "github.com/andrew-torda/protstruct/pdb/cmmn"
	. "github.com/andrew-torda/protstruct/pdb/geom"
)

// permuteXyz rotates x, y and z for tests whose answers should not change
// when we move the axes around.
func permuteXyz(x Xyz) Xyz {
	x.X, x.Y, x.Z = x.Y, x.Z, x.X
	return x
}

func notApproxEqual(x, y float64) bool {
	return math.IsNaN(x-y) || math.Abs(x-y) > 0.00001
}

func mkAtoms(pos ...Xyz) []*Atom {
	atoms := make([]*Atom, len(pos))
	for i, p := range pos {
		atoms[i] = &Atom{ID: i + 1, Pos: p}
	}
	return atoms
}

func TestBboxEmpty(t *testing.T) {
	if b := Bbox(nil); b != (BoundingBox{}) {
		t.Error("empty box should be at origin, got", b)
	}
	if c := Centroid(nil); c != (Xyz{}) {
		t.Error("empty centroid should be at origin, got", c)
	}
}

func TestBbox(t *testing.T) {
	pos := []Xyz{{X: 1, Y: -2, Z: 3}, {X: -1, Y: 5, Z: 0.5}, {X: 0, Y: 0, Z: 10}}
	for i := 0; i < 3; i++ {
		atoms := mkAtoms(pos...)
		b := Bbox(atoms)
		for _, a := range atoms {
			if !b.Contains(a.Pos) {
				t.Errorf("atom %v outside box %v", a.Pos, b)
			}
		}
		if b.Size != b.Max.Sub(b.Min) {
			t.Error("size is not max - min", b)
		}
		if b.Center != b.Min.Add(b.Max).Scale(0.5) {
			t.Error("center is not the midpoint", b)
		}
		for j := range pos {
			pos[j] = permuteXyz(pos[j])
		}
	}
	b := Bbox(mkAtoms(pos...))
	want := BoundingBox{Min: Xyz{X: -1, Y: -2, Z: 0.5}, Max: Xyz{X: 1, Y: 5, Z: 10}}
	if b.Min != want.Min || b.Max != want.Max {
		t.Errorf("got %v wanted %v", b, want)
	}
}

func TestCentroid(t *testing.T) {
	var tests = []struct {
		pos  []Xyz
		want Xyz
	}{
		{[]Xyz{{X: 1, Y: 2, Z: 3}}, Xyz{X: 1, Y: 2, Z: 3}},
		{[]Xyz{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 4, Z: 6}}, Xyz{X: 1, Y: 2, Z: 3}},
		{[]Xyz{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: -1, Y: -1, Z: -1}}, Xyz{X: 0, Y: 0, Z: 0}},
	}
	for _, tt := range tests {
		c := Centroid(mkAtoms(tt.pos...))
		if notApproxEqual(c.X, tt.want.X) || notApproxEqual(c.Y, tt.want.Y) ||
			notApproxEqual(c.Z, tt.want.Z) {
			t.Errorf("centroid of %v got %v wanted %v", tt.pos, c, tt.want)
		}
	}
}

func TestXyzDist(t *testing.T) {
	var disttests = []struct {
		x1, x2 Xyz
		res    float64
	}{
		{Xyz{X: 3.8, Y: 0, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, 3.8},
		{Xyz{X: 1, Y: 1, Z: 1}, Xyz{X: 1, Y: 1, Z: 1}, 0},
		{Xyz{X: 3, Y: 4, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, 5},
		{Xyz{X: 1, Y: 2, Z: 3}, Xyz{X: -1, Y: -2, Z: -3}, math.Sqrt(56)},
	}
	for _, tt := range disttests {
		x1, x2 := tt.x1, tt.x2
		for i := 0; i < 3; i++ {
			if d := XyzDist(x1, x2); notApproxEqual(d, tt.res) {
				t.Errorf("dist %v %v got %f wanted %f", x1, x2, d, tt.res)
			}
			if XyzDist(x1, x2) != XyzDist(x2, x1) {
				t.Error("distance not symmetric", x1, x2)
			}
			x1, x2 = permuteXyz(x1), permuteXyz(x2)
		}
	}
}

func TestCaDistMat(t *testing.T) {
	mkRes := func(n int, atName string, p Xyz) *Residue {
		return &Residue{SeqNum: n, Atoms: []*Atom{{Name: atName, Pos: p}}}
	}
	chn := &Chain{ID: "A", Residues: []*Residue{
		mkRes(1, "CA", Xyz{X: 0, Y: 0, Z: 0}),
		mkRes(2, "CA", Xyz{X: 3.8, Y: 0, Z: 0}),
		mkRes(3, "O", Xyz{X: 9, Y: 9, Z: 9}), // no CA, skipped
		mkRes(4, "CA", Xyz{X: 3.8, Y: 3.8, Z: 0}),
	}}
	mat, rsdues, err := CaDistMat(chn)
	if err != nil {
		t.Fatal(err)
	}
	if len(rsdues) != 3 || rsdues[2].SeqNum != 4 {
		t.Fatal("wrong residues kept", len(rsdues))
	}
	if nr, nc := mat.Size(); nr != 3 || nc != 3 {
		t.Fatal("matrix size", nr, nc)
	}
	want := [][]float64{
		{0, 3.8, 3.8 * math.Sqrt2},
		{3.8, 0, 3.8},
		{3.8 * math.Sqrt2, 3.8, 0},
	}
	for i := range want {
		for j := range want[i] {
			if math.Abs(float64(mat.Mat[i][j])-want[i][j]) > 1e-4 { // float32 in the matrix
				t.Errorf("mat[%d][%d] got %f wanted %f", i, j, mat.Mat[i][j], want[i][j])
			}
		}
	}
	if _, _, err := CaDistMat(&Chain{ID: "B"}); err == nil {
		t.Error("expected error for chain without CA")
	}
}
