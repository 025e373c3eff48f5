// Geometry of a parsed structure. Boxes, centres and distances.

package geom

import (
	"math"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/protstruct/pdb/cmmn"
)

type Error string

func (e Error) Error() string { return string(e) }

// Bbox returns the axis-aligned box around the atoms. With no atoms,
// everything is at the origin. This is not an error.
func Bbox(atoms []*cmmn.Atom) (box cmmn.BoundingBox) {
	if len(atoms) == 0 {
		return box
	}
	lo, hi := atoms[0].Pos, atoms[0].Pos
	for _, a := range atoms[1:] {
		p := a.Pos
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
		lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
	}
	box.Min, box.Max = lo, hi
	box.Center = lo.Add(hi).Scale(0.5)
	box.Size = hi.Sub(lo)
	return box
}

// Centroid is the arithmetic mean of the atom positions. It is what
// the structure calls its centre of mass, but there is no mass
// weighting. No atoms gives the origin.
func Centroid(atoms []*cmmn.Atom) (c cmmn.Xyz) {
	if len(atoms) == 0 {
		return c
	}
	for _, a := range atoms {
		c = c.Add(a.Pos)
	}
	return c.Scale(1 / float64(len(atoms)))
}

// XyzDist is the distance between two points.
func XyzDist(x1, x2 cmmn.Xyz) float64 {
	d := x1.Sub(x2)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// CaDistMat collects the residues in a chain that have an alpha carbon
// and returns the matrix of CA-CA distances between them, along with
// the residues, so rows can be labelled. Residues without CA are
// skipped.
func CaDistMat(chn *cmmn.Chain) (*matrix.FMatrix2d, []*cmmn.Residue, error) {
	var rsdues []*cmmn.Residue
	var ca []cmmn.Xyz
	for _, r := range chn.Residues {
		if a := r.Atom("CA"); a != nil {
			rsdues = append(rsdues, r)
			ca = append(ca, a.Pos)
		}
	}
	if len(ca) == 0 {
		return nil, nil, Error("chain " + chn.ID + " has no CA atoms")
	}
	mat := matrix.NewFMatrix2d(len(ca), len(ca))
	for i := range ca {
		for j := i + 1; j < len(ca); j++ {
			d := float32(XyzDist(ca[i], ca[j]))
			mat.Mat[i][j], mat.Mat[j][i] = d, d
		}
	}
	return mat, rsdues, nil
}
