package oldfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/andrew-torda/protstruct/pdb/cmmn"
)

const (
	dfltChain   = "A"
	waterMarker = "HOH"
)

// backbone atom names. Anything else in an ATOM record is side chain.
var backbone = map[string]bool{"N": true, "CA": true, "C": true, "O": true, "OXT": true}

func (p *pstate) atom(line string) error   { return p.doAtom(line, false) }
func (p *pstate) hetatm(line string) error { return p.doAtom(line, true) }

// parseCoord reads one coordinate. ParseFloat is happy with "NaN" and
// "Inf", but a position has to be a finite number.
func parseCoord(s string) (float64, bool) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}

// getxyz gets the x, y and z coordinates from an input line. The first
// error stops it and later calls do nothing.
func getxyz(line string) (cmmn.Xyz, error) {
	var err error
	ff := func(c col, name string) float64 {
		if err != nil {
			return 0
		}
		s := cols(line, c)
		x, ok := parseCoord(s)
		if !ok {
			err = fmt.Errorf("bad %s coordinate %q", name, s)
		}
		return x
	}
	var xyz cmmn.Xyz
	xyz.X = ff(atXCol, "x")
	xyz.Y = ff(atYCol, "y")
	xyz.Z = ff(atZCol, "z")
	return xyz, err
}

// optFloat reads occupancy or B-factor. Blank or nonsense gives nil.
func optFloat(line string, c col) *float64 {
	s := cols(line, c)
	if s == "" {
		return nil
	}
	if x, ok := parseCoord(s); ok {
		return &x
	}
	return nil
}

// parseAtom reads an ATOM or HETATM line. It does not decide if the
// atom is wanted.
func parseAtom(line string, het bool) (*cmmn.Atom, error) {
	if len(line) < minAtomLen {
		return nil, fmt.Errorf("record too short (%d columns, need %d)", len(line), minAtomLen)
	}
	xyz, err := getxyz(line)
	if err != nil {
		return nil, err
	}
	sSeq := cols(line, atResSeqCol)
	resSeq, err := strconv.Atoi(sSeq)
	if err != nil {
		return nil, fmt.Errorf("bad residue number %q", sSeq)
	}
	a := &cmmn.Atom{
		Name:      cols(line, atNameCol),
		Pos:       xyz,
		ResName:   cols(line, atResNameCol),
		ResSeq:    resSeq,
		ICode:     cols(line, atICodeCol),
		ChainID:   cols(line, atChainCol),
		Occupancy: optFloat(line, atOccCol),
		BFactor:   optFloat(line, atBfacCol),
		AltLoc:    cols(line, atAltLocCol),
		Element:   cols(line, atElemCol),
		Charge:    cols(line, atChargeCol),
	}
	if a.Name == "" {
		return nil, errors.New("no atom name")
	}
	a.Serial, _ = strconv.Atoi(cols(line, atSerialCol))
	if a.ChainID == "" {
		a.ChainID = dfltChain
	}
	if a.Element == "" {
		a.Element = a.Name[:1]
	}
	a.ResidueID = a.ResName + sSeq + a.ICode
	switch {
	case het:
		a.Type = cmmn.Hetero
	case backbone[a.Name]:
		a.Type = cmmn.Backbone
	default:
		a.Type = cmmn.Sidechain
	}
	return a, nil
}

// boringAtom returns true if the options say we do not want the atom.
func boringAtom(a *cmmn.Atom, opts *Options) bool {
	if !opts.IncludeHydrogens && strings.EqualFold(a.Element, "H") {
		return true
	}
	if !opts.IncludeWater && strings.Contains(a.ResidueID, waterMarker) {
		return true
	}
	if !opts.IncludeHetero && a.Type == cmmn.Hetero {
		return true
	}
	return false
}

// doAtom handles coordinate lines. Outside the wanted model they are
// skipped. A line that cannot be read loses the whole atom.
func (p *pstate) doAtom(line string, het bool) error {
	if !p.gate.open {
		return nil
	}
	a, err := parseAtom(line, het)
	if err != nil {
		return err
	}
	if boringAtom(a, p.opts) {
		return nil
	}
	p.bld.add(a)
	return nil
}
