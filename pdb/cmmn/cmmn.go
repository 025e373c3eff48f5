// Package pdb/cmmn has common definitions for coordinates and the
// molecular model built from pdb files. Everything the readers return
// lives here, so other packages (geometry, plotting, sequence
// properties) do not have to import a reader.
package cmmn

import (
	"errors"
	"time"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Xyz is a position or a vector. Lengths are in Angstrom.
type Xyz struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns a + b
func (a Xyz) Add(b Xyz) Xyz { return Xyz{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a - b
func (a Xyz) Sub(b Xyz) Xyz { return Xyz{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale multiplies each component by f
func (a Xyz) Scale(f float64) Xyz { return Xyz{a.X * f, a.Y * f, a.Z * f} }

// BoundingBox is the smallest axis-aligned box around a set of atoms.
type BoundingBox struct {
	Min    Xyz `json:"min"`
	Max    Xyz `json:"max"`
	Center Xyz `json:"center"` // midpoint of Min and Max
	Size   Xyz `json:"size"`   // Max - Min
}

// Contains says if x is inside the box. Points on the surface count.
func (b BoundingBox) Contains(x Xyz) bool {
	return b.Min.X <= x.X && x.X <= b.Max.X &&
		b.Min.Y <= x.Y && x.Y <= b.Max.Y &&
		b.Min.Z <= x.Z && x.Z <= b.Max.Z
}

// AtomType says where an atom came from and, for protein atoms, whether
// it is part of the backbone.
type AtomType byte

const (
	Backbone AtomType = iota
	Sidechain
	Hetero
)

func (t AtomType) String() string {
	switch t {
	case Backbone:
		return "backbone"
	case Sidechain:
		return "sidechain"
	case Hetero:
		return "hetero"
	}
	return "unknown"
}

// MarshalText lets the type appear by name in json output
func (t AtomType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *AtomType) UnmarshalText(b []byte) error {
	for _, x := range []AtomType{Backbone, Sidechain, Hetero} {
		if string(b) == x.String() {
			*t = x
			return nil
		}
	}
	return errors.New("unknown atom type " + string(b))
}

// Atom is one ATOM or HETATM record that survived the reader's filters.
// Occupancy, BFactor and AltLoc are optional in the file; nil or ""
// means the column was blank.
type Atom struct {
	ID        int      `json:"id"`     // sequential, from 1, in reading order
	Serial    int      `json:"serial"` // serial number from the file, 0 if unreadable
	Name      string   `json:"name"`
	Element   string   `json:"element"`
	Pos       Xyz      `json:"position"`
	ResidueID string   `json:"residueId"` // resname + resseq + icode, unique within a chain
	ResName   string   `json:"resName"`
	ResSeq    int      `json:"resSeq"`
	ICode     string   `json:"iCode,omitempty"`
	ChainID   string   `json:"chainId"`
	Type      AtomType `json:"atomType"`
	Occupancy *float64 `json:"occupancy,omitempty"`
	BFactor   *float64 `json:"bFactor,omitempty"`
	AltLoc    string   `json:"altLoc,omitempty"`
	Charge    string   `json:"charge,omitempty"`
}

// Residue collects the atoms sharing a chain and a residue id. Atoms
// with alternate locations are kept in the same residue.
type Residue struct {
	ID      string  `json:"id"`   // same as Atom.ResidueID
	Name    string  `json:"name"` // three letter name, like "ALA"
	Type    string  `json:"type"` // one letter code, UnknownAA if not known
	SeqNum  int     `json:"position"`
	ICode   string  `json:"iCode,omitempty"`
	ChainID string  `json:"chainId"`
	Atoms   []*Atom `json:"-"`
}

// Atom returns the first atom in the residue with the given name,
// or nil.
func (r *Residue) Atom(name string) *Atom {
	for _, a := range r.Atoms {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Chain has residues sorted by residue number. Sequence is made from
// the residues and always has one letter per residue.
type Chain struct {
	ID       string     `json:"id"`
	Residues []*Residue `json:"residues"`
	Sequence string     `json:"sequence"`
}

// SecStructType is a helix or a sheet
type SecStructType byte

const (
	Helix SecStructType = iota
	Sheet
)

func (t SecStructType) String() string {
	if t == Helix {
		return "helix"
	}
	return "sheet"
}

func (t SecStructType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *SecStructType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "helix":
		*t = Helix
	case "sheet":
		*t = Sheet
	default:
		return errors.New("unknown secondary structure " + string(b))
	}
	return nil
}

// SecStruct is a HELIX or SHEET annotation. Start and End are residue
// numbers from the file and the range includes both ends. Nobody checks
// that annotations do not overlap or that the residues exist.
type SecStruct struct {
	Type    SecStructType `json:"type"`
	ChainID string        `json:"chainId"`
	Start   int           `json:"start"`
	End     int           `json:"end"`
	ID      string        `json:"id,omitempty"`      // helix id or strand number
	Class   string        `json:"class,omitempty"`   // helix class
	SheetID string        `json:"sheetId,omitempty"` // sheet identifier
	Sense   string        `json:"sense,omitempty"`   // strand sense relative to previous strand
}

// Metadata comes from HEADER, TITLE, SOURCE and REMARK records. Each
// field is filled, or not, on its own. An empty string means the
// record was not there.
type Metadata struct {
	Classification string     `json:"classification,omitempty"`
	DepDate        string     `json:"depositionDate,omitempty"`
	DepTime        *time.Time `json:"-"` // DepDate, if it could be read as a date
	PdbID          string     `json:"pdbId,omitempty"`
	Title          string     `json:"title,omitempty"`
	Organism       string     `json:"organism,omitempty"`
	Resolution     *float64   `json:"resolution,omitempty"` // Angstrom
	Method         string     `json:"method,omitempty"`
}

// Structure is what a reader returns. Nothing in here is changed
// after it has been handed back.
type Structure struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Sequence     string      `json:"sequence"` // chain sequences joined in the order chains were met
	Atoms        []*Atom     `json:"atoms"`
	Residues     []*Residue  `json:"-"`
	Chains       []*Chain    `json:"chains"`
	Metadata     Metadata    `json:"metadata"`
	SecStruct    []SecStruct `json:"secondaryStructure"`
	Bbox         BoundingBox `json:"boundingBox"`
	CenterOfMass Xyz         `json:"centerOfMass"` // plain mean of positions, masses are not used
	Created      time.Time   `json:"createdAt"`
	Updated      time.Time   `json:"updatedAt"`
}

// Chain returns the chain with the given id or nil.
func (s *Structure) Chain(id string) *Chain {
	for _, c := range s.Chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ChnSl is a slice of chains, with a method for getting their names.
type ChnSl []*Chain

// ChainNames returns a slice with the names of the chains.
func (chns ChnSl) ChainNames() (ret []string) {
	ret = make([]string, len(chns))
	for i, k := range chns {
		ret[i] = k.ID
	}
	return
}
