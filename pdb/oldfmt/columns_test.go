package oldfmt_test

import (
	"strings"
	"testing"

	. "github.com/andrew-torda/protstruct/pdb/oldfmt"
)

// Reference lines, straight from files in the PDB, with the columns
// we expect to come out of them.
const (
	atomLine  = "ATOM   1234  CA BALA B 123A     11.639   6.071  -5.147  0.50 13.79           C1-"
	hetLine   = "HETATM 2345 ZN    ZN A 201       3.000   3.000  -1.000  1.00 20.00          ZN2+"
	hdrLine   = "HEADER    OXIDOREDUCTASE                          15-MAR-99   2XYZ"
	helixLine = "HELIX    1  H1 GLY A    1  LYS A    3  1"
	sheetLine = "SHEET    2  S1 2 GLU B  12  HIS B  13 -1"
	mdlLine   = "MODEL       12"
)

func TestColumns(t *testing.T) {
	tests := []struct {
		line, col, want string
	}{
		{atomLine, "recName", "ATOM"},
		{atomLine, "atSerial", "1234"},
		{atomLine, "atName", "CA"},
		{atomLine, "atAltLoc", "B"},
		{atomLine, "atResName", "ALA"},
		{atomLine, "atChain", "B"},
		{atomLine, "atResSeq", "123"},
		{atomLine, "atICode", "A"},
		{atomLine, "atX", "11.639"},
		{atomLine, "atY", "6.071"},
		{atomLine, "atZ", "-5.147"},
		{atomLine, "atOcc", "0.50"},
		{atomLine, "atBfac", "13.79"},
		{atomLine, "atElem", "C"},
		{atomLine, "atCharge", "1-"},
		{hetLine, "recName", "HETATM"},
		{hetLine, "atName", "ZN"},
		{hetLine, "atElem", "ZN"},
		{hetLine, "atCharge", "2+"},
		{hdrLine, "hdrClass", "OXIDOREDUCTASE"},
		{hdrLine, "hdrDate", "15-MAR-99"},
		{hdrLine, "hdrID", "2XYZ"},
		{helixLine, "hlxID", "H1"},
		{helixLine, "hlxChain", "A"},
		{helixLine, "hlxStart", "1"},
		{helixLine, "hlxEnd", "3"},
		{helixLine, "hlxClass", "1"},
		{sheetLine, "shtStrand", "2"},
		{sheetLine, "shtID", "S1"},
		{sheetLine, "shtChain", "B"},
		{sheetLine, "shtStart", "12"},
		{sheetLine, "shtEnd", "13"},
		{sheetLine, "shtSense", "-1"},
		{mdlLine, "mdlSerial", "12"},
	}
	for _, tt := range tests {
		c, ok := ColTable[tt.col]
		if !ok {
			t.Fatal("no column called", tt.col)
		}
		if got := Cols(tt.line, c); got != tt.want {
			t.Errorf("%s: got %q want %q", tt.col, got, tt.want)
		}
	}
}

// TestColumnEdges puts a single character at each end of every range
// and checks that it is seen, and that the neighbours outside are not.
func TestColumnEdges(t *testing.T) {
	for name, c := range ColTable {
		for _, pos := range [2]int{c.Start(), c.End()} {
			b := []byte(strings.Repeat(" ", 80))
			b[pos-1] = 'x'
			if got := Cols(string(b), c); got != "x" {
				t.Errorf("%s: x in column %d gave %q", name, pos, got)
			}
		}
		if c.Start() > 1 {
			b := []byte(strings.Repeat(" ", 80))
			b[c.Start()-2] = 'x'
			if got := Cols(string(b), c); got != "" {
				t.Errorf("%s: picked up column %d before the start", name, c.Start()-1)
			}
		}
		if c.End() < 80 {
			b := []byte(strings.Repeat(" ", 80))
			b[c.End()] = 'x'
			if got := Cols(string(b), c); got != "" {
				t.Errorf("%s: picked up column %d after the end", name, c.End()+1)
			}
		}
	}
}

func TestColsShort(t *testing.T) {
	tests := []struct {
		line       string
		start, end int
		want       string
	}{
		{"", 1, 6, ""},
		{"ATOM", 1, 6, "ATOM"},
		{"ATOM  ", 7, 11, ""},
		{"ATOM      1", 7, 11, "1"},
		{"ATOM      12", 7, 11, "1"},
	}
	for _, tt := range tests {
		if got := Cols(tt.line, Col(tt.start, tt.end)); got != tt.want {
			t.Errorf("%q cols %d-%d: got %q want %q", tt.line, tt.start, tt.end, got, tt.want)
		}
	}
	if MinAtomLen != 54 {
		t.Error("coordinate lines need 54 columns, have", MinAtomLen)
	}
}

func TestRecordName(t *testing.T) {
	tests := []struct{ line, want string }{
		{atomLine, "ATOM"},
		{hetLine, "HETATM"},
		{"ATOM100000  CA  ALA A   1", "ATOM"},
		{"ATOMS", "ATOMS"},
		{"END", "END"},
		{"TITLE    2 MORE", "TITLE"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := RecordName(tt.line); got != tt.want {
			t.Errorf("%q: got %q want %q", tt.line, got, tt.want)
		}
	}
}
