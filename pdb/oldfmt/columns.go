// All the column positions we use are in this file. Numbers are as in
// the wwPDB format description, so they count from 1 and both ends are
// included. If something is off by one, this is the place to look.

package oldfmt

import (
	"strings"
)

type col struct {
	start, end int
}

// Record name, for every line
var recNameCol = col{1, 6}

// HEADER
var (
	hdrClassCol = col{11, 50}
	hdrDateCol  = col{51, 59}
	hdrIDCol    = col{63, 66}
)

// TITLE and SOURCE. The official SOURCE text stops at 79, but we take
// whatever is in column 80 too.
var (
	titleTextCol  = col{11, 80}
	sourceTextCol = col{11, 80}
)

// REMARK
var (
	remarkNumCol  = col{8, 10}
	remarkTextCol = col{11, 80}
)

// MODEL
var mdlSerialCol = col{11, 14}

// HELIX
var (
	hlxIDCol    = col{12, 14}
	hlxChainCol = col{20, 20}
	hlxStartCol = col{22, 25}
	hlxEndCol   = col{34, 37}
	hlxClassCol = col{39, 40}
)

// SHEET
var (
	shtStrandCol = col{8, 10}
	shtIDCol     = col{12, 14}
	shtChainCol  = col{22, 22}
	shtStartCol  = col{23, 26}
	shtEndCol    = col{34, 37}
	shtSenseCol  = col{39, 40}
)

// ATOM and HETATM
var (
	atSerialCol  = col{7, 11}
	atNameCol    = col{13, 16}
	atAltLocCol  = col{17, 17}
	atResNameCol = col{18, 20}
	atChainCol   = col{22, 22}
	atResSeqCol  = col{23, 26}
	atICodeCol   = col{27, 27}
	atXCol       = col{31, 38}
	atYCol       = col{39, 46}
	atZCol       = col{47, 54}
	atOccCol     = col{55, 60}
	atBfacCol    = col{61, 66}
	atElemCol    = col{77, 78}
	atChargeCol  = col{79, 80}
)

// minAtomLen is the shortest ATOM/HETATM line that still has all three
// coordinates.
var minAtomLen = atZCol.end

// cols returns the text in a column range with surrounding space
// removed. A line that is too short gives whatever is there, maybe
// nothing.
func cols(line string, c col) string {
	rs, re := c.start-1, c.end
	if rs >= len(line) || rs < 0 || re < rs {
		return ""
	}
	if re > len(line) {
		re = len(line)
	}
	return strings.TrimSpace(line[rs:re])
}

// recordName gets the record type from the first six columns.
// Files with more than 99999 atoms sometimes let the serial number run
// into the record name, as in "ATOM100000". We still call that ATOM.
func recordName(line string) string {
	rec := cols(line, recNameCol)
	if len(rec) > 4 && strings.HasPrefix(rec, "ATOM") && allDigits(rec[4:]) {
		return "ATOM"
	}
	return rec
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
