package cmmn

// UnknownAA is the one letter code for anything not in the table.
const UnknownAA = "X"

// aaThreeToOne maps three letter residue names to one letter codes.
var aaThreeToOne = map[string]string{
	"ALA": "A", "ARG": "R", "ASN": "N", "ASP": "D", "CYS": "C",
	"GLU": "E", "GLN": "Q", "GLY": "G", "HIS": "H", "ILE": "I",
	"LEU": "L", "LYS": "K", "MET": "M", "PHE": "F", "PRO": "P",
	"SER": "S", "THR": "T", "TRP": "W", "TYR": "Y", "VAL": "V",
	"SEC": "U", "PYL": "O",
}

// OneLetter returns the one letter code for a residue name. Waters,
// ligands and anything else we do not know get UnknownAA.
func OneLetter(resName string) string {
	if c, ok := aaThreeToOne[resName]; ok {
		return c
	}
	return UnknownAA
}
