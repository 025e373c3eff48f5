// Package seqprop does simple calculations on the one letter sequences
// of parsed chains and writes them out in fasta format.
// Letters we do not know about (X for unknown or hetero groups) are
// counted in the composition and the length used for GRAVY, but
// contribute nothing to the weight, hydropathy or charge.
package seqprop

import (
	"bufio"
	"io"
	"sort"

	"github.com/andrew-torda/protstruct/pdb/cmmn"
)

// Average masses of the free amino acids in daltons
var aaMass = map[byte]float64{
	'A': 89.09, 'R': 174.20, 'N': 132.12, 'D': 133.10, 'C': 121.15,
	'E': 147.13, 'Q': 146.15, 'G': 75.07, 'H': 155.16, 'I': 131.17,
	'L': 131.17, 'K': 146.19, 'M': 149.21, 'F': 165.19, 'P': 115.13,
	'S': 105.09, 'T': 119.12, 'W': 204.23, 'Y': 181.19, 'V': 117.15,
}

// waterMass is lost for each peptide bond
const waterMass = 18.015

// Kyte and Doolittle, J Mol Biol 157, 105-132 (1982)
var kyteDoolittle = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5, 'C': 2.5,
	'E': -3.5, 'Q': -3.5, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'L': 3.8, 'K': -3.9, 'M': 1.9, 'F': 2.8, 'P': -1.6,
	'S': -0.8, 'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}

// Charges at neutral pH. Histidine gets half.
var aaCharge = map[byte]float64{'R': 1, 'K': 1, 'D': -1, 'E': -1, 'H': 0.5}

// SymCount is how often one letter turns up.
type SymCount struct {
	Sym     byte
	Count   int
	Percent float64
}

// Composition counts each letter in seq. The result is sorted by
// letter. An empty sequence gives an empty slice.
func Composition(seq string) []SymCount {
	var counts [256]int
	for i := 0; i < len(seq); i++ {
		counts[seq[i]]++
	}
	var ret []SymCount
	for c, n := range counts {
		if n == 0 {
			continue
		}
		ret = append(ret, SymCount{
			Sym:     byte(c),
			Count:   n,
			Percent: 100 * float64(n) / float64(len(seq)),
		})
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Sym < ret[j].Sym })
	return ret
}

// MolWeight is the average mass of the peptide in daltons. Unknown
// letters, like waters and ions, are left out completely, so they
// neither add mass nor lose a water to a peptide bond.
func MolWeight(seq string) float64 {
	var m float64
	var nKnown int
	for i := 0; i < len(seq); i++ {
		if w, ok := aaMass[seq[i]]; ok {
			m += w
			nKnown++
		}
	}
	if nKnown == 0 {
		return 0
	}
	return m - float64(nKnown-1)*waterMass
}

// Hydropathy gives the Kyte-Doolittle value for each residue.
func Hydropathy(seq string) []float64 {
	h := make([]float64, len(seq))
	for i := 0; i < len(seq); i++ {
		h[i] = kyteDoolittle[seq[i]]
	}
	return h
}

// GRAVY is the grand average of hydropathy, 0 for an empty sequence.
func GRAVY(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	var sum float64
	for _, h := range Hydropathy(seq) {
		sum += h
	}
	return sum / float64(len(seq))
}

// NetCharge adds up the charges of the side chains.
func NetCharge(seq string) float64 {
	var q float64
	for i := 0; i < len(seq); i++ {
		q += aaCharge[seq[i]]
	}
	return q
}

// FastaLineLen is how many residues go on a line.
const FastaLineLen = 60

// WriteFasta writes one entry per chain, with a comment line like
// ">name|A". Chains without residues are left out.
func WriteFasta(w io.Writer, st *cmmn.Structure) error {
	bw := bufio.NewWriter(w)
	for _, c := range st.Chains {
		if len(c.Sequence) == 0 {
			continue
		}
		bw.WriteString(">" + st.Name + "|" + c.ID + "\n")
		for s := c.Sequence; len(s) > 0; {
			n := min(len(s), FastaLineLen)
			bw.WriteString(s[:n])
			bw.WriteByte('\n')
			s = s[n:]
		}
	}
	return bw.Flush()
}
