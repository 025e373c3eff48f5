package oldfmt

import (
	"sort"
	"strings"

	"github.com/andrew-torda/protstruct/pdb/cmmn"
)

// rsdKey identifies a residue. The same residue id may turn up in two
// chains.
type rsdKey struct{ chain, rsd string }

// builder collects atoms and sorts them into residues and chains as
// they arrive. The first atom with a new key makes the residue, later
// ones (including alternate locations) are appended.
type builder struct {
	atoms      []*cmmn.Atom
	rsdMap     map[rsdKey]*cmmn.Residue
	rsdOrder   []*cmmn.Residue
	chnMap     map[string]*cmmn.Chain
	chainOrder []*cmmn.Chain
}

func newBuilder() *builder {
	return &builder{
		rsdMap: make(map[rsdKey]*cmmn.Residue),
		chnMap: make(map[string]*cmmn.Chain),
	}
}

// add gives the atom its id and files it under a residue and chain.
func (b *builder) add(a *cmmn.Atom) {
	a.ID = len(b.atoms) + 1
	b.atoms = append(b.atoms, a)

	key := rsdKey{a.ChainID, a.ResidueID}
	r, ok := b.rsdMap[key]
	if !ok {
		r = &cmmn.Residue{
			ID:      a.ResidueID,
			Name:    a.ResName,
			Type:    cmmn.OneLetter(a.ResName),
			SeqNum:  a.ResSeq,
			ICode:   a.ICode,
			ChainID: a.ChainID,
		}
		b.rsdMap[key] = r
		b.rsdOrder = append(b.rsdOrder, r)
		c, ok := b.chnMap[a.ChainID]
		if !ok {
			c = &cmmn.Chain{ID: a.ChainID}
			b.chnMap[a.ChainID] = c
			b.chainOrder = append(b.chainOrder, c)
		}
		c.Residues = append(c.Residues, r)
	}
	r.Atoms = append(r.Atoms, a)
}

// finish sorts the residues in each chain by number and makes the
// sequences. Residues with the same number keep their order, so
// insertion codes stay as they were in the file.
func (b *builder) finish() {
	for _, c := range b.chainOrder {
		sort.SliceStable(c.Residues, func(i, j int) bool {
			return c.Residues[i].SeqNum < c.Residues[j].SeqNum
		})
		var sb strings.Builder
		for _, r := range c.Residues {
			sb.WriteString(r.Type)
		}
		c.Sequence = sb.String()
	}
}
