package oldfmt

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andrew-torda/protstruct/pdb/cmmn"
	"github.com/andrew-torda/protstruct/pdb/geom"
)

// DefaultName is used when there is neither a title nor an id.
const DefaultName = "Parsed Structure"

// assemble puts the pieces together after the last line. It only fails
// if there is nothing at all to return.
func (p *pstate) assemble() (*cmmn.Structure, error) {
	b := p.bld
	if len(b.atoms) == 0 && len(b.chainOrder) == 0 && p.meta.PdbID == "" {
		return nil, &ParseError{Desc: "no structure found", Err: ErrNoStructure}
	}
	b.finish()
	p.meta.Title = strings.Join(p.title, " ")

	st := &cmmn.Structure{
		ID:        uuid.NewString(),
		Atoms:     b.atoms,
		Residues:  b.rsdOrder,
		Chains:    b.chainOrder,
		Metadata:  p.meta,
		SecStruct: p.secStruct,
		Bbox:      geom.Bbox(b.atoms),
	}
	switch {
	case p.meta.Title != "":
		st.Name = p.meta.Title
	case p.meta.PdbID != "":
		st.Name = p.meta.PdbID
	default:
		st.Name = DefaultName
	}
	st.CenterOfMass = geom.Centroid(b.atoms)

	var sb strings.Builder
	for _, c := range b.chainOrder {
		sb.WriteString(c.Sequence)
	}
	st.Sequence = sb.String()
	st.Created = time.Now()
	st.Updated = st.Created
	return st, nil
}
