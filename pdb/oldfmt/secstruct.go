package oldfmt

import (
	"fmt"
	"strconv"

	"github.com/andrew-torda/protstruct/pdb/cmmn"
)

// ssRange reads the start and end residue numbers of a helix or strand.
func ssRange(line string, startCol, endCol col) (start, end int, err error) {
	if start, err = strconv.Atoi(cols(line, startCol)); err != nil {
		return 0, 0, fmt.Errorf("start residue: %w", err)
	}
	if end, err = strconv.Atoi(cols(line, endCol)); err != nil {
		return 0, 0, fmt.Errorf("end residue: %w", err)
	}
	return start, end, nil
}

func ssChain(line string, c col) string {
	if s := cols(line, c); s != "" {
		return s
	}
	return dfltChain
}

// helix adds a HELIX annotation. They are kept in file order with
// sheets and nobody checks for overlaps.
func (p *pstate) helix(line string) error {
	start, end, err := ssRange(line, hlxStartCol, hlxEndCol)
	if err != nil {
		return err
	}
	p.secStruct = append(p.secStruct, cmmn.SecStruct{
		Type:    cmmn.Helix,
		ChainID: ssChain(line, hlxChainCol),
		Start:   start,
		End:     end,
		ID:      cols(line, hlxIDCol),
		Class:   cols(line, hlxClassCol),
	})
	return nil
}

// sheet adds one strand from a SHEET record.
func (p *pstate) sheet(line string) error {
	start, end, err := ssRange(line, shtStartCol, shtEndCol)
	if err != nil {
		return err
	}
	p.secStruct = append(p.secStruct, cmmn.SecStruct{
		Type:    cmmn.Sheet,
		ChainID: ssChain(line, shtChainCol),
		Start:   start,
		End:     end,
		ID:      cols(line, shtStrandCol),
		SheetID: cols(line, shtIDCol),
		Sense:   cols(line, shtSenseCol),
	})
	return nil
}
