// Records that only carry metadata: HEADER, TITLE, SOURCE and REMARK.

package oldfmt

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// UnknownID is used when a HEADER record has no id code.
const UnknownID = "UNKN"

const (
	orgTag      = "ORGANISM_SCIENTIFIC:"
	resolRemark = 2
	exptRemark  = 200
)

var resolRe = regexp.MustCompile(`(\d+\.\d+)\s*ANGSTROMS`)

// srcTokens are the SOURCE record tokens other than the organism. A
// line starting with one of these is not part of a bare organism name.
var srcTokens = map[string]bool{
	"MOL_ID": true, "SYNTHETIC": true, "FRAGMENT": true,
	"ORGANISM_COMMON": true, "ORGANISM_TAXID": true, "STRAIN": true,
	"VARIANT": true, "CELL_LINE": true, "ATCC": true, "ORGAN": true,
	"TISSUE": true, "CELL": true, "ORGANELLE": true, "SECRETION": true,
	"CELLULAR_LOCATION": true, "PLASMID": true, "GENE": true,
	"EXPRESSION_SYSTEM": true, "EXPRESSION_SYSTEM_COMMON": true,
	"EXPRESSION_SYSTEM_TAXID": true, "EXPRESSION_SYSTEM_STRAIN": true,
	"EXPRESSION_SYSTEM_VARIANT": true, "EXPRESSION_SYSTEM_CELL_LINE": true,
	"EXPRESSION_SYSTEM_ATCC_NUMBER": true, "EXPRESSION_SYSTEM_ORGAN": true,
	"EXPRESSION_SYSTEM_TISSUE": true, "EXPRESSION_SYSTEM_CELL": true,
	"EXPRESSION_SYSTEM_ORGANELLE": true, "EXPRESSION_SYSTEM_CELLULAR_LOCATION": true,
	"EXPRESSION_SYSTEM_VECTOR_TYPE": true, "EXPRESSION_SYSTEM_VECTOR": true,
	"EXPRESSION_SYSTEM_PLASMID": true, "EXPRESSION_SYSTEM_GENE": true,
	"OTHER_DETAILS": true,
}

// isSrcToken says if s is a "TOKEN: value" pair with a known token.
func isSrcToken(s string) bool {
	tok, _, found := strings.Cut(s, ":")
	return found && srcTokens[strings.TrimSpace(tok)]
}

// header gets the classification, date and id code. A second HEADER is
// an error and the first one is kept.
func (p *pstate) header(line string) error {
	if p.haveHdr {
		return errors.New("more than one HEADER record")
	}
	p.haveHdr = true
	p.meta.Classification = cols(line, hdrClassCol)
	p.meta.DepDate = cols(line, hdrDateCol)
	if t, err := time.Parse("02-Jan-06", p.meta.DepDate); err == nil {
		p.meta.DepTime = &t
	}
	p.meta.PdbID = cols(line, hdrIDCol)
	if p.meta.PdbID == "" {
		p.meta.PdbID = UnknownID
	}
	return nil
}

// titleRec saves one line of title. They get joined at the end.
func (p *pstate) titleRec(line string) error {
	if s := cols(line, titleTextCol); s != "" {
		p.title = append(p.title, s)
	}
	return nil
}

// source looks for the organism. If there is an ORGANISM_SCIENTIFIC
// tag, we take what follows, up to a semicolon. Some programs write
// just the name of the organism on the SOURCE line, so we keep text
// without the tag as long as no tag has been seen and it does not start
// with one of the other SOURCE tokens. A colon on its own is fine.
func (p *pstate) source(line string) error {
	s := cols(line, sourceTextCol)
	if i := strings.Index(s, orgTag); i != -1 {
		org := s[i+len(orgTag):]
		if j := strings.IndexByte(org, ';'); j != -1 {
			org = org[:j]
		}
		if org = strings.TrimSpace(org); org != "" {
			p.meta.Organism = org
			p.orgTagged = true
		}
		return nil
	}
	if p.orgTagged || s == "" || isSrcToken(s) {
		return nil
	}
	p.orgParts = append(p.orgParts, strings.TrimSuffix(s, ";"))
	p.meta.Organism = strings.Join(p.orgParts, " ")
	return nil
}

// remark only cares about REMARK 2 (resolution) and REMARK 200
// (experiment type). Other remarks are ignored.
func (p *pstate) remark(line string) error {
	snum := cols(line, remarkNumCol)
	if snum == "" {
		return nil
	}
	num, err := strconv.Atoi(snum)
	if err != nil {
		return errors.New("remark number: " + err.Error())
	}
	text := cols(line, remarkTextCol)
	switch num {
	case resolRemark:
		if !strings.Contains(text, "RESOLUTION") {
			return nil
		}
		m := resolRe.FindStringSubmatch(text)
		if m == nil {
			return nil // "NOT APPLICABLE" and friends
		}
		r, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return errors.New("resolution: " + err.Error())
		}
		p.meta.Resolution = &r
	case exptRemark:
		if !strings.Contains(text, "EXPERIMENT TYPE") {
			return nil
		}
		if i := strings.IndexByte(text, ':'); i != -1 {
			if m := strings.TrimSpace(text[i+1:]); m != "" {
				p.meta.Method = m
			}
		}
	}
	return nil
}
