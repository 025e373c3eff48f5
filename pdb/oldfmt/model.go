package oldfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// model starts a new model. The serial number should be in columns
// 11-14, but we also take "MODEL 2". If there is no readable number,
// we count MODEL records, note the problem and carry on.
func (p *pstate) model(line string) error {
	s := cols(line, mdlSerialCol)
	if s == "" && len(line) > recNameCol.end {
		if f := strings.Fields(line[recNameCol.end:]); len(f) > 0 {
			s = f[0]
		}
	}
	serial, err := strconv.Atoi(s)
	if err != nil {
		serial = p.gate.nSeen + 1
		p.gate.start(serial)
		return fmt.Errorf("model serial %q, taking it as model %d", s, serial)
	}
	p.gate.start(serial)
	return nil
}

func (p *pstate) endmdl(string) error {
	p.gate.end()
	return nil
}
