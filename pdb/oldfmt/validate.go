package oldfmt

import (
	"fmt"
	"strconv"
)

// Validation is the result of Validate. Errors is empty when IsValid
// is true.
type Validation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Validate checks text without building anything. It looks for a
// HEADER, at least one ATOM or HETATM record, coordinate lines that
// are too short and coordinates that are not numbers. It does not
// know about the options to Parse and Parse does not call it.
func Validate(text string) Validation {
	var v Validation
	var haveHdr, haveAtoms bool
	addErr := func(n int, format string, a ...any) {
		v.Errors = append(v.Errors, "Line "+strconv.Itoa(n)+": "+fmt.Sprintf(format, a...))
	}
	scnr := newLineScanner(text)
	for scnr.cscan() {
		line := scnr.ctext()
		switch recordName(line) {
		case "HEADER":
			haveHdr = true
		case "ATOM", "HETATM":
			haveAtoms = true
			if len(line) < minAtomLen {
				addErr(scnr.n, "%s record too short (%d columns, need %d)",
					recordName(line), len(line), minAtomLen)
				continue
			}
			for _, c := range []struct {
				name string
				col  col
			}{{"x", atXCol}, {"y", atYCol}, {"z", atZCol}} {
				s := cols(line, c.col)
				if _, ok := parseCoord(s); !ok {
					addErr(scnr.n, "bad %s coordinate %q", c.name, s)
				}
			}
		}
	}
	if err := scnr.Err(); err != nil {
		v.Errors = append(v.Errors, "reading text: "+err.Error())
	}
	if !haveHdr {
		v.Errors = append(v.Errors, "Missing HEADER record")
	}
	if !haveAtoms {
		v.Errors = append(v.Errors, "No ATOM or HETATM records")
	}
	v.IsValid = len(v.Errors) == 0
	return v
}
