package oldfmt

import (
	"bufio"
	"strings"
)

// lineScanner is a wrapper around bufio.Scanner that jumps over blank
// lines, removes a trailing carriage return and counts lines in n, so
// we can print out the line number in error messages. Blank lines are
// counted too.
type lineScanner struct {
	*bufio.Scanner        // standard library scanner
	ctoken         string // what ctext() returns
	n              int    // line number of ctoken
}

// newLineScanner reads from text. The buffer may grow to the size of
// the text, so a long line cannot stop the scanner.
func newLineScanner(text string) *lineScanner {
	s := bufio.NewScanner(strings.NewReader(text))
	const iniBuf = 4096
	s.Buffer(make([]byte, 0, iniBuf), len(text)+iniBuf)
	return &lineScanner{Scanner: s}
}

// cscan moves to the next line which is not blank. It returns false
// at the end of input.
func (s *lineScanner) cscan() bool {
	for s.Scan() {
		s.n++
		t := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(t) == "" {
			continue
		}
		s.ctoken = t
		return true
	}
	s.ctoken = ""
	return false
}

// ctext is the current line
func (s *lineScanner) ctext() string { return s.ctoken }
