// Errors. A LineError remembers the line number and the start of the
// line that gave the problem. These are not fatal. A ParseError is
// what comes back when there is no structure at all.

package oldfmt

import (
	"errors"
	"strconv"
)

const maxMsgLen = 70

var (
	ErrEmptyInput  = errors.New("empty input")
	ErrNoStructure = errors.New("no atoms, chains or identifier")
)

// LineError is one line that could not be used.
type LineError struct {
	N      int    // line number, from 1
	Inline string // the line that provoked the error, maybe shortened
	Desc   string // description of error
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

func newLineError(n int, line string, err error) LineError {
	return LineError{N: n, Inline: firstPart(line), Desc: err.Error()}
}

// Error gives the line number, description and the start of the line.
func (e LineError) Error() string {
	errmsg := "Line: " + strconv.Itoa(e.N) + " " + e.Desc
	if e.Inline != "" {
		errmsg += "\nLine starting with\n" + e.Inline
	}
	return errmsg
}

// ParseError means the whole text was useless. Err is the cause and
// can be checked with errors.Is against ErrEmptyInput or ErrNoStructure.
// N is the last line number read, 0 if it means nothing.
type ParseError struct {
	N    int
	Desc string
	Err  error
}

func (e *ParseError) Error() string {
	var errmsg string
	if e.N != 0 {
		errmsg = "Line: " + strconv.Itoa(e.N) + " "
	}
	errmsg += e.Desc
	if e.Err != nil {
		errmsg += ": " + e.Err.Error()
	}
	return errmsg
}

func (e *ParseError) Unwrap() error { return e.Err }
