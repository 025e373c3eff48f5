// 19 Oct 2026
// The reader. Set it up, hand it the text, get back a structure.

package oldfmt

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/andrew-torda/protstruct/pdb/cmmn"
)

// Options says which atoms to keep and which model to read.
// ModelIndex counts from 0, so it is one less than the number on the
// MODEL record. If Log is nil, diagnostics are thrown away.
type Options struct {
	IncludeHydrogens bool
	IncludeWater     bool
	IncludeHetero    bool
	ModelIndex       int
	Log              *log.Logger
}

// DefaultOptions: no hydrogens, no water, keep HETATMs, first model.
func DefaultOptions() Options {
	return Options{IncludeHetero: true}
}

// PdbReader holds the instructions to the reader and the warnings from
// the last call to Parse. It can be used again, but not by two
// goroutines at once.
type PdbReader struct {
	opts  Options
	log   *log.Logger
	lerrs []LineError
}

// NewPdbReader returns a reader. If opts is nil, we use DefaultOptions.
func NewPdbReader(opts *Options) *PdbReader {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	lg := o.Log
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	return &PdbReader{opts: o, log: lg}
}

// SetHydrogens says whether or not to keep hydrogen atoms
func (pr *PdbReader) SetHydrogens(b bool) { pr.opts.IncludeHydrogens = b }

// SetWater says whether or not to keep waters
func (pr *PdbReader) SetWater(b bool) { pr.opts.IncludeWater = b }

// SetHetero says whether or not to keep atoms from HETATM records
func (pr *PdbReader) SetHetero(b bool) { pr.opts.IncludeHetero = b }

// SetModel picks the model to read, counting from 0.
func (pr *PdbReader) SetModel(i int) { pr.opts.ModelIndex = i }

// Warnings returns the lines the last call to Parse had to skip.
func (pr *PdbReader) Warnings() []LineError { return pr.lerrs }

// Parse is a shortcut for NewPdbReader(opts).Parse(text)
func Parse(text string, opts *Options) (*cmmn.Structure, error) {
	return NewPdbReader(opts).Parse(text)
}

// mdlGate decides if we are in the model we want. Without any MODEL
// records, the gate stays open and everything is one model.
type mdlGate struct {
	want  int  // model index we are looking for
	cur   int  // index of the model we are in
	nSeen int  // number of MODEL records so far
	open  bool // are atoms being accepted ?
}

func newMdlGate(want int) mdlGate { return mdlGate{want: want, cur: -1, open: true} }

func (g *mdlGate) start(serial int) {
	g.nSeen++
	g.cur = serial - 1
	g.open = g.cur == g.want
}

func (g *mdlGate) end() {
	if g.open && g.cur == g.want {
		g.open = false
	}
}

// pstate is everything that gets filled while going through the lines.
// There is a new one for each call to Parse.
type pstate struct {
	opts      *Options
	meta      cmmn.Metadata
	haveHdr   bool
	title     []string
	orgTagged bool     // organism came from an ORGANISM_SCIENTIFIC tag
	orgParts  []string // untagged SOURCE text
	secStruct []cmmn.SecStruct
	gate      mdlGate
	bld       *builder
}

type handler func(*pstate, string) error

var handlers = map[string]handler{
	"HEADER": (*pstate).header,
	"TITLE":  (*pstate).titleRec,
	"SOURCE": (*pstate).source,
	"REMARK": (*pstate).remark,
	"HELIX":  (*pstate).helix,
	"SHEET":  (*pstate).sheet,
	"MODEL":  (*pstate).model,
	"ENDMDL": (*pstate).endmdl,
	"ATOM":   (*pstate).atom,
	"HETATM": (*pstate).hetatm,
}

// doLine finds the handler for a line and calls it. A handler that
// panics is turned into an error, so it only costs us the line.
func (p *pstate) doLine(line string) (err error) {
	h, ok := handlers[recordName(line)]
	if !ok {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler failed: %v", r)
		}
	}()
	return h(p, line)
}

// Parse reads the text and builds a structure. Bad lines are skipped
// and reported by Warnings(). The error is non-nil only if the text is
// empty or nothing at all could be found in it.
func (pr *PdbReader) Parse(text string) (*cmmn.Structure, error) {
	pr.lerrs = nil
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Desc: "nothing to read", Err: ErrEmptyInput}
	}
	p := &pstate{
		opts: &pr.opts,
		gate: newMdlGate(pr.opts.ModelIndex),
		bld:  newBuilder(),
	}
	scnr := newLineScanner(text)
	for scnr.cscan() {
		line := scnr.ctext()
		if err := p.doLine(line); err != nil {
			lerr := newLineError(scnr.n, line, err)
			pr.lerrs = append(pr.lerrs, lerr)
			pr.log.Println("skipping", lerr)
		}
	}
	if err := scnr.Err(); err != nil {
		return nil, &ParseError{N: scnr.n, Desc: "reading text", Err: err}
	}
	st, err := p.assemble()
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.N = scnr.n
		}
		return nil, err
	}
	if len(pr.lerrs) > 0 {
		pr.log.Printf("%s: %d lines skipped", st.Metadata.PdbID, len(pr.lerrs))
	}
	return st, nil
}
