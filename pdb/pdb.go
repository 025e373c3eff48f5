// This is the upper level for reading PDB files.
// Map the file, decide if it is compressed or not and what format we
// are going to read. Then call the reader.

package pdb

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/protstruct/pdb/cmmn"
	"github.com/andrew-torda/protstruct/pdb/oldfmt"
	"github.com/andrew-torda/protstruct/pdb/zwrap"
)

const (
	OldFmt byte = iota
	MmcifFmt
	UnkFmt
)

// ErrMmcif comes back for files that look like mmCIF. We only read the
// old fixed column format.
var ErrMmcif = errors.New("mmcif format is not supported")

// fmtFromName guesses from the name. We cannot use filepath.Ext, since
// it will return .gz if we feed it a.pdb.gz.
func fmtFromName(fname string) byte {
	s := filepath.Base(fname)
	i := strings.IndexByte(s, '.')
	if i == -1 {
		return UnkFmt
	}
	s = strings.ToLower(s[i+1:]) // change .ent to ent
	switch {
	case strings.Contains(s, "pdb") || strings.Contains(s, "ent"):
		return OldFmt
	case strings.Contains(s, "cif"):
		return MmcifFmt
	}
	return UnkFmt
}

// fmtFromText looks at the start of each line until it finds
// something it recognises.
func fmtFromText(b []byte) byte {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HETATM", "ATOM", "MODEL"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	const maxTestLines = 5000
	scnnr := bufio.NewScanner(bytes.NewReader(b))
	scnnr.Buffer(make([]byte, 0, 4096), len(b)+4096)
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if strings.HasPrefix(s, w) {
				return MmcifFmt
			}
		}
		for _, w := range pdbWords {
			if strings.HasPrefix(s, w) {
				return OldFmt
			}
		}
	}
	return UnkFmt
}

// oldOrMmcif decides what format we will use. The name wins if it says
// anything, otherwise we peek inside.
func oldOrMmcif(fname string, b []byte) byte {
	if t := fmtFromName(fname); t != UnkFmt {
		return t
	}
	return fmtFromText(b)
}

// a fakecloser is a wrapper around a io.Writer which turns it into
// a WriteCloser.
type fakecloser struct {
	io.Writer
}

func (fakecloser) Close() error { return nil }

// LogWhere decides where to send output. "" throws it away, "stdout"
// and "stderr" are what they say and anything else is a file we append
// to. Close the returned closer when finished.
func LogWhere(outinfo string) (*log.Logger, io.Closer, error) {
	var iowriter io.WriteCloser
	switch outinfo { // Decide where to send the logged output
	case "":
		iowriter = fakecloser{io.Discard}
	case "stdout":
		iowriter = fakecloser{os.Stdout}
	case "stderr":
		iowriter = fakecloser{os.Stderr}
	default:
		var err error
		iowriter, err = os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
	}
	return log.New(iowriter, "", log.Lshortfile), iowriter, nil
}

// mapFile maps a file into memory. The caller must call unmap, even if
// the file was empty.
func mapFile(fname string) (b []byte, unmap func() error, err error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	defer fp.Close()
	info, err := fp.Stat()
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, errors.New(fname + " is a directory")
	}
	if info.Size() == 0 { // mmap refuses zero length
		return nil, func() error { return nil }, nil
	}
	m, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, nil, errors.New("mapping " + fname + ": " + err.Error())
	}
	return m, m.Unmap, nil
}

// fileText gets the contents of a file as a string, decompressed if
// necessary, and the format we think it is in.
func fileText(fname string) (string, byte, error) {
	b, unmap, err := mapFile(fname)
	if err != nil {
		return "", UnkFmt, err
	}
	defer unmap()
	if b, err = zwrap.Unwrap(b); err != nil {
		return "", UnkFmt, errors.New("reading " + fname + " " + err.Error())
	}
	return string(b), oldOrMmcif(fname, b), nil // string() copies, so unmap is safe
}

// ReadFile reads a file, plain or gzipped, and returns the structure and
// the lines that had to be skipped. Files we cannot classify are given
// to the old format reader, which will complain if there is nothing
// there.
func ReadFile(fname string, opts *oldfmt.Options) (*cmmn.Structure, []oldfmt.LineError, error) {
	text, typ, err := fileText(fname)
	if err != nil {
		return nil, nil, err
	}
	if typ == MmcifFmt {
		return nil, nil, fmt.Errorf("%s: %w", fname, ErrMmcif)
	}
	pr := oldfmt.NewPdbReader(opts)
	st, err := pr.Parse(text)
	if err != nil {
		return nil, pr.Warnings(), fmt.Errorf("%s: %w", fname, err)
	}
	return st, pr.Warnings(), nil
}

// ReadCoord takes a filename and reads it with the given options.
// During debugging, there can be a lot of output. This will be
// written to a file called outinfo. If outinfo is "", it will be
// trashed. If outinfo is "stdout", we write to standard output.
// A logger in opts is replaced.
func ReadCoord(fname string, opts oldfmt.Options, outinfo string) (*cmmn.Structure, error) {
	outlog, closer, err := LogWhere(outinfo)
	if err != nil {
		return nil, errors.New(err.Error() + " creating log file")
	}
	defer closer.Close()
	opts.Log = outlog
	st, warn, err := ReadFile(fname, &opts)
	if err != nil {
		outlog.Println(err)
		return nil, err
	}
	outlog.Println(fname, len(st.Atoms), "atoms", len(warn), "lines skipped")
	return st, nil
}

// ReadText reads from something that cannot be mapped, like standard
// input.
func ReadText(rdr io.Reader, opts *oldfmt.Options) (*cmmn.Structure, []oldfmt.LineError, error) {
	b, err := zwrap.WrapMaybe(rdr)
	if err != nil {
		return nil, nil, err
	}
	if fmtFromText(b) == MmcifFmt {
		return nil, nil, ErrMmcif
	}
	pr := oldfmt.NewPdbReader(opts)
	st, err := pr.Parse(string(b))
	return st, pr.Warnings(), err
}

// NatomsTot returns the total number of atoms and residues in a
// structure, counted through the chains.
func NatomsTot(st *cmmn.Structure) (nAtom, nRes int) {
	for _, c := range st.Chains {
		nRes += len(c.Residues)
		for _, r := range c.Residues {
			nAtom += len(r.Atoms)
		}
	}
	return
}
