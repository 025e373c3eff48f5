// brokenio is a wrapper around an io.Reader which lets us break reads
// on purpose. It is for tests of code that reads files or http streams.
// A reader can fail with an error after a given number of bytes, or
// return nothing at all on the first read, which is what one often sees
// on a zero length file.

package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is what a Reader returns when it fails on purpose.
var ErrBroken = errors.New("brokenio: artificial read failure")

// A Reader is modelled on the various Readers in the standard library,
// but with settings controlling when it breaks.
type Reader struct {
	rdrOrig   io.Reader // Wrapped reader
	failAfter int       // fail once this many bytes have gone through, -1 never
	zeroFile  bool      // first read gives EOF
	nCalled   int
	nByte     int
}

// NewReader returns a new Reader, a wrapper around the old one. It does
// not break until told to.
func NewReader(rIn io.Reader) *Reader {
	return &Reader{rdrOrig: rIn, failAfter: -1}
}

// SetFailAfter says how many bytes get through before the error.
// A negative value means never fail.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// SetZeroFile makes the reader look like an empty file.
func (r *Reader) SetZeroFile(b bool) { r.zeroFile = b }

// NByte is the number of bytes that have gone through so far.
func (r *Reader) NByte() int { return r.nByte }

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.zeroFile && r.nCalled == 1 {
		return 0, io.EOF
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}
