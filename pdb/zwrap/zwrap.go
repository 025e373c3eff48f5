// Package zwrap looks at the bytes of a file and, if they are gzipped,
// hands back the decompressed version. Files from the PDB usually come
// as .ent.gz, but people gunzip them and forget to rename them, so we
// look at the magic number, not the name.
package zwrap

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
)

var gzMagic = []byte{0x1f, 0x8b}

// IsGzip says if b starts with the gzip magic number.
func IsGzip(b []byte) bool { return bytes.HasPrefix(b, gzMagic) }

// Unwrap returns b itself if it is not compressed, otherwise the
// decompressed bytes. The result does not share memory with b when b
// was compressed, so b may be unmapped afterwards.
func Unwrap(b []byte) ([]byte, error) {
	if !IsGzip(b) {
		return b, nil
	}
	zrdr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(zrdr)
	if e := zrdr.Close(); e != nil && err == nil {
		err = e
	}
	if err != nil {
		return nil, errors.New("decompressing: " + err.Error())
	}
	return out, nil
}

// WrapMaybe reads everything from rdr and decompresses it if necessary.
// It is for sources like standard input that cannot be mapped.
func WrapMaybe(rdr io.Reader) ([]byte, error) {
	b, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	return Unwrap(b)
}
