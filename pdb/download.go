// Go to a pdb website and download coordinates.
// The main point is to visit the web page and hand the text to the
// same reader the files go to.

package pdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/andrew-torda/protstruct/pdb/cmmn"
	"github.com/andrew-torda/protstruct/pdb/oldfmt"
	"github.com/andrew-torda/protstruct/pdb/zwrap"
)

// site is where one of the data banks keeps old format files. The name
// is prefix + four letter code + suffix.
type site struct {
	urlBase, prefix, suffix string
}

var sites = []site{
	{"https://files.rcsb.org/download/", "", ".pdb.gz"},
	{"https://www.ebi.ac.uk/pdbe/entry-files/download/", "pdb", ".ent"},
	{"https://files.wwpdb.org/pub/pdb/data/structures/all/pdb/", "pdb", ".ent.gz"},
}

// NSites is the number of sites Fetch knows about.
func NSites() int { return len(sites) }

// getHTTP is given a four letter pdb code. It goes to the protein data
// bank and returns the text, decompressed if necessary.
// There are three sites for structures. You can pick which one you want with
// siteNum. If you give a value that it too big, we use a modulo to wrap
// it around, rather than generate an error. This makes it easier to cycle
// through them or pick one at random.
func getHTTP(ctx context.Context, acqCode string, siteNum int) ([]byte, error) {
	if len(acqCode) != 4 {
		return nil, errors.New("acq code should be four char, not " + acqCode)
	}
	if siteNum < 0 {
		siteNum = -siteNum
	}
	s := sites[siteNum%len(sites)]
	url := s.urlBase + s.prefix + strings.ToLower(acqCode) + s.suffix

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("Wanted " + acqCode + " using " + url + ", got " + resp.Status)
	}
	return zwrap.WrapMaybe(resp.Body)
}

// Fetch downloads a structure by its four letter code and reads it.
func Fetch(ctx context.Context, acqCode string, siteNum int, opts *oldfmt.Options) (*cmmn.Structure, []oldfmt.LineError, error) {
	b, err := getHTTP(ctx, acqCode, siteNum)
	if err != nil {
		return nil, nil, err
	}
	pr := oldfmt.NewPdbReader(opts)
	st, err := pr.Parse(string(b))
	if err != nil {
		return nil, pr.Warnings(), fmt.Errorf("%s: %w", acqCode, err)
	}
	return st, pr.Warnings(), nil
}
