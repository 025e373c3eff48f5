package pdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	. "github.com/andrew-torda/protstruct/pdb"
)

// pdbServer pretends to be the data banks. It knows about one entry,
// 1abc, and sends it gzipped if the name asks for it.
func pdbServer(t *testing.T) *httptest.Server {
	t.Helper()
	plain, err := os.ReadFile(testdir + "ala.pdb")
	if err != nil {
		t.Fatal(err)
	}
	zipped := gzipped(t, plain)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Path[strings.LastIndexByte(r.URL.Path, '/')+1:]
		switch {
		case !strings.Contains(name, "1abc"):
			http.NotFound(w, r)
		case strings.HasSuffix(name, ".gz"):
			w.Write(zipped)
		default:
			w.Write(plain)
		}
	}))
}

func TestFetch(t *testing.T) {
	srv := pdbServer(t)
	defer srv.Close()
	defer SetSiteBase(srv.URL + "/")()

	for i := 0; i < NSites()+1; i++ {
		st, warn, err := Fetch(context.Background(), "1ABC", i, nil)
		if err != nil {
			t.Errorf("site %d: %v", i, err)
			continue
		}
		if len(st.Atoms) != 5 || len(warn) != 0 {
			t.Errorf("site %d: %d atoms %d warnings", i, len(st.Atoms), len(warn))
		}
	}
}

func TestFetchFail(t *testing.T) {
	srv := pdbServer(t)
	defer srv.Close()
	defer SetSiteBase(srv.URL + "/")()

	if _, _, err := Fetch(context.Background(), "9zzz", 0, nil); err == nil || !strings.Contains(err.Error(), "404") {
		t.Error("missing entry should give 404, got", err)
	}
	if _, _, err := Fetch(context.Background(), "toolong", 0, nil); err == nil {
		t.Error("seven letter code accepted")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Fetch(ctx, "1abc", 0, nil); err == nil {
		t.Error("cancelled context should stop the download")
	}
}
