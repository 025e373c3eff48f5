package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/protstruct/pdb/cmmn"
)

var testdir = filepath.FromSlash("../../pdb/oldfmt/testdata/")

// run executes the command tree as if from the command line. Flags
// keep their values from one call to the next, so the package level
// ones are reset.
func run(args ...string) (string, error) {
	asJSON, chainID = false, ""
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestParseCmd(t *testing.T) {
	out, err := run("parse", testdir+"full.pdb")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"2XYZ", "ESCHERICHIA COLI", "10 atoms, 6 residues, 2 chains [A B]", "chain B: 2 residues"} {
		if !strings.Contains(out, want) {
			t.Errorf("output has no %q:\n%s", want, out)
		}
	}
	out, err = run("parse", "--json", testdir+"ala.pdb")
	if err != nil {
		t.Fatal(err)
	}
	var st cmmn.Structure
	if err := json.Unmarshal([]byte(out), &st); err != nil {
		t.Fatal(err)
	}
	if len(st.Atoms) != 5 || st.Metadata.PdbID != "1ABC" || st.Chains[0].Sequence != "A" {
		t.Errorf("json gave %+v", st)
	}
}

func TestValidateCmd(t *testing.T) {
	if out, err := run("validate", testdir+"ala.pdb"); err != nil || !strings.Contains(out, "ok") {
		t.Errorf("ala.pdb should be valid: %v\n%s", err, out)
	}
	out, err := run("validate", testdir+"full.pdb")
	if !errors.Is(err, errInvalid) {
		t.Errorf("full.pdb should be invalid, got %v", err)
	}
	if !strings.Contains(out, "Line 20") {
		t.Errorf("no line number in\n%s", out)
	}
}

func TestUsage(t *testing.T) {
	var uerr usageError
	for _, args := range [][]string{
		{"parse"},
		{"validate", "a", "b"},
		{"fasta"},
		{"parse", "--nonsense", "a.pdb"},
	} {
		if _, err := run(args...); !errors.As(err, &uerr) {
			t.Errorf("%v: want a usage error, got %v", args, err)
		}
	}
}

func TestFastaCmd(t *testing.T) {
	out, err := run("fasta", testdir+"ala.pdb", testdir+"full.pdb")
	if err != nil {
		t.Fatal(err)
	}
	want := ">TEST PROTEIN|A\nA\n>A SMALL TWO CHAIN PROTEIN|A\nGAKX\n>A SMALL TWO CHAIN PROTEIN|B\nVW\n"
	if out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}
}

func TestCtmapCmd(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "map.png")
	if _, err := run("ctmap", "--chain", "B", "--scale", "3", testdir+"full.pdb", outfile); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(outfile)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	img, err := png.Decode(fp)
	if err != nil {
		t.Fatal(err)
	}
	if w := img.Bounds().Dx(); w != 6 {
		t.Errorf("two residues at 3 pixels should be 6 wide, got %d", w)
	}
	if _, err := run("ctmap", "--chain", "Q", testdir+"full.pdb", outfile); err == nil {
		t.Error("chain Q does not exist")
	}
}
