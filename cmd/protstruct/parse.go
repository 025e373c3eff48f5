package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/protstruct/pdb"
	"github.com/andrew-torda/protstruct/pdb/cmmn"
	"github.com/andrew-torda/protstruct/pdb/seqprop"
)

var asJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Read a file and summarise the structure",
	Long: `Read a file and summarise the structure.

Lines that cannot be read are skipped and listed on standard error.
With --json, the whole structure is written as json.
FILE may be gzipped. "-" reads standard input.`,
	Args: nArgs(1, true),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, warn, err := readStruct(args[0])
		for _, w := range warn {
			fmt.Fprintln(os.Stderr, w.Error())
		}
		if err != nil {
			return err
		}
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(st)
		}
		return summary(cmd.OutOrStdout(), st)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&asJSON, "json", false, "write the structure as json")
	rootCmd.AddCommand(parseCmd)
}

// summary writes the metadata and a few lines per chain.
func summary(w io.Writer, st *cmmn.Structure) error {
	md := st.Metadata
	nAtom, nRes := pdb.NatomsTot(st)
	fmt.Fprintf(w, "id:       %s\nname:     %s\n", md.PdbID, st.Name)
	if md.Classification != "" {
		fmt.Fprintf(w, "class:    %s\n", md.Classification)
	}
	if md.Organism != "" {
		fmt.Fprintf(w, "organism: %s\n", md.Organism)
	}
	if md.Method != "" {
		fmt.Fprintf(w, "method:   %s\n", md.Method)
	}
	if md.Resolution != nil {
		fmt.Fprintf(w, "resol:    %.2f A\n", *md.Resolution)
	}
	fmt.Fprintf(w, "%d atoms, %d residues, %d chains %v, %d helices/strands\n",
		nAtom, nRes, len(st.Chains), cmmn.ChnSl(st.Chains).ChainNames(), len(st.SecStruct))
	b := st.Bbox
	fmt.Fprintf(w, "box %.2f x %.2f x %.2f, centre (%.2f, %.2f, %.2f)\n",
		b.Size.X, b.Size.Y, b.Size.Z, st.CenterOfMass.X, st.CenterOfMass.Y, st.CenterOfMass.Z)
	for _, c := range st.Chains {
		s := c.Sequence
		fmt.Fprintf(w, "chain %s: %d residues, mw %.1f, gravy %.3f, charge %+.1f\n",
			c.ID, len(s), seqprop.MolWeight(s), seqprop.GRAVY(s), seqprop.NetCharge(s))
		for _, sc := range seqprop.Composition(s) {
			fmt.Fprintf(w, " %c %4d %5.1f%%", sc.Sym, sc.Count, sc.Percent)
		}
		if len(s) > 0 {
			fmt.Fprintln(w)
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
