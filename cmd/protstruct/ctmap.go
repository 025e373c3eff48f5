package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/protstruct/pdb/ctmap"
	"github.com/andrew-torda/protstruct/pdb/geom"
)

var chainID string

var ctmapCmd = &cobra.Command{
	Use:   "ctmap FILE OUT.png",
	Short: "Draw the CA distance map of one chain",
	Args:  nArgs(2, true),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := readStruct(args[0])
		if err != nil {
			return err
		}
		if len(st.Chains) == 0 {
			return errors.New(args[0] + ": no chains")
		}
		chn := st.Chains[0]
		if chainID != "" {
			if chn = st.Chain(chainID); chn == nil {
				return errors.New(args[0] + ": no chain " + chainID)
			}
		}
		mat, rsdues, err := geom.CaDistMat(chn)
		if err != nil {
			return err
		}
		outlog.Println(args[0], "chain", chn.ID, len(rsdues), "residues with CA")
		fp, err := os.Create(args[1])
		if err != nil {
			return err
		}
		title := st.Metadata.PdbID + " chain " + chn.ID
		if err := ctmap.Render(fp, mat, title, cfg.CtmapOpts()); err != nil {
			fp.Close()
			return err
		}
		return fp.Close()
	},
}

func init() {
	f := ctmapCmd.Flags()
	f.StringVar(&chainID, "chain", "", "chain to draw, default is the first")
	f.Float32("cutoff", 20, "distance in Angstrom from which pairs are white")
	f.Int("scale", 4, "pixels per residue")
	bindings["cutoff"] = "ctmap.cutoff"
	bindings["scale"] = "ctmap.scale"
	rootCmd.AddCommand(ctmapCmd)
}
