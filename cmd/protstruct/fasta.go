package main

import (
	"github.com/spf13/cobra"

	"github.com/andrew-torda/protstruct/pdb/seqprop"
)

var fastaCmd = &cobra.Command{
	Use:   "fasta FILE...",
	Short: "Write the sequence of each chain in fasta format",
	Args:  nArgs(1, false),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, fname := range args {
			st, warn, err := readStruct(fname)
			if err != nil {
				return err
			}
			if len(warn) > 0 {
				outlog.Println(fname, len(warn), "lines skipped")
			}
			if err := seqprop.WriteFasta(cmd.OutOrStdout(), st); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fastaCmd)
}
