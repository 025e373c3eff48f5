package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/protstruct/pdb"
)

var (
	siteNum      int
	fetchTimeout time.Duration
)

var fetchCmd = &cobra.Command{
	Use:   "fetch CODE",
	Short: "Download a structure from the PDB by its four letter code and summarise it",
	Args:  nArgs(1, true),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
		defer cancel()
		opts := cfg.Options()
		opts.Log = outlog
		st, warn, err := pdb.Fetch(ctx, args[0], siteNum, &opts)
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
	f := fetchCmd.Flags()
	f.IntVar(&siteNum, "site", 0, fmt.Sprintf("which of the %d data bank sites to use", pdb.NSites()))
	f.DurationVar(&fetchTimeout, "timeout", time.Minute, "give up after this long")
	f.BoolVar(&asJSON, "json", false, "write the structure as json")
	rootCmd.AddCommand(fetchCmd)
}
