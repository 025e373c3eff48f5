package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/protstruct/pdb/oldfmt"
	"github.com/andrew-torda/protstruct/pdb/zwrap"
)

var errInvalid = errors.New("file is not valid")

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a file without building a structure",
	Long: `Check a file without building a structure.

Reports a missing HEADER, no coordinates, coordinate lines that are too
short and coordinates that are not numbers. Exits with 1 if anything is
wrong.`,
	Args: nArgs(1, true),
	RunE: func(cmd *cobra.Command, args []string) error {
		var b []byte
		var err error
		if args[0] == "-" {
			b, err = zwrap.WrapMaybe(os.Stdin)
		} else if b, err = os.ReadFile(args[0]); err == nil {
			b, err = zwrap.Unwrap(b)
		}
		if err != nil {
			return err
		}
		v := oldfmt.Validate(string(b))
		for _, e := range v.Errors {
			fmt.Fprintln(cmd.OutOrStdout(), e)
		}
		if !v.IsValid {
			return fmt.Errorf("%s: %w", args[0], errInvalid)
		}
		fmt.Fprintln(cmd.OutOrStdout(), args[0], "ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
