package main

import (
	"errors"
	"os"

	"github.com/andrew-torda/protstruct/pdb/cmmn"
)

func main() {
	err := rootCmd.Execute()
	var uerr usageError
	switch {
	case err == nil:
		os.Exit(cmmn.ExitSuccess)
	case errors.As(err, &uerr):
		os.Exit(cmmn.ExitUsageError)
	default:
		os.Exit(cmmn.ExitFailure)
	}
}
