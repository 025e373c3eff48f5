package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/protstruct/config"
	"github.com/andrew-torda/protstruct/pdb"
	"github.com/andrew-torda/protstruct/pdb/cmmn"
	"github.com/andrew-torda/protstruct/pdb/oldfmt"
)

var (
	cfgFile string
	cfg     config.Config
	outlog  *log.Logger
	logClsr io.Closer
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:               "protstruct",
	Short:             "Read protein coordinate files in PDB format",
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logClsr != nil {
			logClsr.Close()
		}
	},
}

// usageError marks mistakes on the command line, so main can pick the
// exit code.
type usageError struct{ error }

// nArgs is like cobra.ExactArgs / MinimumNArgs, but the error says it
// is a usage problem.
func nArgs(n int, exact bool) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		var err error
		if exact {
			err = cobra.ExactArgs(n)(cmd, args)
		} else {
			err = cobra.MinimumNArgs(n)(cmd, args)
		}
		if err != nil {
			return usageError{err}
		}
		return nil
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.String("log", "", `where diagnostics go: "stdout", "stderr" or a file name`)
	pf.Bool("hydrogens", false, "keep hydrogen atoms")
	pf.Bool("water", false, "keep water molecules")
	pf.Bool("hetero", true, "keep HETATM records")
	pf.Int("model", 0, "model to read, counting from 0")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
}

// bindings are flag name to viper key. Flags that belong to one
// command are added by that command.
var bindings = map[string]string{
	"log":       "log",
	"hydrogens": "parse.hydrogens",
	"water":     "parse.water",
	"hetero":    "parse.hetero",
	"model":     "parse.model",
}

// loadConfig runs before every command. It reads the config file and
// environment, binds the flags that exist and sets up the log.
func loadConfig(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return err
	}
	for flg, key := range bindings {
		if f := cmd.Flags().Lookup(flg); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	if cfg, err = config.Load(v); err != nil {
		return err
	}
	outlog, logClsr, err = pdb.LogWhere(cfg.Log)
	return err
}

// readStruct reads a file, or standard input if the name is "-".
// Skipped lines go to the log.
func readStruct(fname string) (*cmmn.Structure, []oldfmt.LineError, error) {
	opts := cfg.Options()
	opts.Log = outlog
	if fname == "-" {
		return pdb.ReadText(os.Stdin, &opts)
	}
	return pdb.ReadFile(fname, &opts)
}
