// 19 Oct 2026
/*

protstruct reads protein coordinate files in the old fixed column PDB
format, plain or gzipped, and reports on them.

Usage:
 protstruct parse [--json] file.pdb
 protstruct validate file.pdb
 protstruct fasta file1.pdb file2.ent.gz ...
 protstruct ctmap [--chain A] [--cutoff 20] [--scale 4] file.pdb out.png
 protstruct fetch [--site N] [--timeout 1m] [--json] 1abc

A file name of "-" reads standard input. fetch downloads the entry from
one of the data banks, picked by --site.

Flags for every command:
  --config file
	Read settings from a yaml, toml or json file.
  --log where
	Send diagnostics to "stdout", "stderr" or append them to a file.
	Without this, they are thrown away.
  --hydrogens, --water
	Keep hydrogen atoms and water molecules. Both are dropped by default.
  --hetero=false
	Drop everything from HETATM records.
  --model N
	Read model N, counting from 0.

Each setting can also come from the environment, so --water is
PROTSTRUCT_PARSE_WATER=true and --log is PROTSTRUCT_LOG.

validate exits with 1 if the file has problems. Mistakes on the
command line exit with 2.
*/
package main
