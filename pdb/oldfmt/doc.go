// Package oldfmt reads coordinate files in the old, fixed column PDB
// format and builds a cmmn.Structure.
//
// The reader is given the whole text. It works line by line. The first
// six columns of a line say what kind of record it is and pick a
// handler. Handlers fill out the metadata, the list of helices and
// sheets, and the atoms. Atoms are gathered into residues and residues
// into chains. When the text is finished, chains get sorted and get
// their sequences, and the box and centre are calculated.
//
// A broken line does not stop the reader. The line is skipped, the
// problem is logged and kept as a LineError, which the caller can get
// from Warnings(). Only two things are fatal: empty input, and input
// where there is nothing at all - no atoms, no chains, no HEADER.
//
// Validate() is a separate check of the same text. It does not build
// anything and the reader never calls it.
//
// Which lines are read:
//
//	HEADER, TITLE, SOURCE   metadata
//	REMARK 2, REMARK 200    resolution and method
//	HELIX, SHEET            secondary structure annotations
//	MODEL, ENDMDL           pick one model from an NMR style file
//	ATOM, HETATM            coordinates
//
// Anything else is ignored without comment.
package oldfmt
