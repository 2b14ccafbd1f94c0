// Package config loads batch files: HCL documents listing puzzle grids
// together with the answers expected for them.
//
//	puzzle "sample" {
//	  input    = "${dir}/sample.txt"
//	  enclosed = 4
//	  farthest = 23 # optional
//	}
//
// The variable dir evaluates to the absolute directory of the batch file,
// and relative inputs are resolved against it as well. Puzzle names must be
// unique within a file.
package config
