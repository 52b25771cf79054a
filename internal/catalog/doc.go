// Package catalog compiles CUE schema files into numeral.System values
// and serves them through an ordered, content-addressed Registry.
//
// A catalog is a directory (or embedded filesystem) of .cue files, each
// declaring one or more systems under the top-level "system" struct:
//
//	system: roman: {
//		name:  "Roman Numerals"
//		base:  10
//		logic: "additive"
//		symbols: [{value: 1000, glyph: "M"}, ...]
//	}
//
// Compilation is structural (required fields, types, positions) and
// returns CompileError on the first defect. Validation is semantic and
// collects every defect as a coded ValidationError, including a
// representability probe that runs the greedy reduction over a value
// sweep so incomplete additive tables are caught at load time instead
// of mid-conversion.
//
// The built-in catalog (Roman, Mayan, Babylonian, Binary) is embedded
// and available via Builtin without touching the filesystem.
package catalog
