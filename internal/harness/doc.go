// Package harness runs conversion conformance scenarios: YAML files
// that describe a catalog, a sequence of conversions, and the expected
// outcomes. Scenarios double as executable documentation of engine
// behavior, and their traces are snapshotted into golden files so a
// wording change in the narration shows up as a reviewable diff rather
// than silent drift.
//
// A scenario names its catalog ("builtin" or inline CUE source), lists
// conversion steps with optional expect clauses, and closes with
// assertions over the collected outcomes:
//
//	name: roman-basics
//	description: Small additive conversions with full traces.
//	catalog: builtin
//	steps:
//	  - convert: {number: 12, system: roman}
//	    expect: {result: "XII", trace_len: 3}
//	assertions:
//	  - type: trace_contains
//	    text: "Add X (10). Remaining: 2"
//	  - type: result_roundtrip
//
// result_roundtrip re-derives the input from the output: additive
// symbol strings are greedily parsed back and re-summed, positional
// digit sequences are recomposed digit by digit. Both must reproduce
// the original number.
package harness
