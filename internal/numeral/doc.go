// Package numeral defines the core data model shared by the catalog,
// the conversion engine, and the puzzle generator.
//
// The model is deliberately small:
//
//   - System is an immutable numeral-system schema (identity, display
//     metadata, radix, logic kind, symbol table, zero symbol). Systems
//     are configuration, not behavior: the engine dispatches on the
//     Logic tag, never on per-system code.
//   - Result is the outcome of one conversion: a symbol string or a
//     digit sequence, plus the ordered derivation trace.
//
// The package also provides canonical JSON serialization (RFC 8785
// subset) and domain-separated content hashing. Canonical bytes are the
// ONLY serialization used for content-addressed identity (catalog
// hashes, puzzle IDs) and for golden trace snapshots; standard
// json.Marshal output is not stable enough for either.
package numeral
