// Package store provides SQLite-backed durable storage for the practice
// log.
//
// The log has two tables:
//   - Puzzles: generated exercises, keyed by content-addressed id
//   - Attempts: submitted answers, keyed by UUIDv7
//
// # Critical Patterns
//
// Content-addressed dedupe
//   - puzzle ids hash the identity fields (catalog, system, kind,
//     target, question), so re-saving a regenerated puzzle is a no-op
//   - inserts use ON CONFLICT(id) DO NOTHING
//
// Deterministic query results
//   - history queries order by created_at with id COLLATE BINARY as the
//     tie-breaker, so identical logs list identically
//   - reads return empty slices, never nil
//
// Verifiable log
//   - VerifyPuzzles recomputes every stored puzzle's content id and
//     reports rows whose columns no longer match their id
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Content-addressed ids are computed via internal/numeral using RFC 8785
// canonical JSON and SHA-256 with domain separation.
package store
