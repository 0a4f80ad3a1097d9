// Package diag defines the diagnostic model shared by the checker, the
// normalizer and their reporters.
//
// # Purpose
//
//   - Describe illegal characters found in an input file as plain data
//     (Diagnostic) that can be rendered as text or serialised.
//   - Decouple the processing loops from output formatting: loops talk to a
//     Reporter, never to a logger or a writer.
//   - Own the per-line reporting policy (EmitLine) so every front-end reports
//     the same way: a header, at most CharErrLimit detailed entries, then one
//     entry saying how many more were suppressed.
//
// # Scope
//
// Package diag performs no IO. Text rendering and the JSON/msgpack reports
// live in internal/diagfmt; the processing loops live in internal/driver.
//
// # Reporters
//
//   - BagReporter collects diagnostics into a bounded Bag.
//   - MultiReporter fans out to several reporters.
//   - NopReporter drops everything.
//
// Keep the data model deterministic: diagnostics are emitted in line order,
// then column order, and reports are expected to be byte-for-byte stable.
package diag
