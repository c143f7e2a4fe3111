// Package diag defines the diagnostic model shared by all pipeline stages.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the lexer, parser, semantic builder, alignment
//     resolver and layout engine.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration. Rendering
// lives in internal/diagfmt; orchestration lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record: Severity, Code (compact numeric
// identifier with a stable string form), Message, the primary source.Span,
// and optional Notes with secondary spans. Notes should add new context
// ("first declared here") rather than repeat the message.
//
// Codes are partitioned into the three error families the language defines:
// parser errors (LEX/SYN), UML semantic errors (UML) and alignment errors
// (ALN). Code.Class exposes the family for exit-status and reporting
// decisions.
//
// # Emitting diagnostics
//
// Stages use a diag.Reporter to decouple emission from storage. A stage
// constructs a ReportBuilder via ReportError and chains WithNote before
// calling Emit; diag.BagReporter aggregates diagnostics into a Bag, which
// supports sorting and deduplication for deterministic output.
package diag
