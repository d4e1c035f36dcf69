// Package config implements the typed option registry for the formatter.
//
// The registry owns every tunable option: its type, per-style-edition
// default, stability tier, and current resolved value. Values flow in from
// compiled defaults, a parsed configuration file (as a sparse
// PartialConfig), CLI flags, and ad-hoc key=value overrides, in that
// precedence order. After every mutation the registry re-runs the derived
// computations that depend on the mutated option: width-heuristic
// distribution and deprecated-alias reconciliation.
//
// The registry is scoped to a single formatting invocation. It is not safe
// for concurrent mutation; once resolution is complete, reads are safe to
// share (the usage-tracking bit is atomic).
package config
