// Package pretty renders arbitrary nested values as indented,
// human-readable text.
//
// Render walks a value depth-first and emits one tagged line per scalar
// and a bracketed block per container. It never fails: every category
// has a defined rendering, unrecognized values fall through to a tagged
// fallback line, and two guards keep output bounded:
//
//   - a cycle guard tracks the containers on the active recursion branch
//     and substitutes a circular-reference marker when a value contains
//     itself, directly or transitively
//   - a depth guard stops struct field expansion past MaxDepth levels
//
// Long strings that look like embedded base64 image payloads are
// replaced by a short placeholder so dumps of prompt structures stay
// readable.
//
// Mappings print in insertion order when the value is a *value.Map;
// builtin Go maps carry no such order and print with sorted keys.
// Indent and Separator are the line-level helpers the renderer and the
// CLI layer share.
package pretty
