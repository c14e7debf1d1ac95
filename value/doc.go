// Package value defines the in-memory document model for JSON data.
//
// The standard decoder reads objects into unordered Go maps, which loses
// the key order that prompt and config files rely on. DecodeJSON walks the
// token stream instead and produces:
//
//   - *Map for objects, iterating in insertion order
//   - []any for arrays
//   - int64 for integral numbers, float64 otherwise
//   - string, bool, and nil for the remaining scalars
//
// EncodeJSON is the counterpart: it writes *Map entries in insertion
// order, pretty-printed or compact, with HTML escaping disabled. Decode
// failures carry the 1-based line and column of the offending byte as a
// *DecodeError.
package value
