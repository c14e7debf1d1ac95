// Package jsonc strips // and /* */ comments from JSON-with-comments text
// so it can be handed to a standard JSON decoder.
//
// Comments are removed and everything else is preserved byte for byte,
// including every line break inside a removed comment, so positions in a
// downstream parse error still point at the original source. Stripping is
// a single linear pass and never fails.
package jsonc
