// Package fileio provides the file-level plumbing around the value and
// jsonc packages: reading and writing text, JSON, and JSONC files,
// prefix-based directory listings, grouped and merged multi-file loads,
// and small helpers for code-fence extraction and filename cleanup.
//
// Functions return errors rather than printing; reporting is the
// caller's concern. JSON goes through the ordered document model in the
// value package, so key order survives every load/store round trip, and
// files with a .jsonc extension are comment-stripped before decoding.
package fileio
