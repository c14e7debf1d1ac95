// Package main provides the sofia command-line interface.
//
// sofia is a toolbox for the file handling that accumulates around LLM prompt
// pipelines. It strips comments from JSONC documents, loads and merges JSON
// files while preserving key order, renders nested values as readable trees,
// and reports per-file token counts against tiktoken encodings.
//
// The main binary supports multiple subcommands:
//   - tokens: Report token counts for files in a directory
//   - dump: Render a JSON or JSONC file as an indented tree
//   - validate: Check JSON and JSONC files for parse errors
//   - strip: Remove comments from JSONC input
//   - merge: Combine prefix-matched JSON files into one document
//   - seed: Generate sample JSON, JSONC, and Markdown fixtures
package main
