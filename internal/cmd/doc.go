// Package cmd provides the command-line interface implementation for sofia.
//
// This package contains all the subcommand implementations for the sofia CLI
// tool. It uses the Cobra library for command structure and Fang for beautiful
// styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - tokens: Per-file token count reporting
//   - dump: Indented tree rendering of JSON and JSONC documents
//   - validate: Parse checking for JSON and JSONC trees
//   - strip: JSONC comment removal for documents and directory trees
//   - merge: Combining prefix-matched JSON files into one document
//   - seed: Fixture file generation
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The commands stay thin: they parse
// flags, call into the jsonc, value, pretty, fileio, and tokens packages, and
// format the results for the terminal.
package cmd
