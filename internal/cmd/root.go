package cmd

import (
	"github.com/sofia-research/sofia/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the sofia CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sofia",
		Short: "sofia - File, JSON, and token utilities for prompt pipelines",
		Long: `sofia bundles the file plumbing that accumulates around LLM prompt pipelines.

It strips comments from JSONC documents, loads and merges JSON files while
preserving key order, renders nested values as readable trees, and reports
per-file token counts against tiktoken encodings so prompts and configs stay
inside a model's context window.

Use subcommands to perform different operations:
  - tokens: Report token counts for files in a directory
  - dump: Render a JSON or JSONC file as an indented tree
  - validate: Check JSON and JSONC files for parse errors
  - strip: Remove comments from JSONC input
  - merge: Combine prefix-matched JSON files into one document
  - seed: Generate sample JSON, JSONC, and Markdown fixtures`,
		Version: version.GetFullVersion(),
	}

	groupInspection := "inspection"
	groupFiles := "files"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupInspection,
		Title: "Inspection Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFiles,
		Title: "File Commands",
	})

	tokensCmd := NewTokensCmd()
	dumpCmd := NewDumpCmd()
	validateCmd := NewValidateCmd()
	stripCmd := NewStripCmd()
	mergeCmd := NewMergeCmd()
	seedCmd := NewSeedCmd()

	tokensCmd.GroupID = groupInspection
	dumpCmd.GroupID = groupInspection
	validateCmd.GroupID = groupInspection
	stripCmd.GroupID = groupFiles
	mergeCmd.GroupID = groupFiles
	seedCmd.GroupID = groupFiles

	// Add subcommands
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
