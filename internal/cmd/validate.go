package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofia-research/sofia/fileio"
	"github.com/sofia-research/sofia/jsonc"
	"github.com/sofia-research/sofia/value"
)

// NewValidateCmd creates and returns the validate subcommand for the sofia CLI.
// It checks JSON and JSONC documents for parse errors.
func NewValidateCmd() *cobra.Command {
	var (
		scanPath string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check JSON and JSONC files for parse errors",
		Long: `Check JSON and JSONC files for parse errors.

This command walks a directory tree, parses every .json and .jsonc file
it finds, and reports each failure with its line and column. A .json
file that only parses after comment stripping is called out separately,
since the usual fix is renaming it to .jsonc.`,
		Run: func(cmd *cobra.Command, args []string) {
			runValidate(scanPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&scanPath, "path", "p", "", "Path to the directory or file to validate (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("path")

	return cmd
}

func runValidate(scanPath string, verbose bool) {
	// Validate the target exists
	if _, err := os.Stat(scanPath); os.IsNotExist(err) {
		log.Fatalf("Path does not exist: %s", scanPath)
	}

	if verbose {
		fmt.Printf("Validating JSON documents under %s\n", scanPath)
	}

	var totalErrors int
	var totalFiles int

	err := filepath.Walk(scanPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".json" && ext != ".jsonc" {
			return nil
		}

		totalFiles++
		if verbose {
			fmt.Printf("Validating document: %s\n", path)
		}

		errors := validateDocument(path, ext)
		if len(errors) > 0 {
			fmt.Printf("Document %s has %d errors:\n", path, len(errors))
			for _, msg := range errors {
				fmt.Printf("  - %s\n", msg)
			}
			totalErrors += len(errors)
		} else if verbose {
			fmt.Printf("Document %s is valid\n", path)
		}

		return nil
	})
	if err != nil {
		log.Fatalf("Error walking path: %v", err)
	}

	fmt.Printf("\nValidation complete:\n")
	fmt.Printf("  Documents checked: %d\n", totalFiles)
	fmt.Printf("  Total errors: %d\n", totalErrors)

	if totalErrors > 0 {
		os.Exit(1)
	}
}

func validateDocument(path, ext string) []string {
	var errors []string

	data, err := fileio.ReadBytes(path)
	if err != nil {
		return []string{fmt.Sprintf("Failed to read file: %v", err)}
	}

	if ext == ".jsonc" {
		data = jsonc.Strip(data)
	}

	if _, err := value.DecodeJSON(data); err != nil {
		// A .json file that parses once comments are removed deserves a
		// better message than a bare syntax error.
		if ext == ".json" {
			if _, stripped := value.DecodeJSON(jsonc.Strip(data)); stripped == nil {
				errors = append(errors, fmt.Sprintf("Contains comments, rename to .jsonc or strip them: %v", err))
				return errors
			}
		}
		errors = append(errors, fmt.Sprintf("Failed to parse: %v", err))
	}

	return errors
}
