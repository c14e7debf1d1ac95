package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofia-research/sofia/fileio"
	"github.com/sofia-research/sofia/jsonc"
)

// NewStripCmd creates and returns the strip subcommand for the sofia CLI.
// It removes comments from a JSONC document or from a whole directory tree.
func NewStripCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		verbose    bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "strip",
		Short: "Remove comments from JSONC input",
		Long: `Remove // and /* */ comments from JSONC input.

With no input flag the command filters stdin to stdout. Given a file it
strips that one document, and given a directory it walks the tree and
writes a .json twin for every .jsonc file, preserving the directory
layout under the output path. Stripping keeps line breaks, so parse
errors reported against the output still point at the right line of the
original.`,
		Run: func(cmd *cobra.Command, args []string) {
			runStrip(inputPath, outputPath, verbose, dryRun)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file or directory (default stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file or directory (default stdout)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")

	return cmd
}

func runStrip(inputPath, outputPath string, verbose, dryRun bool) {
	if inputPath == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read stdin: %v", err)
		}
		writeStripped(data, outputPath, verbose)
		return
	}

	info, err := os.Stat(inputPath)
	if os.IsNotExist(err) {
		log.Fatalf("Input does not exist: %s", inputPath)
	}
	if err != nil {
		log.Fatalf("Failed to stat input: %v", err)
	}

	if !info.IsDir() {
		data, err := fileio.ReadBytes(inputPath)
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		writeStripped(data, outputPath, verbose)
		return
	}

	if outputPath == "" {
		log.Fatalf("Directory input requires --output")
	}
	stripTree(inputPath, outputPath, verbose, dryRun)
}

// writeStripped strips data and writes the result to outputPath, or to
// stdout when outputPath is empty.
func writeStripped(data []byte, outputPath string, verbose bool) {
	out := jsonc.Strip(data)
	if outputPath == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatalf("Failed to write stdout: %v", err)
		}
		return
	}
	if err := fileio.WriteString(outputPath, string(out)); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	if verbose {
		fmt.Printf("Wrote %s (%d bytes in, %d bytes out)\n", outputPath, len(data), len(out))
	}
}

func stripTree(inputPath, outputPath string, verbose, dryRun bool) {
	if verbose {
		fmt.Printf("Stripping JSONC files under %s into %s\n", inputPath, outputPath)
		if dryRun {
			fmt.Println("DRY RUN - no changes will be made")
		}
	}
	if dryRun {
		fmt.Println("Files that would be stripped:")
	}

	stripped := 0
	err := filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".jsonc") {
			return nil
		}
		rel, err := filepath.Rel(inputPath, path)
		if err != nil {
			return err
		}
		target := filepath.Join(outputPath, strings.TrimSuffix(rel, filepath.Ext(rel))+".json")
		if dryRun {
			fmt.Printf("  %s -> %s\n", path, target)
			stripped++
			return nil
		}
		data, err := fileio.ReadBytes(path)
		if err != nil {
			return err
		}
		if err := fileio.WriteString(target, string(jsonc.Strip(data))); err != nil {
			return err
		}
		stripped++
		if verbose {
			fmt.Printf("  %s -> %s\n", path, target)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to strip tree: %v", err)
	}

	if dryRun {
		fmt.Printf("Would strip %d files\n", stripped)
	} else if verbose {
		fmt.Printf("Stripped %d files\n", stripped)
	}
}
