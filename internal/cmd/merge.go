package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sofia-research/sofia/fileio"
	"github.com/sofia-research/sofia/value"
)

// NewMergeCmd creates and returns the merge subcommand for the sofia CLI.
// It combines prefix-matched JSON files from a directory into one document.
func NewMergeCmd() *cobra.Command {
	var (
		dir        string
		prefix     string
		mode       string
		arrays     bool
		outputPath string
		indent     int
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Combine prefix-matched JSON files into one document",
		Long: `Combine JSON and JSONC files that share a filename prefix.

In group mode the result is an object with one key per input file, named
after the file with its prefix and extension removed. In merge mode the
documents themselves are merged: objects key by key with later files
winning, or arrays end to end with --arrays. Files are taken in sorted
name order, so numbering inputs (events_01.json, events_02.json) fixes
their precedence.`,
		Run: func(cmd *cobra.Command, args []string) {
			runMerge(dir, prefix, mode, arrays, outputPath, indent)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory containing the input files")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Filename prefix the inputs share")
	cmd.Flags().StringVar(&mode, "mode", "group", "How to combine documents (group or merge)")
	cmd.Flags().BoolVar(&arrays, "arrays", false, "Merge array documents instead of objects")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().IntVar(&indent, "indent", fileio.DefaultJSONIndent, "Spaces per indent level, 0 for compact output")

	return cmd
}

func runMerge(dir, prefix, mode string, arrays bool, outputPath string, indent int) {
	loadMode, err := fileio.ParseLoadMode(mode)
	if err != nil {
		log.Fatalf("Invalid mode: %v", err)
	}

	var merged any
	switch {
	case loadMode == fileio.LoadGroup:
		merged, err = fileio.LoadJSONGroup(dir, prefix)
	case arrays:
		merged, err = fileio.MergeJSONArrays(dir, prefix)
	default:
		merged, err = fileio.MergeJSONObjects(dir, prefix)
	}
	if err != nil {
		log.Fatalf("Failed to combine files: %v", err)
	}

	if outputPath != "" {
		if err := fileio.WriteJSONFile(outputPath, merged, indent); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		return
	}

	text, err := value.EncodeJSONString(merged, indent)
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(text)
}
