package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sofia-research/sofia/fileio"
	"github.com/sofia-research/sofia/pretty"
)

// NewDumpCmd creates and returns the dump subcommand for the sofia CLI.
// It renders a JSON or JSONC file as an indented tree for inspection.
func NewDumpCmd() *cobra.Command {
	var (
		useTabs bool
		level   int
	)

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Render a JSON or JSONC file as an indented tree",
		Long: `Render a JSON or JSONC file as an indented tree.

Every value is printed on its own line with a type tag, object keys keep
the order they have in the file, and long base64 blobs are redacted so
embedded images do not flood the terminal. This is meant for eyeballing
deeply nested documents, not for producing machine-readable output.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runDump(args[0], useTabs, level)
		},
	}

	cmd.Flags().BoolVar(&useTabs, "tabs", false, "Indent with tabs instead of spaces")
	cmd.Flags().IntVarP(&level, "level", "l", 0, "Starting indent level")

	return cmd
}

func runDump(path string, useTabs bool, level int) {
	v, err := fileio.LoadJSONFile(path)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", path, err)
	}

	style := pretty.Spaces
	if useTabs {
		style = pretty.Tabs
	}
	fmt.Println(pretty.RenderIndent(v, level, style))
}
