package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"

	"github.com/sofia-research/sofia/pretty"
	"github.com/sofia-research/sofia/tokens"
)

// nameColWidth is the width of the file name column in the tokens table.
const nameColWidth = 70

// NewTokensCmd creates and returns the tokens subcommand for the sofia CLI.
// It reports per-file token counts for text files in a directory.
func NewTokensCmd() *cobra.Command {
	var (
		model      string
		extensions []string
		recursive  bool
		estimate   bool
		ignoreFile bool
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "tokens [PATH]",
		Short: "Report token counts for files in a directory",
		Long: `Report token counts for text files in a directory.

Each matching file is tokenized with the named model's tiktoken encoding
and printed as a table row. JSON and JSONC files get an extra row showing
the token count of their compact re-encoding, which is what the document
costs once embedded in a prompt. The total line excludes those extra rows
so it reflects the files as they exist on disk.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			runTokens(path, model, extensions, recursive, estimate, ignoreFile, noColor)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", tokens.DefaultModel, "Model whose tokenizer to use")
	cmd.Flags().StringSliceVarP(&extensions, "ext", "e", nil, "File extensions to include (default json,md)")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVar(&estimate, "estimate", false, "Use the offline length heuristic instead of tiktoken")
	cmd.Flags().BoolVar(&ignoreFile, "ignore-file", false, "Skip files matched by the directory's .gitignore")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored file names")

	return cmd
}

func runTokens(path, model string, extensions []string, recursive, estimate, ignoreFile, noColor bool) {
	var counter tokens.TokenCounter
	if estimate {
		counter = tokens.Estimator{}
	} else {
		c, err := tokens.NewCounter(model)
		if err != nil {
			log.Fatalf("Failed to load tokenizer: %v", err)
		}
		counter = c
	}

	rows, err := tokens.CountFiles(counter, path, tokens.CountOptions{
		Extensions:    extensions,
		Recursive:     recursive,
		UseIgnoreFile: ignoreFile,
	})
	if err != nil {
		log.Fatalf("Failed to count tokens: %v", err)
	}

	sep := pretty.Separator(0)
	fmt.Println(sep)
	fmt.Println("Token counts per file:")
	fmt.Println(sep)
	for _, row := range rows {
		fmt.Printf("%s%10d\n", renderName(row.Name, noColor), row.Tokens)
	}
	fmt.Println(sep)

	total := tokens.Total(rows)
	fmt.Printf("%-*s%10d\n", nameColWidth, "Total tokens across all files:", total)
	limit := tokens.ContextLimit(model)
	fmt.Printf("Context window usage for %s: %.1f%% of %d tokens\n",
		model, float64(total)/float64(limit)*100, limit)
	fmt.Println(sep)
}

// renderName pads name to the table column width and colors it by
// extension. Padding happens before styling so the escape codes do not
// throw off the column alignment.
func renderName(name string, noColor bool) string {
	padded := fmt.Sprintf("%-*s", nameColWidth, name)
	if noColor {
		return padded
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	// Indexes 17-231 cover the 256-color cube without the basic
	// palette or the grayscale ramp.
	code := colorhash.HashString(ext)%215 + 17
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(code)))
	return style.Render(padded)
}
