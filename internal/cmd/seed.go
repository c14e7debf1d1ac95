package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sofia-research/sofia/fileio"
	"github.com/sofia-research/sofia/value"
)

// seedGroups are the filename prefixes fixture files are spread across,
// so the generated tree works as merge command input out of the box.
var seedGroups = []string{"events", "config", "notes"}

// NewSeedCmd creates and returns the seed subcommand for the sofia CLI.
// It generates fixture files for exercising the other commands.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate sample JSON, JSONC, and Markdown fixtures",
		Long: `Generate a directory tree of sample files for testing the other commands.

Creates a mix of JSON, JSONC, and Markdown files spread across a shallow
randomized directory structure. The JSON documents share filename prefixes
(events_, config_, notes_) so they can be fed straight into merge, and the
JSONC files carry comments so strip and validate have something to do.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, fileCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 250, "Number of files to generate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, fileCount int, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d fixture files in %s\n", fileCount, outputPath)
	}

	// Create output directory
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// Generate pool of 50 UUIDs so identifiers repeat across files
	uuidPool := make([]string, 50)
	for i := 0; i < 50; i++ {
		uuidPool[i] = uuid.New().String()
	}

	filesCreated := 0
	dirFileCounts := make(map[string]int)

	for filesCreated < fileCount {
		// Determine directory level (most files at the top)
		levelRand, _ := rand.Int(rand.Reader, big.NewInt(100))
		batchNum, _ := rand.Int(rand.Reader, big.NewInt(20))
		partNum, _ := rand.Int(rand.Reader, big.NewInt(10))

		var dirPath string
		switch {
		case levelRand.Int64() < 60: // 60% at the top level
			dirPath = outputPath
		case levelRand.Int64() < 85: // 25% one level down
			dirPath = filepath.Join(outputPath, fmt.Sprintf("batch_%02d", batchNum.Int64()))
		default: // 15% two levels down
			dirPath = filepath.Join(outputPath, fmt.Sprintf("batch_%02d", batchNum.Int64()), fmt.Sprintf("part_%02d", partNum.Int64()))
		}

		// Check if directory has too many files
		if dirFileCounts[dirPath] >= 200 {
			continue // Try a different directory
		}

		// Create directory if it doesn't exist
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			log.Printf("Warning: Failed to create directory %s: %v", dirPath, err)
			continue
		}

		// Pick a group prefix and a random filename suffix (lowercase hex)
		groupRand, _ := rand.Int(rand.Reader, big.NewInt(int64(len(seedGroups))))
		group := seedGroups[groupRand.Int64()]
		filenameNum, _ := rand.Int(rand.Reader, big.NewInt(0xFFFFFFFF))

		extRand, _ := rand.Int(rand.Reader, big.NewInt(100))
		ext := ".json"
		switch {
		case extRand.Int64() < 50:
			ext = ".json"
		case extRand.Int64() < 80:
			ext = ".jsonc"
		default:
			ext = ".md"
		}

		filename := fmt.Sprintf("%s_%08x%s", group, filenameNum.Int64(), ext)
		filePath := filepath.Join(dirPath, filename)

		// Skip if file already exists
		if _, err := os.Stat(filePath); err == nil {
			continue
		}

		doc := seedDocument(group, filesCreated, uuidPool)

		var writeErr error
		switch ext {
		case ".json":
			writeErr = fileio.WriteJSONFile(filePath, doc, fileio.DefaultJSONIndent)
		case ".jsonc":
			writeErr = writeSeedJSONC(filePath, doc)
		case ".md":
			writeErr = fileio.WriteString(filePath, seedMarkdown(group, filesCreated, doc))
		}
		if writeErr != nil {
			log.Printf("Warning: Failed to write file %s: %v", filePath, writeErr)
			continue
		}

		dirFileCounts[dirPath]++
		filesCreated++

		if verbose && filesCreated%100 == 0 {
			fmt.Printf("Created %d/%d files...\n", filesCreated, fileCount)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d files\n", filesCreated)
		fmt.Printf("Files distributed across %d directories\n", len(dirFileCounts))

		// Show some statistics
		maxFiles := 0
		minFiles := fileCount
		for _, count := range dirFileCounts {
			if count > maxFiles {
				maxFiles = count
			}
			if count < minFiles {
				minFiles = count
			}
		}
		fmt.Printf("Directory file counts: min=%d, max=%d\n", minFiles, maxFiles)
	}
}

// seedDocument builds one fixture record with identifiers drawn from the
// shared pool.
func seedDocument(group string, sequence int, uuidPool []string) *value.Map {
	idIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(uuidPool))))
	weight, _ := rand.Int(rand.Reader, big.NewInt(100))
	active, _ := rand.Int(rand.Reader, big.NewInt(2))

	refs := make([]any, 0, 3)
	for i := 0; i < 3; i++ {
		refIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(uuidPool))))
		refs = append(refs, uuidPool[refIndex.Int64()])
	}

	doc := value.NewMap()
	doc.Set("id", uuidPool[idIndex.Int64()])
	doc.Set("group", group)
	doc.Set("sequence", int64(sequence))
	doc.Set("weight", float64(weight.Int64())/100)
	doc.Set("active", active.Int64() == 1)
	doc.Set("refs", refs)
	return doc
}

// writeSeedJSONC writes doc with surrounding comments so the file
// exercises comment stripping.
func writeSeedJSONC(path string, doc *value.Map) error {
	text, err := value.EncodeJSONString(doc, fileio.DefaultJSONIndent)
	if err != nil {
		return err
	}
	content := "// Seeded fixture, safe to delete.\n" + text + " // end of record\n"
	return fileio.WriteString(path, content)
}

// seedMarkdown renders doc as a short note with an embedded code block.
func seedMarkdown(group string, sequence int, doc *value.Map) string {
	text, err := value.EncodeJSONString(doc, fileio.DefaultJSONIndent)
	if err != nil {
		text = "{}"
	}
	id, _ := doc.Get("id")
	return fmt.Sprintf("# Fixture %s %d\n\nRecord `%v` belongs to the %s group.\n\n```json\n%s\n```\n",
		group, sequence, id, group, text)
}
