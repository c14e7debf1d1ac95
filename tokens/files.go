package tokens

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/sofia-research/sofia/jsonc"
	"github.com/sofia-research/sofia/value"
)

// FileTokens is one row of a directory token report.
type FileTokens struct {
	// Name is the path relative to the scanned directory. Synthetic
	// rows use the source file's stem with a _compact suffix.
	Name   string
	Tokens int
	// Compact marks a synthetic row counting the file's JSON document
	// re-encoded without whitespace.
	Compact bool
}

// CountOptions controls CountFiles.
type CountOptions struct {
	// Extensions filters files; empty means DefaultExtensions. Entries
	// are accepted with or without the leading dot.
	Extensions []string
	// Recursive descends into subdirectories.
	Recursive bool
	// UseIgnoreFile honors a .gitignore at the root of the scanned
	// directory.
	UseIgnoreFile bool
}

// DefaultExtensions is the file filter CountFiles applies when the
// caller does not choose one.
var DefaultExtensions = []string{".json", ".md"}

// CountFiles produces a token-count row for every matching file under
// dir, sorted by name. JSON and JSONC files additionally get a
// synthetic row counting the document re-encoded compactly, which shows
// what the indentation itself costs in context budget.
func CountFiles(tc TokenCounter, dir string, opts CountOptions) ([]FileTokens, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		want[normalizeExt(e)] = true
	}

	var ign *ignore.GitIgnore
	if opts.UseIgnoreFile {
		if gi, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore")); err == nil {
			ign = gi
		}
	}

	var rows []FileTokens
	count := func(path, rel string) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		rows = append(rows, FileTokens{Name: rel, Tokens: tc.Count(string(content))})

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".json" && ext != ".jsonc" {
			return nil
		}
		data := content
		if ext == ".jsonc" {
			data = jsonc.Strip(data)
		}
		v, err := value.DecodeJSON(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		compact, err := value.EncodeJSON(v, 0)
		if err != nil {
			return fmt.Errorf("failed to re-encode %s: %w", path, err)
		}
		rows = append(rows, FileTokens{
			Name:    strings.TrimSuffix(rel, filepath.Ext(rel)) + "_compact.json",
			Tokens:  tc.Count(string(compact)),
			Compact: true,
		})
		return nil
	}

	if opts.Recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == dir {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			if d.IsDir() {
				if ign != nil && ign.MatchesPath(rel) {
					return filepath.SkipDir
				}
				return nil
			}
			if !want[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			if ign != nil && ign.MatchesPath(rel) {
				return nil
			}
			return count(path, rel)
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if !want[strings.ToLower(filepath.Ext(name))] {
				continue
			}
			if ign != nil && ign.MatchesPath(name) {
				continue
			}
			if err := count(filepath.Join(dir, name), name); err != nil {
				return nil, err
			}
		}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

// Total sums the real rows of a report, leaving out the synthetic
// compact re-encodings.
func Total(rows []FileTokens) int {
	sum := 0
	for _, r := range rows {
		if !r.Compact {
			sum += r.Tokens
		}
	}
	return sum
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
