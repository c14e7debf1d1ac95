package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CleanFileName reduces a path to a bare name: the basename, minus the
// first underscore-delimited chunk when stripPrefix is set, minus
// everything from the first dot when stripExt is set. A name with no
// underscore is kept whole. Files named like "01_prompts.json" reduce
// to "prompts".
func CleanFileName(path string, stripPrefix, stripExt bool) string {
	name := filepath.Base(path)
	if stripPrefix {
		if _, rest, ok := strings.Cut(name, "_"); ok {
			name = rest
		}
	}
	if stripExt {
		name, _, _ = strings.Cut(name, ".")
	}
	return name
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListFilesWithPrefix returns the files directly under dir whose name
// starts with prefix and ends with one of the given extensions, as
// sorted full paths. Extensions are accepted with or without the
// leading dot, and "json" implies "jsonc" as well.
func ListFilesWithPrefix(dir, prefix string, exts ...string) ([]string, error) {
	want := make(map[string]bool, len(exts)+1)
	for _, ext := range exts {
		ext = strings.TrimPrefix(ext, ".")
		want[ext] = true
		if ext == "json" {
			want["jsonc"] = true
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		ext := strings.TrimPrefix(filepath.Ext(name), ".")
		if ext == "" || !want[ext] {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}
