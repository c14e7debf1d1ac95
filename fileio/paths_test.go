package fileio

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		stripPrefix bool
		stripExt    bool
		want        string
	}{
		{"prefix and extension", "01_prompts.json", true, true, "prompts"},
		{"full path", "/tmp/some/dir/02_data.jsonc", true, true, "data"},
		{"keeps later underscores", "a_b_c.json", true, true, "b_c"},
		{"no underscore kept whole", "data.json", true, true, "data"},
		{"double extension", "x_y.tar.gz", true, true, "y"},
		{"prefix only", "01_prompts.json", true, false, "prompts.json"},
		{"extension only", "01_prompts.json", false, true, "01_prompts"},
		{"neither", "01_prompts.json", false, false, "01_prompts.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanFileName(tt.path, tt.stripPrefix, tt.stripExt)
			if got != tt.want {
				t.Errorf("CleanFileName(%q, %v, %v) = %q, want %q",
					tt.path, tt.stripPrefix, tt.stripExt, got, tt.want)
			}
		})
	}
}

func TestListFilesWithPrefix(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"p_one.json", "p_two.jsonc", "p_three.md", "p_four.txt", "q_other.json",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "p_subdir"), 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		prefix string
		exts   []string
		want   []string
	}{
		{"json implies jsonc", "p_", []string{"json"}, []string{"p_one.json", "p_two.jsonc"}},
		{"dotted extension", "p_", []string{".md"}, []string{"p_three.md"}},
		{"multiple extensions", "p_", []string{"md", "txt"}, []string{"p_four.txt", "p_three.md"}},
		{"prefix filters", "q_", []string{"json"}, []string{"q_other.json"}},
		{"no matches", "zz", []string{"json"}, nil},
		{"empty prefix matches all", "", []string{"md"}, []string{"p_three.md"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ListFilesWithPrefix(dir, tt.prefix, tt.exts...)
			if err != nil {
				t.Fatalf("ListFilesWithPrefix: %v", err)
			}
			var want []string
			for _, name := range tt.want {
				want = append(want, filepath.Join(dir, name))
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("ListFilesWithPrefix(%q, %v) = %v, want %v", tt.prefix, tt.exts, got, want)
			}
		})
	}
}

func TestListFilesWithPrefixMissingDir(t *testing.T) {
	if _, err := ListFilesWithPrefix(filepath.Join(t.TempDir(), "missing"), "p", "json"); err == nil {
		t.Error("missing directory did not error")
	}
}

func TestEnsureDirAndFileExists(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if !FileExists(nested) {
		t.Error("EnsureDir result does not exist")
	}
	if err := EnsureDir(nested); err != nil {
		t.Errorf("EnsureDir on existing dir: %v", err)
	}
	if FileExists(filepath.Join(dir, "absent")) {
		t.Error("FileExists reported a missing path")
	}
}
