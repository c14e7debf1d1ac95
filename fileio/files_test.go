package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadWriteString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sub", "note.txt")
	content := "line one\nline two\n"
	if err := WriteString(path, content); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	got, err := ReadString(path)
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got != content {
		t.Errorf("round trip = %q, want %q", got, content)
	}
}

func TestReadBytesMissing(t *testing.T) {
	_, err := ReadBytes(filepath.Join(t.TempDir(), "absent.bin"))
	if err == nil {
		t.Fatal("missing file did not error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
}

func TestEncodeImageBase64(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	if err := os.WriteFile(path, []byte{0x89, 0x50, 0x4e, 0x47}, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := EncodeImageBase64(path)
	if err != nil {
		t.Fatalf("EncodeImageBase64: %v", err)
	}
	if want := "iVBORw=="; got != want {
		t.Errorf("EncodeImageBase64 = %q, want %q", got, want)
	}

	if _, err := EncodeImageBase64(filepath.Join(t.TempDir(), "gone.png")); err == nil {
		t.Error("missing image did not error")
	}
}

func TestExtractCodeBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "tagged block",
			input: "Here is the answer:\n```json\n{\"a\": 1}\n```\ntrailing prose",
			want:  `{"a": 1}`,
		},
		{
			name:  "bare fences",
			input: "```\ncode line\n```",
			want:  "code line",
		},
		{
			name:  "no fence falls back to trimmed input",
			input: "  plain text  ",
			want:  "plain text",
		},
		{
			name:  "only first block",
			input: "```\nfirst\n```\n```\nsecond\n```",
			want:  "first",
		},
		{
			name:  "unterminated tagged block",
			input: "```python\nx = 1\ny = 2",
			want:  "x = 1\ny = 2",
		},
		{
			name:  "empty completed block",
			input: "```json\n```",
			want:  "",
		},
		{
			name:  "indented fence, content indentation kept",
			input: "intro\n  ```json\n    {\"deep\": true}\n  ```",
			want:  `    {"deep": true}`,
		},
		{
			name:  "multi-line block",
			input: "```json\n{\n  \"a\": 1\n}\n```",
			want:  "{\n  \"a\": 1\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCodeBlock(tt.input)
			if got != tt.want {
				t.Errorf("ExtractCodeBlock(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrimIndentation(t *testing.T) {
	input := "    a\n\tb\n  c  \n\nd"
	want := "a\nb\nc\n\nd"
	if got := TrimIndentation(input); got != want {
		t.Errorf("TrimIndentation = %q, want %q", got, want)
	}
}
