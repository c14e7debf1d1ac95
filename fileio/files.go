package fileio

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadBytes loads a file as raw bytes.
func ReadBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// ReadString loads a file as a string.
func ReadString(path string) (string, error) {
	data, err := ReadBytes(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteString writes content to path, creating parent directories as
// needed.
func WriteString(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// EncodeImageBase64 returns the file's content as standard base64 text.
func EncodeImageBase64(path string) (string, error) {
	data, err := ReadBytes(path)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// ExtractCodeBlock returns the content of the first fenced code block
// in s. A fence carrying a language tag opens a block; a bare fence
// toggles one. Lines after the first completed block are ignored. When
// no fence is present the whole trimmed input is returned, on the
// assumption that the text already is the code.
func ExtractCodeBlock(s string) string {
	s = strings.TrimSpace(s)

	found := false
	inside := false
	var block []string
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if found && !inside {
				break
			}
			if len(trimmed) > 3 {
				inside = true
				found = true
			} else {
				inside = !inside
				if inside {
					found = true
				}
			}
			continue
		}
		if inside {
			block = append(block, line)
		}
	}
	if !found {
		return s
	}
	return strings.Join(block, "\n")
}

// TrimIndentation trims every line of s.
func TrimIndentation(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
