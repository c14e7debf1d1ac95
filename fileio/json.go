package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sofia-research/sofia/jsonc"
	"github.com/sofia-research/sofia/value"
)

// DefaultJSONIndent is the indent used when writing JSON files unless
// the caller asks for something else.
const DefaultJSONIndent = 4

// LoadMode selects how multi-file loads combine their documents.
type LoadMode int

const (
	// LoadGroup keys each document under its cleaned filename.
	LoadGroup LoadMode = iota
	// LoadMerge combines documents into one: objects key over key with
	// later files winning, arrays end to end.
	LoadMerge
)

func (m LoadMode) String() string {
	switch m {
	case LoadGroup:
		return "group"
	case LoadMerge:
		return "merge"
	}
	return fmt.Sprintf("LoadMode(%d)", int(m))
}

// ParseLoadMode converts a flag value into a LoadMode.
func ParseLoadMode(s string) (LoadMode, error) {
	switch strings.ToLower(s) {
	case "group":
		return LoadGroup, nil
	case "merge":
		return LoadMerge, nil
	}
	return 0, fmt.Errorf("unknown load mode %q (want group or merge)", s)
}

// LoadJSONFile reads and decodes a JSON or JSONC file into the ordered
// value model. Files with a .jsonc extension are comment-stripped
// first.
func LoadJSONFile(path string) (any, error) {
	data, err := ReadBytes(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".jsonc") {
		data = jsonc.Strip(data)
	}
	v, err := value.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return v, nil
}

// ParseJSONC strips comments from s and decodes it.
func ParseJSONC(s string) (any, error) {
	return value.DecodeJSON(jsonc.Strip([]byte(s)))
}

// LoadJSONGroup loads every <prefix>*.json and <prefix>*.jsonc file
// directly under dir and returns them keyed by cleaned filename, in
// filename order.
func LoadJSONGroup(dir, prefix string) (*value.Map, error) {
	result := value.NewMap()
	files, err := ListFilesWithPrefix(dir, prefix, "json")
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		v, err := LoadJSONFile(path)
		if err != nil {
			return nil, err
		}
		result.Set(CleanFileName(path, true, true), v)
	}
	return result, nil
}

// MergeJSONObjects combines every <prefix>* object file under dir into
// one mapping, key over key in filename order, later files winning. A
// file whose top level is not an object is an error.
func MergeJSONObjects(dir, prefix string) (*value.Map, error) {
	result := value.NewMap()
	files, err := ListFilesWithPrefix(dir, prefix, "json")
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		v, err := LoadJSONFile(path)
		if err != nil {
			return nil, err
		}
		m, ok := v.(*value.Map)
		if !ok {
			return nil, fmt.Errorf("failed to merge %s: top level is not a JSON object", path)
		}
		for k, mv := range m.Iterate {
			result.Set(k, mv)
		}
	}
	return result, nil
}

// MergeJSONArrays concatenates every <prefix>* array file under dir in
// filename order. A file whose top level is not an array is an error.
func MergeJSONArrays(dir, prefix string) ([]any, error) {
	result := []any{}
	files, err := ListFilesWithPrefix(dir, prefix, "json")
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		v, err := LoadJSONFile(path)
		if err != nil {
			return nil, err
		}
		arr, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("failed to merge %s: top level is not a JSON array", path)
		}
		result = append(result, arr...)
	}
	return result, nil
}

// WriteJSONFile encodes v and writes it to path, creating parent
// directories as needed. An indent above zero pretty-prints; zero or
// below writes compact output.
func WriteJSONFile(path string, v any, indent int) error {
	data, err := value.EncodeJSON(v, indent)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
