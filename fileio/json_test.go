package fileio

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sofia-research/sofia/value"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadJSONFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "plain.json", `{"z": 1, "a": 2}`)
	writeFixture(t, dir, "commented.jsonc", "{\n// leading comment\n\"k\": [1, 2] // trailing\n}")

	v, err := LoadJSONFile(filepath.Join(dir, "plain.json"))
	if err != nil {
		t.Fatalf("LoadJSONFile(plain): %v", err)
	}
	m, ok := v.(*value.Map)
	if !ok {
		t.Fatalf("decoded as %T, want *value.Map", v)
	}
	if want := []string{"z", "a"}; !reflect.DeepEqual(m.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", m.Keys(), want)
	}

	v, err = LoadJSONFile(filepath.Join(dir, "commented.jsonc"))
	if err != nil {
		t.Fatalf("LoadJSONFile(jsonc): %v", err)
	}
	arr, _ := v.(*value.Map).Get("k")
	if want := []any{int64(1), int64(2)}; !reflect.DeepEqual(arr, want) {
		t.Errorf("k = %#v, want %#v", arr, want)
	}
}

func TestLoadJSONFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadJSONFile(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("missing file did not error")
	}

	writeFixture(t, dir, "broken.json", `{"a": `)
	_, err := LoadJSONFile(filepath.Join(dir, "broken.json"))
	if err == nil {
		t.Fatal("broken file did not error")
	}
	if !strings.Contains(err.Error(), "broken.json") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestParseJSONC(t *testing.T) {
	v, err := ParseJSONC("{\n// note\n\"a\": 1 /* inline */\n}")
	if err != nil {
		t.Fatalf("ParseJSONC: %v", err)
	}
	got, _ := v.(*value.Map).Get("a")
	if got != int64(1) {
		t.Errorf("a = %v, want 1", got)
	}
}

func TestLoadJSONGroup(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "01_alpha.json", `{"x": 1}`)
	writeFixture(t, dir, "02_beta.jsonc", "[1, 2] // array file")
	writeFixture(t, dir, "ignored.md", "not json")

	got, err := LoadJSONGroup(dir, "0")
	if err != nil {
		t.Fatalf("LoadJSONGroup: %v", err)
	}
	if want := []string{"alpha", "beta"}; !reflect.DeepEqual(got.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", got.Keys(), want)
	}
	beta, _ := got.Get("beta")
	if want := []any{int64(1), int64(2)}; !reflect.DeepEqual(beta, want) {
		t.Errorf("beta = %#v, want %#v", beta, want)
	}
}

func TestMergeJSONObjects(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "m_a.json", `{"k1": 1, "k2": 2}`)
	writeFixture(t, dir, "m_b.json", `{"k2": 99, "k3": 3}`)

	got, err := MergeJSONObjects(dir, "m_")
	if err != nil {
		t.Fatalf("MergeJSONObjects: %v", err)
	}
	if want := []string{"k1", "k2", "k3"}; !reflect.DeepEqual(got.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", got.Keys(), want)
	}
	if v, _ := got.Get("k2"); v != int64(99) {
		t.Errorf("k2 = %v, want 99 (later file wins)", v)
	}
}

func TestMergeJSONObjectsRejectsArrayFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "m_arr.json", `[1]`)
	if _, err := MergeJSONObjects(dir, "m_"); err == nil {
		t.Error("array file did not error")
	}
}

func TestMergeJSONArrays(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "l_a.json", `[1, 2]`)
	writeFixture(t, dir, "l_b.jsonc", "[3] // tail")

	got, err := MergeJSONArrays(dir, "l_")
	if err != nil {
		t.Fatalf("MergeJSONArrays: %v", err)
	}
	if want := []any{int64(1), int64(2), int64(3)}; !reflect.DeepEqual(got, want) {
		t.Errorf("merged = %#v, want %#v", got, want)
	}
}

func TestMergeJSONArraysRejectsObjectFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "l_obj.json", `{"a": 1}`)
	if _, err := MergeJSONArrays(dir, "l_"); err == nil {
		t.Error("object file did not error")
	}
}

func TestWriteJSONFile(t *testing.T) {
	dir := t.TempDir()
	m := value.NewMap()
	m.Set("b", int64(1))
	m.Set("a", int64(2))

	pretty := filepath.Join(dir, "out", "pretty.json")
	if err := WriteJSONFile(pretty, m, DefaultJSONIndent); err != nil {
		t.Fatalf("WriteJSONFile: %v", err)
	}
	text, err := ReadString(pretty)
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n    \"b\": 1,\n    \"a\": 2\n}"; text != want {
		t.Errorf("pretty output = %q, want %q", text, want)
	}

	compact := filepath.Join(dir, "compact.json")
	if err := WriteJSONFile(compact, m, 0); err != nil {
		t.Fatalf("WriteJSONFile compact: %v", err)
	}
	text, err = ReadString(compact)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"b":1,"a":2}`; text != want {
		t.Errorf("compact output = %q, want %q", text, want)
	}

	reloaded, err := LoadJSONFile(pretty)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if want := []string{"b", "a"}; !reflect.DeepEqual(reloaded.(*value.Map).Keys(), want) {
		t.Errorf("reloaded Keys() = %v, want %v", reloaded.(*value.Map).Keys(), want)
	}
}

func TestParseLoadMode(t *testing.T) {
	if m, err := ParseLoadMode("group"); err != nil || m != LoadGroup {
		t.Errorf("ParseLoadMode(group) = %v, %v", m, err)
	}
	if m, err := ParseLoadMode("MERGE"); err != nil || m != LoadMerge {
		t.Errorf("ParseLoadMode(MERGE) = %v, %v", m, err)
	}
	if _, err := ParseLoadMode("bogus"); err == nil {
		t.Error("ParseLoadMode(bogus) did not error")
	}
	if LoadGroup.String() != "group" || LoadMerge.String() != "merge" {
		t.Error("LoadMode String() mismatch")
	}
}
