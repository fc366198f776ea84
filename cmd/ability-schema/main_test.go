package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/arena/content"
)

func TestWriteSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema", "abilities.json")
	if err := writeSchema(out, content.Schema()); err != nil {
		t.Fatalf("writeSchema: %v", err)
	}
	if _, err := os.Stat(out + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	if doc["title"] == nil {
		t.Error("schema has no title")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	n, err := check(dir)
	if err != nil {
		t.Fatalf("check empty dir: %v", err)
	}
	if n != 11 {
		t.Errorf("abilities = %d, want 11", n)
	}

	bad := "abilities:\n  - id: zap\n    kind: laser\n    cast_direction: [aim]\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := check(dir); err == nil {
		t.Error("unknown kind accepted")
	}
}
