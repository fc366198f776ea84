// Command ability-schema writes the JSON schema for ability content files
// and optionally validates a content directory against the catalog rules
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/lixenwraith/arena/content"
)

func main() {
	var outPath, checkDir string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.StringVar(&checkDir, "check", "", "content directory to validate instead of writing the schema")
	flag.Parse()

	if checkDir != "" {
		n, err := check(checkDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "content invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%d abilities ok\n", n)
		return
	}

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	if err := writeSchema(outPath, content.Schema()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

// check loads dir over the built-in content and returns the ability count
func check(dir string) (int, error) {
	m := content.NewManager(dir)
	if err := m.Discover(); err != nil {
		return 0, err
	}
	cat, err := m.Load()
	if err != nil {
		return 0, err
	}
	return len(cat.IDs()), nil
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
