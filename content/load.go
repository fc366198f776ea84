package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDir is where the sandbox looks for content overrides
const DefaultDir = "./content.d"

// Parse decodes one YAML document, rejecting unknown fields
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return &doc, nil
}

// Load parses and builds a catalog in one step
func Load(data []byte) (*Catalog, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// Merge folds docs in order; later loadouts and arena replace earlier ones,
// abilities accumulate and duplicates are left for Build to reject
func Merge(docs ...*Document) *Document {
	out := &Document{Loadouts: make(map[string][]string)}
	for _, d := range docs {
		if d == nil {
			continue
		}
		out.Abilities = append(out.Abilities, d.Abilities...)
		for name, ids := range d.Loadouts {
			out.Loadouts[name] = ids
		}
		if d.Arena != nil {
			out.Arena = d.Arena
		}
	}
	return out
}

// Manager discovers and loads content files from a directory
type Manager struct {
	dir   string
	files []string
}

// NewManager creates a manager rooted at dir
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Discover scans the directory for .yaml and .yml files, skipping hidden ones
// A missing directory is not an error
func (m *Manager) Discover() error {
	m.files = m.files[:0]

	entries, err := os.ReadDir(m.dir)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Content directory '%s' does not exist, using built-in content", m.dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read content directory: %w", err)
	}

	// ReadDir returns entries sorted by name; load order follows it
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			log.Printf("Skipping hidden file: %s", name)
			continue
		}
		switch filepath.Ext(name) {
		case ".yaml", ".yml":
			path := filepath.Join(m.dir, name)
			m.files = append(m.files, path)
			log.Printf("Discovered content file: %s", path)
		}
	}

	log.Printf("Discovered %d content file(s)", len(m.files))
	return nil
}

// Files returns the discovered paths in load order
func (m *Manager) Files() []string {
	return m.files
}

// Load builds a catalog from the built-in document followed by every discovered file
func (m *Manager) Load() (*Catalog, error) {
	base, err := Parse(defaultContent)
	if err != nil {
		return nil, fmt.Errorf("built-in content: %w", err)
	}
	docs := []*Document{base}

	for _, path := range m.files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		doc, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		docs = append(docs, overrides(base, doc))
	}

	return Build(Merge(docs...))
}

// overrides drops abilities from base that doc redefines so files can retune built-in ids
func overrides(base, doc *Document) *Document {
	redefined := make(map[string]bool, len(doc.Abilities))
	for _, a := range doc.Abilities {
		redefined[a.ID] = true
	}
	kept := base.Abilities[:0:0]
	for _, a := range base.Abilities {
		if !redefined[a.ID] {
			kept = append(kept, a)
		}
	}
	base.Abilities = kept
	return doc
}
