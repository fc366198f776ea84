package content

import (
	_ "embed"
	"fmt"
)

//go:embed default.yaml
var defaultContent []byte

// DefaultData returns the raw built-in document
func DefaultData() []byte {
	return defaultContent
}

// Default builds the built-in catalog
func Default() (*Catalog, error) {
	return Load(defaultContent)
}

// MustDefault is Default for callers that treat bad built-in content as a build defect
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("content: built-in catalog: %v", err))
	}
	return c
}
