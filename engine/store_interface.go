package engine

import "github.com/lixenwraith/arena/core"

// AnyStore provides type-erased operations so World can manage every store uniformly
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}
