package status

import (
	"sync/atomic"

	"github.com/lixenwraith/arena/vmath"
)

// AtomicFixed holds a Q32.32 gauge so simulation code never touches floats
// Zero value is ready to use
type AtomicFixed struct {
	v atomic.Int64
}

// Store sets the Q32.32 value
func (f *AtomicFixed) Store(q int64) { f.v.Store(q) }

// Load returns the Q32.32 value
func (f *AtomicFixed) Load() int64 { return f.v.Load() }

// Float converts for display only
func (f *AtomicFixed) Float() float64 { return vmath.ToFloat(f.v.Load()) }
