package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds a state string in bytes, sized for HUD columns
const MaxStringLen = 20

// AtomicString holds a short state label such as a lifecycle state
// Zero value is ready to use and reads as empty
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, cut to MaxStringLen on a rune boundary
// Storing the current value again is a no-op and allocates nothing
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	if p := s.ptr.Load(); p != nil && *p == val {
		return
	}
	s.ptr.Store(&val)
}

// Load returns the current label
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
