package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers at construction; Update loops write directly to atomics
// Metrics are observational only and never read back by the simulation
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Fixed   *MetricMap[AtomicFixed] // Q32.32 gauges
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Fixed:   NewMetricMap[AtomicFixed](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Fixed.Count() + r.Strings.Count()
}

// Lines formats every metric as "key=value", grouped by kind and sorted by key
func (r *Registry) Lines() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Fixed.Range(func(k string, v *AtomicFixed) {
		out = append(out, fmt.Sprintf("%s=%.2f", k, v.Float()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, k+"="+strconv.FormatBool(v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, k+"="+v.Load())
	})
	return out
}
