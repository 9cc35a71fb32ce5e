package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache pointers during init; update loops write directly to atomics
//
// Metric names in use:
//
//	engine.frames          engine.intents_dropped
//	layout.recomputes      layout.cache_hits       layout.superseded
//	layout.timeouts        layout.duration_ms
//	orbital.writes         orbital.suppressed
//	camera.animations      camera.follow_syncs     camera.cancelled
//	view.mode              view.focus
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
