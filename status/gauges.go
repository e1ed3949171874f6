package status

import (
	"sync"
	"sync/atomic"
)

// Gauges hands out one stable *T per metric name
// The game loop holds the pointer and writes through it; Range is for readers on other goroutines
type Gauges[T any] struct {
	byName sync.Map // string -> *T
	n      atomic.Int32
}

// Get returns the gauge for name, registering a zero value on first use
func (g *Gauges[T]) Get(name string) *T {
	if v, ok := g.byName.Load(name); ok {
		return v.(*T)
	}
	v, loaded := g.byName.LoadOrStore(name, new(T))
	if !loaded {
		g.n.Add(1)
	}
	return v.(*T)
}

// Range visits every registered gauge in no particular order
func (g *Gauges[T]) Range(fn func(name string, ptr *T)) {
	g.byName.Range(func(k, v any) bool {
		fn(k.(string), v.(*T))
		return true
	})
}

// Len returns the number of registered gauges
func (g *Gauges[T]) Len() int {
	return int(g.n.Load())
}
