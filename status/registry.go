package status

import "sync/atomic"

// Metric keys published by the game loop
const (
	KeyPhase       = "round.phase"
	KeyRoundID     = "round.id"
	KeyScore       = "round.score"
	KeyMissed      = "round.missed"
	KeyTimeLeft    = "round.time_left"
	KeyLive        = "entities.live"
	KeySpawned     = "entities.spawned"
	KeyDifficulty  = "spawner.difficulty"
	KeyPeriodMs    = "spawner.period_ms"
	KeyHighScore   = "scores.high"
	KeyRoundsTotal = "scores.rounds"
	KeyFrames      = "engine.frames"
)

// Registry is the central metrics facade
// The game loop writes atomics directly; readers on other goroutines take snapshots
type Registry struct {
	Bools   Gauges[atomic.Bool]
	Ints    Gauges[atomic.Int64]
	Strings Gauges[AtomicString]
}

// NewRegistry returns an empty Registry; gauges register on first Get
func NewRegistry() *Registry {
	return &Registry{}
}

// Snapshot copies every metric into a plain map suitable for encoding
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Len())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

// Len returns the number of gauges across all kinds
func (r *Registry) Len() int {
	return r.Bools.Len() + r.Ints.Len() + r.Strings.Len()
}
