package engine

import (
	"time"

	"github.com/lixenwraith/dotstrike/constants"
)

// Phase represents the round lifecycle state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

// String returns the string representation of Phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

var validTransitions = map[Phase][]Phase{
	PhaseIdle:    {PhaseRunning},
	PhaseRunning: {PhasePaused, PhaseEnded},
	PhasePaused:  {PhaseRunning, PhaseEnded},
	PhaseEnded:   {PhaseRunning},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// RoundState is the single owner of per-round counters
// All mutation goes through its methods
type RoundState struct {
	ID         string
	Generation uint64
	Score      int
	Missed     int
	TimeLeft   int // Seconds
	Phase      Phase
	Failed     bool
	StartedAt  time.Time
}

// Reset clears the counters for a new round and bumps the generation
// Phase is left unchanged; the caller transitions to Running
func (r *RoundState) Reset(id string, now time.Time) {
	r.ID = id
	r.Generation++
	r.Score = 0
	r.Missed = 0
	r.TimeLeft = int(constants.RoundDuration / constants.CountdownTick)
	r.Failed = false
	r.StartedAt = now
}

// Transition moves to phase to if allowed, returning false otherwise
func (r *RoundState) Transition(to Phase) bool {
	if !CanTransition(r.Phase, to) {
		return false
	}
	r.Phase = to
	return true
}

// AddHit records one hit and returns the new score
func (r *RoundState) AddHit() int {
	r.Score++
	return r.Score
}

// AddMiss records one missed dot and returns the new count
func (r *RoundState) AddMiss() int {
	r.Missed++
	return r.Missed
}

// TickCountdown removes one second from the countdown, never going below zero
func (r *RoundState) TickCountdown() int {
	if r.TimeLeft > 0 {
		r.TimeLeft--
	}
	return r.TimeLeft
}

// MissBudgetExhausted reports whether the round has missed too many dots
func (r *RoundState) MissBudgetExhausted() bool {
	return r.Missed >= constants.MissBudget
}

// Active reports whether the round is Running or Paused
func (r *RoundState) Active() bool {
	return r.Phase == PhaseRunning || r.Phase == PhasePaused
}
