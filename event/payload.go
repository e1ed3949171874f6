package event

import (
	"github.com/lixenwraith/dotstrike/core"
	"github.com/lixenwraith/dotstrike/vmath"
)

// DestroyReason explains why a dot left the registry
type DestroyReason int

const (
	ReasonHit     DestroyReason = iota // Clicked within the hit radius
	ReasonMiss                         // Drifted past the exit margin
	ReasonCleared                      // Removed by round end
)

func (r DestroyReason) String() string {
	switch r {
	case ReasonHit:
		return "hit"
	case ReasonMiss:
		return "miss"
	case ReasonCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// MessageKind selects the banner shown for the round state
type MessageKind int

const (
	MessageReady MessageKind = iota
	MessageRunning
	MessagePaused
	MessageEnded
	MessageFailed
)

// EntityPayload describes a dot at the moment of the event
type EntityPayload struct {
	ID    uint64
	Shape core.Shape
	Color core.Color
	Pos   vmath.Vec2F
	Size  float64
}

// EntityDestroyedPayload is EntityPayload plus the removal reason
type EntityDestroyedPayload struct {
	EntityPayload
	Reason DestroyReason
}

// CounterPayload carries a single integer value
type CounterPayload struct {
	Value int
}

// HistoryPayload carries the descending score history
type HistoryPayload struct {
	Scores []int
}

// MessagePayload carries the banner kind
type MessagePayload struct {
	Kind MessageKind
}

// OrientationPayload carries the overlay visibility
type OrientationPayload struct {
	Visible bool
}

// PhasePayload carries the phase names of a transition
type PhasePayload struct {
	From, To string
}

// RoundPayload identifies a round
type RoundPayload struct {
	RoundID    string
	Difficulty int
}

// RoundEndPayload summarizes a finished round
type RoundEndPayload struct {
	RoundID   string
	Score     int
	Missed    int
	Failed    bool
	NewHigh   bool
	HighScore int
}
