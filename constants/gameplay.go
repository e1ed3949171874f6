package constants

import "time"

// Difficulty Range
const (
	// DifficultyMin is the lowest accepted difficulty value
	DifficultyMin = 1

	// DifficultyMax is the highest accepted difficulty value
	DifficultyMax = 10

	// DifficultyDefault is the difficulty used when none is configured
	DifficultyDefault = 5
)

// Spawn Scheduling
const (
	// SpawnPeriodBase is the spawn period at difficulty zero
	SpawnPeriodBase = 1000 * time.Millisecond

	// SpawnPeriodStep is subtracted from the base period per difficulty level
	SpawnPeriodStep = 80 * time.Millisecond

	// SpawnPeriodMin is the spawn period floor
	SpawnPeriodMin = 200 * time.Millisecond
)

// Entity Kinematics
const (
	// EntitySize is the display width and height of a dot in play-area units
	EntitySize = 40.0

	// EntitySpeed is the distance covered along the heading per frame
	EntitySpeed = 3.0

	// PhaseStep is the phase accumulator increment per frame
	PhaseStep = 0.1

	// WobbleAmplitude scales the sin/cos perturbation added each frame
	WobbleAmplitude = 2.0

	// CurveFactor converts difficulty into curve strength
	CurveFactor = 0.3

	// ExitMargin is how far past the play area an entity may drift before it counts as missed
	ExitMargin = 50.0
)

// Hit Detection
const (
	// HitRadiusFactor is the fraction of the rendered width a click may be from the center
	HitRadiusFactor = 0.6
)

// Round Budget
const (
	// RoundDuration is the countdown length of one round
	RoundDuration = 60 * time.Second

	// CountdownTick is the countdown resolution
	CountdownTick = time.Second

	// MissBudget is the number of missed dots that fails a round
	MissBudget = 60
)

// Score Persistence
const (
	// HistoryLimit is the number of scores kept in the history
	HistoryLimit = 5

	// PersistTimeout bounds a single store round trip
	PersistTimeout = 2 * time.Second
)
