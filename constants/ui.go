package constants

import "time"

// Frame Timing
const (
	// FrameUpdateInterval is the render and motion step interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Cell Geometry
const (
	// CellWidth is the horizontal extent of one terminal cell in play-area units
	CellWidth = 8.0

	// CellHeight is the vertical extent of one terminal cell in play-area units
	CellHeight = 16.0

	// HUDRows is the number of rows reserved above the play area
	HUDRows = 1

	// FooterRows is the number of rows reserved below the play area
	FooterRows = 1

	// SpriteCols and SpriteRows are the cell footprint of a drawn dot
	SpriteCols = 5
	SpriteRows = 3
)

// Orientation Prompt
const (
	// MinPlayCols is the narrowest terminal that can host the play area
	MinPlayCols = 40

	// MinPlayRows is the shortest terminal that can host the play area
	MinPlayRows = 12
)

// Effects
const (
	// TrailLifetime is how long a trail stamp stays visible
	TrailLifetime = 300 * time.Millisecond

	// ParticleCount is the number of particles in a hit burst
	ParticleCount = 12

	// ParticleSpread is the maximum travel of a burst particle in play-area units
	ParticleSpread = 60.0

	// ParticleLifetime is how long a burst particle lives
	ParticleLifetime = 600 * time.Millisecond

	// MaxTrails caps the trail buffer
	MaxTrails = 512
)

// History Panel
const (
	// HistoryPanelWidth is the width of the history panel in cells
	HistoryPanelWidth = 14
)
