package constants

import (
	"testing"
	"time"
)

// TestSpawnPeriodFormula verifies the spawn period formula matches expected values
func TestSpawnPeriodFormula(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		expected   time.Duration
	}{
		{"Min difficulty", DifficultyMin, 920 * time.Millisecond},
		{"Default difficulty", DifficultyDefault, 600 * time.Millisecond},
		{"Max difficulty", DifficultyMax, SpawnPeriodMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Apply formula: max(min, base - step * difficulty)
			actual := SpawnPeriodBase - SpawnPeriodStep*time.Duration(tt.difficulty)
			if actual < SpawnPeriodMin {
				actual = SpawnPeriodMin
			}
			if actual != tt.expected {
				t.Errorf("Expected period %v, got %v", tt.expected, actual)
			}
		})
	}
}

// TestDifficultyRange verifies the default lies within the accepted range
func TestDifficultyRange(t *testing.T) {
	if DifficultyMin >= DifficultyMax {
		t.Fatalf("Empty difficulty range [%d, %d]", DifficultyMin, DifficultyMax)
	}
	if DifficultyDefault < DifficultyMin || DifficultyDefault > DifficultyMax {
		t.Errorf("Default difficulty %d outside [%d, %d]", DifficultyDefault, DifficultyMin, DifficultyMax)
	}
}

// TestSpriteFitsMinimumTerminal verifies a dot sprite fits inside the smallest accepted play area
func TestSpriteFitsMinimumTerminal(t *testing.T) {
	playRows := MinPlayRows - HUDRows - FooterRows
	if SpriteCols > MinPlayCols || SpriteRows > playRows {
		t.Errorf("Sprite %dx%d does not fit %dx%d play cells", SpriteCols, SpriteRows, MinPlayCols, playRows)
	}

	// Sprite width in units should cover the entity size so the drawn dot is at least as wide as its hit box
	if float64(SpriteCols)*CellWidth < EntitySize {
		t.Errorf("Sprite width %.0f narrower than entity size %.0f", float64(SpriteCols)*CellWidth, EntitySize)
	}
}

// TestRoundBudget verifies the countdown divides evenly into ticks
func TestRoundBudget(t *testing.T) {
	if RoundDuration%CountdownTick != 0 {
		t.Errorf("Round duration %v not a multiple of tick %v", RoundDuration, CountdownTick)
	}
	if ticks := int(RoundDuration / CountdownTick); ticks != 60 {
		t.Errorf("Expected 60 countdown ticks, got %d", ticks)
	}
	if MissBudget <= 0 || HistoryLimit <= 0 {
		t.Error("Expected positive miss budget and history limit")
	}
}

// TestEffectLifetimes verifies particles outlive trails and the audio gap stays below a frame
func TestEffectLifetimes(t *testing.T) {
	if ParticleLifetime <= TrailLifetime {
		t.Errorf("Expected particles (%v) to outlive trails (%v)", ParticleLifetime, TrailLifetime)
	}
	if MinSoundGap > 2*FrameUpdateInterval {
		t.Errorf("Sound gap %v would swallow cues from consecutive frames", MinSoundGap)
	}
}
