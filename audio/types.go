package audio

import (
	"errors"
	"time"

	"github.com/lixenwraith/dotstrike/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit  SoundType = iota // Dot clicked
	SoundMiss                  // Dot escaped
	SoundEnd                   // Round over
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundMiss:
		return "miss"
	case SoundEnd:
		return "end"
	default:
		return "unknown"
	}
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
	MinSoundGap   time.Duration
}

// DefaultAudioConfig returns the configuration used when nothing overrides it
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundHit:  1.0,
			SoundMiss: 0.6,
			SoundEnd:  0.8,
		},
		SampleRate:  constants.AudioSampleRate,
		MinSoundGap: constants.MinSoundGap,
	}
}

var ErrNotInitialized = errors.New("audio not initialized")
