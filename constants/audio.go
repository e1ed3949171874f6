package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two cues of the same type
	MinSoundGap = 30 * time.Millisecond
)

// Hit Sound Timing
const (
	HitSoundDuration           = 250 * time.Millisecond
	HitSoundAttack             = 5 * time.Millisecond
	HitSoundFundamentalRelease = 220 * time.Millisecond
	HitSoundOvertoneRelease    = 120 * time.Millisecond
)

// Miss Sound Timing
const (
	MissSoundDuration = 120 * time.Millisecond
	MissSoundAttack   = 5 * time.Millisecond
	MissSoundRelease  = 60 * time.Millisecond
)

// End Sound Timing
const (
	EndSoundNote1Duration = 180 * time.Millisecond
	EndSoundNote2Duration = 420 * time.Millisecond
	EndSoundAttack        = 10 * time.Millisecond
	EndSoundNote1Release  = 80 * time.Millisecond
	EndSoundNote2Release  = 350 * time.Millisecond
)
