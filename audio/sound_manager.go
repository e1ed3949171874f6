package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/dotstrike/constants"
	"github.com/lixenwraith/dotstrike/event"
)

// SoundManager plays the game cues through a shared mixer on the speaker
// It is an event.Handler: destroyed dots and round ends trigger cues
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  map[SoundType]time.Time
	now         func() time.Time
	log         zerolog.Logger

	// play hands a streamer to the output; replaced in tests
	play func(beep.Streamer)
}

// NewSoundManager creates a sound manager; cfg nil uses defaults
func NewSoundManager(cfg *AudioConfig, logger zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:        cfg,
		mixer:      &beep.Mixer{},
		lastPlayed: make(map[SoundType]time.Time),
		now:        time.Now,
		log:        logger.With().Str("component", "audio").Logger(),
	}
	sm.play = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	return sm
}

// Initialize sets up the speaker and starts the mixer
// A disabled config initializes nothing and returns nil
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info().Int("sample_rate", sm.cfg.SampleRate).Float64("volume", sm.cfg.MasterVolume).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether audio output is live
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether cues are suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a cue; returns false when it was suppressed
// Cues of one type closer together than MinSoundGap collapse into one
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	now := sm.now()
	if last, ok := sm.lastPlayed[st]; ok && now.Sub(last) < sm.cfg.MinSoundGap {
		return false
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return false
	}
	sm.lastPlayed[st] = now
	sm.play(streamer)
	return true
}

// HandleEvent maps game events to cues
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventEntityDestroyed:
		p, ok := ev.Payload.(*event.EntityDestroyedPayload)
		if !ok {
			return
		}
		switch p.Reason {
		case event.ReasonHit:
			sm.Play(SoundHit)
		case event.ReasonMiss:
			sm.Play(SoundMiss)
		}
	case event.EventRoundEnded:
		sm.Play(SoundEnd)
	}
}

// EventTypes returns the events the sound manager listens to
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{event.EventEntityDestroyed, event.EventRoundEnded}
}
