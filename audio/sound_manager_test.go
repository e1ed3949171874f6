package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/dotstrike/event"
)

// newTestManager returns a manager that records cues instead of opening a device
func newTestManager(t *testing.T) (*SoundManager, *[]beep.Streamer, *time.Time) {
	t.Helper()
	sm := NewSoundManager(nil, zerolog.Nop())
	var played []beep.Streamer
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sm.play = func(s beep.Streamer) { played = append(played, s) }
	sm.now = func() time.Time { return clock }
	sm.initialized = true
	return sm, &played, &clock
}

// TestSoundManagerGracefulDegradation verifies operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	if sm.Play(SoundHit) {
		t.Error("Expected Play to be suppressed without initialization")
	}
	sm.HandleEvent(event.GameEvent{Type: event.EventRoundEnded})
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config never touches the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, zerolog.Nop())

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Expected nil error for disabled audio, got %v", err)
	}
	if sm.Initialized() {
		t.Error("Expected disabled audio to stay uninitialized")
	}
}

func TestSoundManagerEventMapping(t *testing.T) {
	sm, played, clock := newTestManager(t)

	hit := event.GameEvent{
		Type:    event.EventEntityDestroyed,
		Payload: &event.EntityDestroyedPayload{Reason: event.ReasonHit},
	}
	cleared := event.GameEvent{
		Type:    event.EventEntityDestroyed,
		Payload: &event.EntityDestroyedPayload{Reason: event.ReasonCleared},
	}

	sm.HandleEvent(hit)
	sm.HandleEvent(cleared)
	*clock = clock.Add(time.Second)
	sm.HandleEvent(event.GameEvent{Type: event.EventRoundEnded, Payload: &event.RoundEndPayload{}})

	if len(*played) != 2 {
		t.Errorf("Expected hit and end cues only, got %d", len(*played))
	}
}

func TestSoundManagerRateLimit(t *testing.T) {
	sm, played, clock := newTestManager(t)

	if !sm.Play(SoundMiss) {
		t.Fatal("Expected first cue to play")
	}
	if sm.Play(SoundMiss) {
		t.Error("Expected immediate repeat to be suppressed")
	}
	if !sm.Play(SoundHit) {
		t.Error("Expected a different cue type to play")
	}

	*clock = clock.Add(sm.cfg.MinSoundGap)
	if !sm.Play(SoundMiss) {
		t.Error("Expected cue to play after the minimum gap")
	}
	if len(*played) != 3 {
		t.Errorf("Expected 3 cues, got %d", len(*played))
	}
}

func TestSoundManagerMute(t *testing.T) {
	sm, played, _ := newTestManager(t)

	if !sm.ToggleMute() || !sm.Muted() {
		t.Fatal("Expected muted after toggle")
	}
	sm.Play(SoundHit)
	if len(*played) != 0 {
		t.Error("Expected no cues while muted")
	}
	if sm.ToggleMute() {
		t.Error("Expected unmuted after second toggle")
	}
}

func TestSoundManagerEventTypes(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())
	router := event.NewRouter()
	router.Register(sm)

	if !router.HasHandlers(event.EventEntityDestroyed) || !router.HasHandlers(event.EventRoundEnded) {
		t.Error("Expected sound manager registered for destroy and round end")
	}
	if router.HasHandlers(event.EventEntityMoved) {
		t.Error("Expected sound manager not to listen to movement")
	}
}
