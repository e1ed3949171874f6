package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion, or one second of samples, and returns the count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < 48000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return total, peak
}

func TestVoiceWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave waveform
	}{
		{"sine", sine},
		{"square", square},
		{"saw", saw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := voice{freq: 440, wave: tt.wave, gain: 0.5, length: 10 * time.Millisecond}
			s := v.streamer(rate)
			n, peak := drain(s)
			if n != rate.N(v.length) {
				t.Errorf("Expected %d samples, got %d", rate.N(v.length), n)
			}
			if peak == 0 || peak > v.gain {
				t.Errorf("Expected peak in (0, %f], got %f", v.gain, peak)
			}
			if s.Err() != nil {
				t.Errorf("Unexpected error %v", s.Err())
			}
		})
	}
}

func TestVoiceEnvelopeEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	v := voice{freq: 440, wave: square, gain: 1, length: 50 * time.Millisecond, attack: 10 * time.Millisecond, release: 10 * time.Millisecond}

	buf := make([][2]float64, rate.N(v.length))
	n, _ := v.streamer(rate).Stream(buf)
	if n != len(buf) {
		t.Fatalf("Expected %d samples in one call, got %d", len(buf), n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected first sample silent during attack, got %f", buf[0][0])
	}
	if last := buf[n-1][0]; last > 1.0/float64(rate.N(v.release)) || -last > 1.0/float64(rate.N(v.release)) {
		t.Errorf("Expected last sample faded out, got %f", last)
	}
	if mid := buf[n/2][0]; mid != 1 && mid != -1 {
		t.Errorf("Expected full level in sustain, got %f", mid)
	}
}

func TestEnvelopeGain(t *testing.T) {
	tests := []struct {
		name                        string
		pos, total, attack, release int
		want                        float64
	}{
		{"attack start", 0, 100, 10, 10, 0},
		{"attack half", 5, 100, 10, 10, 0.5},
		{"sustain", 50, 100, 10, 10, 1},
		{"release half", 95, 100, 10, 10, 0.5},
		{"no shaping", 0, 100, 0, 0, 1},
		{"overlap takes lower", 4, 10, 8, 8, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := envelopeGain(tt.pos, tt.total, tt.attack, tt.release); got != tt.want {
				t.Errorf("envelopeGain = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSoundEffectDurations(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	// Mixed cues may pad with silence, so only sequenced and single-voice cues are exact
	tests := []struct {
		sound SoundType
		want  time.Duration
		exact bool
	}{
		{SoundHit, 250 * time.Millisecond, false},
		{SoundMiss, 120 * time.Millisecond, true},
		{SoundEnd, 600 * time.Millisecond, true},
	}
	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.sound, cfg)
			if s == nil {
				t.Fatal("Expected streamer")
			}
			n, peak := drain(s)
			if tt.exact && n != rate.N(tt.want) {
				t.Errorf("Expected %d samples, got %d", rate.N(tt.want), n)
			}
			if n < rate.N(tt.want) {
				t.Errorf("Expected at least %d samples, got %d", rate.N(tt.want), n)
			}
			if peak == 0 {
				t.Error("Expected audible output")
			}
		})
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil for unknown sound type")
	}
}

func TestSilentVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	_, peak := drain(CreateMissSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}
