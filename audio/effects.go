package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/dotstrike/constants"
)

// waveform maps a phase in [0, 1) to a sample in [-1, 1]
type waveform func(phase float64) float64

func sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }

func square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

func saw(p float64) float64 { return 2*p - 1 }

// voice is one enveloped note; attack ramps up from silence and release fades to zero on the last sample
type voice struct {
	freq    float64
	wave    waveform
	gain    float64
	length  time.Duration
	attack  time.Duration
	release time.Duration
}

func (v voice) streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(v.length)
	att := rate.N(v.attack)
	rel := min(rate.N(v.release), total)
	step := v.freq / float64(rate)

	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for ; n < len(samples) && pos < total; n++ {
			_, phase := math.Modf(float64(pos) * step)
			x := v.wave(phase) * v.gain * envelopeGain(pos, total, att, rel)
			samples[n] = [2]float64{x, x}
			pos++
		}
		return n, true
	})
}

// envelopeGain is the linear attack/release level at sample pos of a note total samples long
func envelopeGain(pos, total, attack, release int) float64 {
	g := 1.0
	if attack > 0 && pos < attack {
		g = float64(pos) / float64(attack)
	}
	if release > 0 && pos >= total-release {
		g = min(g, float64(total-pos)/float64(release))
	}
	return g
}

// withGain scales s by a linear factor; zero or less is silent since the log scale has no zero
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Sound effect generators

// CreateHitSound generates a short bell for a clicked dot: A5 with a quieter octave that decays first
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	fundamental := voice{
		freq: 880, wave: sine, gain: 0.7,
		length: constants.HitSoundDuration, attack: constants.HitSoundAttack, release: constants.HitSoundFundamentalRelease,
	}
	overtone := voice{
		freq: 1760, wave: sine, gain: 0.3,
		length: constants.HitSoundDuration, attack: constants.HitSoundAttack, release: constants.HitSoundOvertoneRelease,
	}
	mixed := beep.Mix(fundamental.streamer(rate), overtone.streamer(rate))
	return withGain(mixed, cfg.effectVolume(SoundHit))
}

// CreateMissSound generates a low buzz for an escaped dot
func CreateMissSound(cfg *AudioConfig) beep.Streamer {
	buzz := voice{
		freq: 110, wave: saw, gain: 1,
		length: constants.MissSoundDuration, attack: constants.MissSoundAttack, release: constants.MissSoundRelease,
	}
	return withGain(buzz.streamer(beep.SampleRate(cfg.SampleRate)), cfg.effectVolume(SoundMiss))
}

// CreateEndSound generates a descending E6, B5 chime for round end
func CreateEndSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	first := voice{
		freq: 1318.51, wave: square, gain: 1,
		length: constants.EndSoundNote1Duration, attack: constants.EndSoundAttack, release: constants.EndSoundNote1Release,
	}
	second := voice{
		freq: 987.77, wave: square, gain: 1,
		length: constants.EndSoundNote2Duration, attack: constants.EndSoundAttack, release: constants.EndSoundNote2Release,
	}
	return withGain(beep.Seq(first.streamer(rate), second.streamer(rate)), cfg.effectVolume(SoundEnd))
}

// GetSoundEffect returns the streamer for the given sound type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundMiss:
		return CreateMissSound(cfg)
	case SoundEnd:
		return CreateEndSound(cfg)
	default:
		return nil
	}
}
