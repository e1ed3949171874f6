package audio

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ClampVolume bounds v to [0, 1]
func ClampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseEffectVolumes applies a JSON object of per-effect volumes, e.g. {"hit":1,"miss":0.4}
// Unknown names are rejected; valid entries before the error are kept
func (c *AudioConfig) ParseEffectVolumes(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var volumes map[string]float64
	if err := json.Unmarshal([]byte(raw), &volumes); err != nil {
		return fmt.Errorf("effect volumes: %w", err)
	}
	return c.SetEffectVolumes(volumes)
}

// SetEffectVolumes applies per-effect volumes keyed by sound name
func (c *AudioConfig) SetEffectVolumes(volumes map[string]float64) error {
	if c.EffectVolumes == nil {
		c.EffectVolumes = make(map[SoundType]float64)
	}
	for name, v := range volumes {
		st, ok := soundByName(name)
		if !ok {
			return fmt.Errorf("effect volumes: unknown sound %q", name)
		}
		c.EffectVolumes[st] = ClampVolume(v)
	}
	return nil
}

func soundByName(name string) (SoundType, bool) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		if st.String() == strings.ToLower(name) {
			return st, true
		}
	}
	return 0, false
}

// effectVolume returns the effective gain for a sound
func (c *AudioConfig) effectVolume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
