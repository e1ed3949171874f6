package render

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dotstrike/constants"
	"github.com/lixenwraith/dotstrike/vmath"
)

// trail is a fading stamp left where a dot passed
type trail struct {
	pos   vmath.Vec2F
	color tcell.Color
	born  time.Time
}

// particle is one fragment of a hit burst, travelling from origin to target
type particle struct {
	origin vmath.Vec2F
	target vmath.Vec2F
	color  tcell.Color
	born   time.Time
}

// effects holds the transient visuals; all state is renderer-local
type effects struct {
	rng       *rand.Rand
	trails    []trail
	particles []particle
}

func newEffects(rng *rand.Rand) *effects {
	return &effects{
		rng:    rng,
		trails: make([]trail, 0, constants.MaxTrails),
	}
}

func (fx *effects) addTrail(pos vmath.Vec2F, color tcell.Color, now time.Time) {
	if len(fx.trails) >= constants.MaxTrails {
		fx.trails = fx.trails[1:]
	}
	fx.trails = append(fx.trails, trail{pos: pos, color: color, born: now})
}

// burst spawns ParticleCount particles at center, each heading a random angle up to ParticleSpread units
func (fx *effects) burst(center vmath.Vec2F, color tcell.Color, now time.Time) {
	for i := 0; i < constants.ParticleCount; i++ {
		theta := fx.rng.Float64() * 2 * math.Pi
		dist := fx.rng.Float64() * constants.ParticleSpread
		fx.particles = append(fx.particles, particle{
			origin: center,
			target: vmath.V2FAdd(center, vmath.V2FPolar(theta, dist)),
			color:  color,
			born:   now,
		})
	}
}

// update drops expired trails and particles
func (fx *effects) update(now time.Time) {
	live := fx.trails[:0]
	for _, t := range fx.trails {
		if now.Sub(t.born) < constants.TrailLifetime {
			live = append(live, t)
		}
	}
	fx.trails = live

	parts := fx.particles[:0]
	for _, p := range fx.particles {
		if now.Sub(p.born) < constants.ParticleLifetime {
			parts = append(parts, p)
		}
	}
	fx.particles = parts
}

func (fx *effects) clearTrails() {
	fx.trails = fx.trails[:0]
}

// progress returns elapsed/lifetime clamped to [0, 1]
func progress(born, now time.Time, lifetime time.Duration) float64 {
	p := float64(now.Sub(born)) / float64(lifetime)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// position returns the particle location eased toward its target
func (p particle) position(now time.Time) vmath.Vec2F {
	t := progress(p.born, now, constants.ParticleLifetime)
	ease := 1 - (1-t)*(1-t)
	return vmath.V2FAdd(p.origin, vmath.V2FScale(vmath.V2FSub(p.target, p.origin), ease))
}
