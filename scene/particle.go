package scene

import (
	"math/rand"

	"github.com/lixenwraith/backdrop/constant"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/vmath"
)

// PointMaterial is shared by every point of a field
type PointMaterial struct {
	Size     float32 // world units, attenuated by depth
	Color    render.RGB
	Opacity  float64
	Additive bool
}

// ParticleField is a fixed population of independently drifting points
// Positions and Velocities hold xyz triplets, their length never changes after creation
type ParticleField struct {
	Positions  []float32
	Velocities []float32
	Material   PointMaterial
	Rotation   vmath.Vec3F

	count    int
	released bool
}

// NewParticleField scatters count points uniformly in a cube of side spread centered at the origin
// Negative counts degenerate to an empty field
func NewParticleField(rng *rand.Rand, count int, size float32, color render.RGB, spread float64) *ParticleField {
	count = max(count, 0)
	f := &ParticleField{
		Positions:  make([]float32, count*3),
		Velocities: make([]float32, count*3),
		Material: PointMaterial{
			Size:     size,
			Color:    color,
			Opacity:  constant.ParticleOpacity,
			Additive: true,
		},
		count: count,
	}

	for i := 0; i < count*3; i += 3 {
		f.Positions[i] = float32((rng.Float64() - 0.5) * spread)
		f.Positions[i+1] = float32((rng.Float64() - 0.5) * spread)
		f.Positions[i+2] = float32((rng.Float64() - 0.5) * spread)

		f.Velocities[i] = float32((rng.Float64() - 0.5) * constant.ParticleSpeedSpread)
		f.Velocities[i+1] = float32((rng.Float64() - 0.5) * constant.ParticleSpeedSpread)
		f.Velocities[i+2] = float32((rng.Float64() - 0.5) * constant.ParticleSpeedSpread)
	}
	return f
}

// Count returns the number of particles
func (f *ParticleField) Count() int {
	return f.count
}

// Advance integrates one frame: position += velocity, then each axis whose position magnitude
// exceeds the bound has its velocity negated, independently of the other axes
func (f *ParticleField) Advance() {
	if f.released {
		return
	}
	pos, vel := f.Positions, f.Velocities
	for i := 0; i < len(pos); i++ {
		pos[i] += vel[i]
		if p := pos[i]; p > constant.ParticleBound || p < -constant.ParticleBound {
			vel[i] = -vel[i]
		}
	}
	f.Rotation.X += constant.FieldSpin
	f.Rotation.Y += constant.FieldSpin
}

// Dispose releases the position and velocity buffers
func (f *ParticleField) Dispose() {
	f.Positions = nil
	f.Velocities = nil
	f.released = true
}

// Disposed reports whether the buffers were released
func (f *ParticleField) Disposed() bool {
	return f.released
}
