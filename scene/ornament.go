package scene

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/backdrop/constant"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/vmath"
)

// WireMaterial draws mesh edges lit by the scene lights
type WireMaterial struct {
	Color     render.RGB
	Wireframe bool
}

// Ornament is one of the three fixed wireframe solids
type Ornament struct {
	Kind     ShapeKind
	Mesh     *Mesh
	Material WireMaterial
	Position vmath.Vec3F
	Rotation vmath.Vec3F
}

// NewOrnamentSet creates one ornament per shape kind, in torus, octahedron, tetrahedron order,
// each placed uniformly inside a cube of half-width 1.5 at the origin
func NewOrnamentSet(rng *rand.Rand) [constant.OrnamentCount]*Ornament {
	meshes := [constant.OrnamentCount]*Mesh{
		NewTorus(constant.TorusRadius, constant.TorusTube, constant.TorusRadialSegments, constant.TorusTubularSegments),
		NewOctahedron(constant.OctahedronRadius),
		NewTetrahedron(constant.TetrahedronRadius),
	}
	kinds := [constant.OrnamentCount]ShapeKind{ShapeTorus, ShapeOctahedron, ShapeTetrahedron}

	var set [constant.OrnamentCount]*Ornament
	for i := range set {
		set[i] = &Ornament{
			Kind: kinds[i],
			Mesh: meshes[i],
			Material: WireMaterial{
				Color:     render.MustParseHex(constant.OrnamentColors[i]),
				Wireframe: true,
			},
			Position: vmath.Vec3F{
				X: (rng.Float64() - 0.5) * constant.OrnamentSpawnSpread,
				Y: (rng.Float64() - 0.5) * constant.OrnamentSpawnSpread,
				Z: (rng.Float64() - 0.5) * constant.OrnamentSpawnSpread,
			},
		}
	}
	return set
}

// Advance spins the ornament at a rate proportional to index+1 and adds a wall-clock driven drift step
// The drift accumulates without bound over long sessions
func (o *Ornament) Advance(index int, now time.Time) {
	k := float64(index + 1)
	o.Rotation.X += constant.OrnamentSpinX * k
	o.Rotation.Y += constant.OrnamentSpinY * k

	phase := float64(now.UnixMilli())*constant.OrnamentDriftFreq + float64(index)
	o.Position.X += math.Sin(phase) * constant.OrnamentDriftAmp
	o.Position.Y += math.Cos(phase) * constant.OrnamentDriftAmp
}
