package scene

import (
	"math/rand"

	"github.com/lixenwraith/backdrop/constant"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/vmath"
)

// Graph owns the camera, the lights and the renderables of the fixed scene composition
type Graph struct {
	Camera      *Camera
	Ambient     AmbientLight
	Directional DirectionalLight
	Fields      []*ParticleField
	Ornaments   [constant.OrnamentCount]*Ornament
}

// Origin is the point the camera always faces
var Origin = vmath.Vec3F{}

// NewGraph builds the scene: camera, ambient and directional lights, three particle fields, three ornaments
func NewGraph(rng *rand.Rand, aspect float64) *Graph {
	g := &Graph{
		Camera: NewCamera(aspect),
		Ambient: AmbientLight{
			Color:     render.FromUint(constant.AmbientColor),
			Intensity: constant.AmbientIntensity,
		},
		Directional: DirectionalLight{
			Color:     render.FromUint(constant.DirectionalColor),
			Intensity: constant.DirectionalIntensity,
			Position: vmath.Vec3F{
				X: constant.DirectionalPosition[0],
				Y: constant.DirectionalPosition[1],
				Z: constant.DirectionalPosition[2],
			},
		},
	}
	for _, def := range constant.SceneFields {
		g.Fields = append(g.Fields, NewParticleField(rng, def.Count, def.Size, render.MustParseHex(def.Color), def.Spread))
	}
	g.Ornaments = NewOrnamentSet(rng)
	g.Camera.LookAt(Origin)
	return g
}

// ParticleCount sums the population of every field
func (g *Graph) ParticleCount() int {
	n := 0
	for _, f := range g.Fields {
		n += f.Count()
	}
	return n
}
