package scene

import (
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/vmath"
)

// AmbientLight lights every surface equally
type AmbientLight struct {
	Color     render.RGB
	Intensity float64
}

// DirectionalLight shines from Position toward the origin
type DirectionalLight struct {
	Color     render.RGB
	Intensity float64
	Position  vmath.Vec3F
}

// Direction returns the unit vector pointing from the origin toward the light
func (l DirectionalLight) Direction() vmath.Vec3F {
	return vmath.V3FNormalize(l.Position)
}
