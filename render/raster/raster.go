// Package raster projects a scene graph onto a render.Canvas
package raster

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/vmath"
)

// Stats summarizes what one Draw call emitted
type Stats struct {
	Points    int // particles plotted
	Triangles int // ornament faces outlined
	Clipped   int // primitives skipped behind the camera or outside the frustum
}

// Rasterizer draws ornaments as lit wireframes, then particles additively on top
// Every face in front of the near plane is outlined, far side included
// Holds per-frame matrices only, safe to reuse across frames
type Rasterizer struct {
	view     mgl32.Mat4
	viewProj mgl32.Mat4
	width    float64
	height   float64
	near     float32
}

func New() *Rasterizer {
	return &Rasterizer{}
}

// Draw clears the canvas and renders g from its camera
func (r *Rasterizer) Draw(g *scene.Graph, c render.Canvas) Stats {
	c.Clear()
	w, h := c.Bounds()
	var st Stats
	if w <= 0 || h <= 0 || g == nil {
		return st
	}
	r.width, r.height = float64(w), float64(h)
	r.near = float32(g.Camera.Near)
	r.view = g.Camera.View()
	r.viewProj = g.Camera.Projection().Mul4(r.view)

	for _, o := range g.Ornaments {
		if o != nil {
			r.drawOrnament(g, o, c, &st)
		}
	}
	for _, f := range g.Fields {
		r.drawField(f, c, &st)
	}
	return st
}

// project maps a world point to device pixels, ok is false behind the near plane
func (r *Rasterizer) project(p mgl32.Vec3) (sx, sy float64, ok bool) {
	clip := r.viewProj.Mul4x1(p.Vec4(1))
	if clip.W() < r.near {
		return 0, 0, false
	}
	nx, ny := float64(clip.X()/clip.W()), float64(clip.Y()/clip.W())
	return (nx + 1) / 2 * r.width, (1 - ny) / 2 * r.height, true
}

func (r *Rasterizer) drawOrnament(g *scene.Graph, o *scene.Ornament, c render.Canvas, st *Stats) {
	m := o.Mesh
	if m == nil || m.Disposed() {
		return
	}
	model := vmath.Compose(o.Position, o.Rotation)
	rot := vmath.EulerXYZ(o.Rotation)

	world := make([]mgl32.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		world[i] = model.Mul4x1(v.Vec4(1)).Vec3()
	}

	for i, tri := range m.Triangles {
		var xs, ys [3]float64
		visible := true
		for k, vi := range tri {
			x, y, ok := r.project(world[vi])
			if !ok {
				visible = false
				break
			}
			xs[k], ys[k] = x, y
		}
		if !visible {
			st.Clipped++
			continue
		}

		n := rot.Mul4x1(m.FaceNormal(i).Vec4(0)).Vec3()
		col := shade(o.Material.Color, g.Ambient, g.Directional, n)
		c.Line(xs[0], ys[0], xs[1], ys[1], col)
		c.Line(xs[1], ys[1], xs[2], ys[2], col)
		c.Line(xs[2], ys[2], xs[0], ys[0], col)
		st.Triangles++
	}
}

func (r *Rasterizer) drawField(f *scene.ParticleField, c render.Canvas, st *Stats) {
	if f == nil || f.Disposed() {
		return
	}
	model := vmath.EulerXYZ(f.Rotation)
	modelView := r.view.Mul4(model)
	mvp := r.viewProj.Mul4(model)
	mat := f.Material
	mode := render.BlendAlpha
	if mat.Additive {
		mode = render.BlendAdd
	}

	pos := f.Positions
	for i := 0; i+2 < len(pos); i += 3 {
		local := mgl32.Vec4{pos[i], pos[i+1], pos[i+2], 1}
		clip := mvp.Mul4x1(local)
		if clip.W() < r.near {
			st.Clipped++
			continue
		}
		nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
		if nx < -1 || nx > 1 || ny < -1 || ny > 1 {
			st.Clipped++
			continue
		}
		depth := -modelView.Mul4x1(local).Z()
		// Attenuated diameter: size * (height/2) / depth
		radius := float64(mat.Size) * r.height / 2 / float64(depth) / 2
		sx := (float64(nx) + 1) / 2 * r.width
		sy := (1 - float64(ny)) / 2 * r.height
		c.Point(sx, sy, radius, mat.Color, mat.Opacity, mode)
		st.Points++
	}
}

// shade applies ambient plus lambertian directional lighting to a surface color
func shade(base render.RGB, amb scene.AmbientLight, dir scene.DirectionalLight, normal mgl32.Vec3) render.RGB {
	l := dir.Direction()
	diffuse := vmath.V3FDot(vmath.Vec3F{X: float64(normal.X()), Y: float64(normal.Y()), Z: float64(normal.Z())}, l)
	if diffuse < 0 {
		diffuse = 0
	}
	lit := render.Add(
		render.Modulate(base, amb.Color, amb.Intensity),
		render.Modulate(base, dir.Color, dir.Intensity*diffuse),
		1,
	)
	return lit
}
