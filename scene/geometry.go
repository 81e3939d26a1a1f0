package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ShapeKind identifies one of the three ornament solids
type ShapeKind uint8

const (
	ShapeTorus ShapeKind = iota
	ShapeOctahedron
	ShapeTetrahedron
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeTorus:
		return "torus"
	case ShapeOctahedron:
		return "octahedron"
	case ShapeTetrahedron:
		return "tetrahedron"
	default:
		return "unknown"
	}
}

// Mesh is an indexed triangle mesh in local space
// Triangles wind counter-clockwise when seen from outside
type Mesh struct {
	Vertices  []mgl32.Vec3
	Triangles [][3]int
	released  bool
}

// FaceNormal returns the unit normal of triangle i in local space
func (m *Mesh) FaceNormal(i int) mgl32.Vec3 {
	t := m.Triangles[i]
	a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// Dispose releases vertex and index storage
func (m *Mesh) Dispose() {
	m.Vertices = nil
	m.Triangles = nil
	m.released = true
}

// Disposed reports whether the mesh storage was released
func (m *Mesh) Disposed() bool {
	return m.released
}

// NewTorus builds a ring of tube radius tube around a circle of the given radius in the XY plane
func NewTorus(radius, tube float64, radialSegments, tubularSegments int) *Mesh {
	radialSegments = max(radialSegments, 3)
	tubularSegments = max(tubularSegments, 3)

	m := &Mesh{}
	for j := 0; j <= radialSegments; j++ {
		v := float64(j) / float64(radialSegments) * 2 * math.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float64(i) / float64(tubularSegments) * 2 * math.Pi
			m.Vertices = append(m.Vertices, mgl32.Vec3{
				float32((radius + tube*math.Cos(v)) * math.Cos(u)),
				float32((radius + tube*math.Cos(v)) * math.Sin(u)),
				float32(tube * math.Sin(v)),
			})
		}
	}

	stride := tubularSegments + 1
	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {
			a := stride*j + i - 1
			b := stride*(j-1) + i - 1
			c := stride*(j-1) + i
			d := stride*j + i
			m.Triangles = append(m.Triangles, [3]int{a, b, d}, [3]int{b, c, d})
		}
	}
	return m
}

// NewOctahedron builds a regular octahedron with vertices on the axes at the given radius
func NewOctahedron(radius float64) *Mesh {
	r := float32(radius)
	return &Mesh{
		Vertices: []mgl32.Vec3{
			{r, 0, 0}, {-r, 0, 0},
			{0, r, 0}, {0, -r, 0},
			{0, 0, r}, {0, 0, -r},
		},
		Triangles: [][3]int{
			{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
			{1, 2, 5}, {1, 5, 3}, {1, 3, 4}, {1, 4, 2},
		},
	}
}

// NewTetrahedron builds a regular tetrahedron inscribed in a sphere of the given radius
func NewTetrahedron(radius float64) *Mesh {
	corners := []mgl32.Vec3{{1, 1, 1}, {-1, -1, 1}, {-1, 1, -1}, {1, -1, -1}}
	m := &Mesh{
		Triangles: [][3]int{{2, 1, 0}, {0, 3, 2}, {1, 3, 0}, {2, 3, 1}},
	}
	for _, c := range corners {
		m.Vertices = append(m.Vertices, c.Normalize().Mul(float32(radius)))
	}
	return m
}
