package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMeshSizes(t *testing.T) {
	tests := []struct {
		name      string
		mesh      *Mesh
		vertices  int
		triangles int
	}{
		{"Torus", NewTorus(0.3, 0.1, 16, 32), 17 * 33, 16 * 32 * 2},
		{"Octahedron", NewOctahedron(0.2), 6, 8},
		{"Tetrahedron", NewTetrahedron(0.2), 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.mesh.Vertices) != tt.vertices {
				t.Errorf("vertices = %d, want %d", len(tt.mesh.Vertices), tt.vertices)
			}
			if len(tt.mesh.Triangles) != tt.triangles {
				t.Errorf("triangles = %d, want %d", len(tt.mesh.Triangles), tt.triangles)
			}
			for i, tri := range tt.mesh.Triangles {
				for _, idx := range tri {
					if idx < 0 || idx >= len(tt.mesh.Vertices) {
						t.Fatalf("triangle %d index %d out of range", i, idx)
					}
				}
			}
		})
	}
}

func TestConvexMeshesWindOutward(t *testing.T) {
	for name, m := range map[string]*Mesh{"octahedron": NewOctahedron(0.2), "tetrahedron": NewTetrahedron(0.2)} {
		for i, tri := range m.Triangles {
			centroid := m.Vertices[tri[0]].Add(m.Vertices[tri[1]]).Add(m.Vertices[tri[2]]).Mul(1.0 / 3)
			if m.FaceNormal(i).Dot(centroid) <= 0 {
				t.Errorf("%s face %d winds inward", name, i)
			}
		}
	}
}

func TestTetrahedronRadius(t *testing.T) {
	m := NewTetrahedron(0.2)
	for i, v := range m.Vertices {
		if l := v.Len(); mgl32.Abs(l-0.2) > 1e-6 {
			t.Errorf("vertex %d radius = %v", i, l)
		}
	}
}

func TestMeshDispose(t *testing.T) {
	m := NewOctahedron(1)
	m.Dispose()
	if !m.Disposed() || m.Vertices != nil || m.Triangles != nil {
		t.Error("mesh storage not released")
	}
}
