package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/backdrop/constant"
)

func TestCameraConvergesWithoutOvershoot(t *testing.T) {
	c := NewCamera(16.0 / 9)
	tx, ty := 0.8, -0.6
	goalX, goalY := tx*constant.CameraTargetScale, ty*constant.CameraTargetScale

	prev := math.Hypot(goalX-c.Position.X, goalY-c.Position.Y)
	for i := 0; i < 300; i++ {
		c.Follow(tx, ty)
		d := math.Hypot(goalX-c.Position.X, goalY-c.Position.Y)
		if d > prev {
			t.Fatalf("step %d: distance grew %v -> %v", i, prev, d)
		}
		if c.Position.X > goalX || c.Position.Y < goalY {
			t.Fatalf("step %d overshot: %+v", i, c.Position)
		}
		prev = d
	}
	if prev > 1e-6 {
		t.Errorf("did not converge, distance %v", prev)
	}
	if c.Position.Z != constant.CameraZ {
		t.Errorf("z moved to %v", c.Position.Z)
	}
}

func TestCameraFollowStep(t *testing.T) {
	c := NewCamera(1)
	c.Follow(1, 1)
	// new = old + (target*0.5 - old) * 0.05
	if c.Position.X != 0.025 || c.Position.Y != 0.025 {
		t.Errorf("first step = (%v, %v), want 0.025", c.Position.X, c.Position.Y)
	}
}

func TestCameraSetAspect(t *testing.T) {
	c := NewCamera(1)
	c.SetAspect(2)
	want := mgl32.Perspective(mgl32.DegToRad(75), 2, 0.1, 1000)
	if !c.Projection().ApproxEqual(want) {
		t.Errorf("projection not rebuilt for aspect 2")
	}
	c.SetAspect(0)
	if c.Aspect != 1 {
		t.Errorf("degenerate aspect = %v, want fallback 1", c.Aspect)
	}
}

func TestCameraViewFacesOrigin(t *testing.T) {
	c := NewCamera(1)
	c.Position.X, c.Position.Y = 0.3, -0.2
	c.LookAt(Origin)
	p := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if math.Abs(float64(p.X())) > 1e-5 || math.Abs(float64(p.Y())) > 1e-5 || p.Z() >= 0 {
		t.Errorf("origin in view space = %v, want on -Z axis", p)
	}
}

func TestGraphComposition(t *testing.T) {
	g := NewGraph(rand.New(rand.NewSource(1)), 1.5)
	if len(g.Fields) != 3 {
		t.Fatalf("fields = %d, want 3", len(g.Fields))
	}
	if g.ParticleCount() != 1500+1000+800 {
		t.Errorf("particles = %d", g.ParticleCount())
	}
	for i, o := range g.Ornaments {
		if o == nil {
			t.Fatalf("ornament %d missing", i)
		}
	}
	if g.Camera.Aspect != 1.5 || g.Camera.Position.Z != constant.CameraZ {
		t.Errorf("camera = %+v", g.Camera)
	}
	if g.Ambient.Color.R != 0x40 || g.Directional.Intensity != 1 {
		t.Errorf("lights = %+v %+v", g.Ambient, g.Directional)
	}
}
