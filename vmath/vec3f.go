package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3F is a float64 3D vector for positions and Euler rotations that accumulate over long runs
type Vec3F struct {
	X, Y, Z float64
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FToGL narrows to the float32 vector used by matrix math
func V3FToGL(v Vec3F) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// EulerXYZ builds a rotation matrix applying X, then Y, then Z intrinsic rotations (Rx * Ry * Rz)
func EulerXYZ(r Vec3F) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(float32(r.X)).
		Mul4(mgl32.HomogRotate3DY(float32(r.Y))).
		Mul4(mgl32.HomogRotate3DZ(float32(r.Z)))
}

// Compose returns the model matrix T * R for a position and Euler rotation
func Compose(pos, rot Vec3F) mgl32.Mat4 {
	return mgl32.Translate3D(float32(pos.X), float32(pos.Y), float32(pos.Z)).Mul4(EulerXYZ(rot))
}
