package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform places an object using Tait-Bryan angles applied in Y, X, Z
// order.
type Transform struct {
	Translation mgl32.Vec3
	Scale       mgl32.Vec3
	Rotation    mgl32.Vec3 // radians around X, Y and Z
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Mat4 returns translation * Ry * Rx * Rz * scale.
func (t Transform) Mat4() mgl32.Mat4 {
	c1, s1, c2, s2, c3, s3 := t.trig()
	sx, sy, sz := t.Scale[0], t.Scale[1], t.Scale[2]
	return mgl32.Mat4{
		sx * (c1*c3 + s1*s2*s3), sx * (c2 * s3), sx * (c1*s2*s3 - c3*s1), 0,
		sy * (c3*s1*s2 - c1*s3), sy * (c2 * c3), sy * (c1*c3*s2 + s1*s3), 0,
		sz * (c2 * s1), sz * (-s2), sz * (c1 * c2), 0,
		t.Translation[0], t.Translation[1], t.Translation[2], 1,
	}
}

// NormalMatrix returns the inverse transpose of the upper 3x3 of Mat4,
// computed directly from the angles and the inverse scale.
func (t Transform) NormalMatrix() mgl32.Mat3 {
	c1, s1, c2, s2, c3, s3 := t.trig()
	ix, iy, iz := 1/t.Scale[0], 1/t.Scale[1], 1/t.Scale[2]
	return mgl32.Mat3{
		ix * (c1*c3 + s1*s2*s3), ix * (c2 * s3), ix * (c1*s2*s3 - c3*s1),
		iy * (c3*s1*s2 - c1*s3), iy * (c2 * c3), iy * (c1*c3*s2 + s1*s3),
		iz * (c2 * s1), iz * (-s2), iz * (c1 * c2),
	}
}

func (t Transform) trig() (c1, s1, c2, s2, c3, s3 float32) {
	c3, s3 = cosSin(t.Rotation[2])
	c2, s2 = cosSin(t.Rotation[0])
	c1, s1 = cosSin(t.Rotation[1])
	return
}

func cosSin(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(c), float32(s)
}

// QuatTransform places an object using a quaternion rotation.
type QuatTransform struct {
	Translation mgl32.Vec3
	Scale       mgl32.Vec3
	Rotation    mgl32.Quat
}

// NewQuatTransform returns an identity transform.
func NewQuatTransform() QuatTransform {
	return QuatTransform{Scale: mgl32.Vec3{1, 1, 1}, Rotation: mgl32.QuatIdent()}
}

// Mat4 returns translation * rotation * scale.
func (t QuatTransform) Mat4() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2]).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}
