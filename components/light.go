package components

import "github.com/go-gl/mathgl/mgl32"

// PointLight emits light from the translation of the entity's Transform.
type PointLight struct {
	Intensity float32
	Color     mgl32.Vec3
}

// NewPointLight returns a white light of intensity 1.
func NewPointLight() PointLight {
	return PointLight{Intensity: 1, Color: mgl32.Vec3{1, 1, 1}}
}

// Transparency makes an entity blend with what is behind it.
type Transparency struct {
	Alpha                float32 // 0 is fully transparent, 1 fully opaque
	Color                mgl32.Vec3
	RequiresDepthSorting bool
}

// NewTransparency returns a white transparency with the given alpha that
// is depth sorted.
func NewTransparency(alpha float32) Transparency {
	return Transparency{Alpha: alpha, Color: mgl32.Vec3{1, 1, 1}, RequiresDepthSorting: true}
}

// Motion drives an entity's Transform in the physics step.
type Motion struct {
	Velocity mgl32.Vec3 // units per second
	Spin     mgl32.Vec3 // radians per second around X, Y and Z
}
