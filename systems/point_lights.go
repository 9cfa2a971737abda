package systems

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/60-de-QI/vulqian"
	"github.com/60-de-QI/vulqian/components"
)

// MaxLights is the number of point lights GlobalUbo can carry.
const MaxLights = 10

// LightData is one point light as the shaders see it.
type LightData struct {
	Position mgl32.Vec4 // w = 1
	Color    mgl32.Vec4 // w = intensity
}

// GlobalUbo is the per-frame uniform block shared by every draw.
type GlobalUbo struct {
	ProjectionView mgl32.Mat4
	AmbientColor   mgl32.Vec4 // w = intensity
	PointLights    [MaxLights]LightData
	NumLights      int
}

// NewGlobalUbo returns a block with identity projection and a faint white
// ambient term.
func NewGlobalUbo() *GlobalUbo {
	return &GlobalUbo{
		ProjectionView: mgl32.Ident4(),
		AmbientColor:   mgl32.Vec4{1, 1, 1, 0.02},
	}
}

// PointLights orbits every light around the Y axis and publishes the lights
// into the frame's GlobalUbo.
type PointLights struct {
	vulqian.System

	// Speed is the orbit speed in radians per second.
	Speed float32

	query      *vulqian.Filter2[components.Transform, components.PointLight]
	billboards []LightBillboard
}

// LightBillboard is the camera-facing quad drawn at a light's position.
type LightBillboard struct {
	Entity   vulqian.Entity
	Position mgl32.Vec4 // w = 1
	Color    mgl32.Vec4 // w = intensity
	Radius   float32    // x scale of the Transform
}

// RegisterPointLights registers PointLights with c and sets its
// requirement. Transform and PointLight must already be registered.
func RegisterPointLights(c *vulqian.Coordinator) *PointLights {
	pl := vulqian.RegisterSystem[PointLights](c)
	pl.Speed = 0.5
	vulqian.SetSystemSignature[PointLights](c, vulqian.NewSignature(
		vulqian.TypeOf[components.Transform](c),
		vulqian.TypeOf[components.PointLight](c),
	))
	pl.query = vulqian.NewFilter2[components.Transform, components.PointLight](c, &pl.System)
	return pl
}

// Update rotates each light by Speed*dt and writes them into ubo. It panics
// when more than MaxLights lights exist.
func (pl *PointLights) Update(dt float32, ubo *GlobalUbo) {
	if n := pl.Len(); n > MaxLights {
		panic(fmt.Sprintf("systems: %d point lights exceed maximum (%d)", n, MaxLights))
	}
	// negative angle around +Y is the same orbit as the engine's rotation
	// around -Y
	rotate := mgl32.HomogRotate3DY(-pl.Speed * dt)
	n := 0
	pl.query.Reset()
	for pl.query.Next() {
		t, light := pl.query.Get()
		t.Translation = rotate.Mul4x1(t.Translation.Vec4(1)).Vec3()
		ubo.PointLights[n] = LightData{
			Position: t.Translation.Vec4(1),
			Color:    light.Color.Vec4(light.Intensity),
		}
		n++
	}
	ubo.NumLights = n
}

// Collect returns one billboard per light at its current position. The
// slice is reused by the next call.
func (pl *PointLights) Collect() []LightBillboard {
	pl.billboards = pl.billboards[:0]
	pl.query.Reset()
	for pl.query.Next() {
		t, light := pl.query.Get()
		pl.billboards = append(pl.billboards, LightBillboard{
			Entity:   pl.query.Entity(),
			Position: t.Translation.Vec4(1),
			Color:    light.Color.Vec4(light.Intensity),
			Radius:   t.Scale[0],
		})
	}
	return pl.billboards
}
