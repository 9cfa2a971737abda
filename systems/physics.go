// Package systems contains the per-frame systems the engine runs on top of
// the ECS core.
package systems

import (
	"math"

	"github.com/60-de-QI/vulqian"
	"github.com/60-de-QI/vulqian/components"
)

const twoPi = 2 * math.Pi

// Physics moves every entity that has a Transform and a Motion.
type Physics struct {
	vulqian.System

	query *vulqian.Filter2[components.Transform, components.Motion]
}

// RegisterPhysics registers Physics with c and sets its requirement.
// Transform and Motion must already be registered.
func RegisterPhysics(c *vulqian.Coordinator) *Physics {
	p := vulqian.RegisterSystem[Physics](c)
	vulqian.SetSystemSignature[Physics](c, vulqian.NewSignature(
		vulqian.TypeOf[components.Transform](c),
		vulqian.TypeOf[components.Motion](c),
	))
	p.query = vulqian.NewFilter2[components.Transform, components.Motion](c, &p.System)
	return p
}

// Update advances every member by dt seconds. Rotation angles are kept in
// [0, 2π).
func (p *Physics) Update(dt float32) {
	p.query.Reset()
	for p.query.Next() {
		t, m := p.query.Get()
		t.Translation = t.Translation.Add(m.Velocity.Mul(dt))
		for i := range t.Rotation {
			t.Rotation[i] = wrapAngle(t.Rotation[i] + m.Spin[i]*dt)
		}
	}
}

func wrapAngle(a float32) float32 {
	r := float32(math.Mod(float64(a), twoPi))
	if r < 0 {
		r += twoPi
	}
	if r >= twoPi {
		return 0
	}
	return r
}
