// Package components defines the payloads the engine attaches to entities.
package components

import "github.com/60-de-QI/vulqian"

// Register registers every component of this package with c, in a fixed
// order so their ComponentTypes are stable across runs.
func Register(c *vulqian.Coordinator) {
	vulqian.RegisterComponent[Transform](c)
	vulqian.RegisterComponent[QuatTransform](c)
	vulqian.RegisterComponent[Mesh](c)
	vulqian.RegisterComponent[PointLight](c)
	vulqian.RegisterComponent[Transparency](c)
	vulqian.RegisterComponent[Motion](c)
}
