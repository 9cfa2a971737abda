// Package vulqian implements the Entity-Component-System runtime of the
// VulQIan engine.
//
// Features:
//   - Entity ids recycled through a FIFO free pool, bounded by a fixed capacity.
//   - One packed store per component type with O(1) swap-removal.
//   - 32-bit signatures; systems track every entity whose signature contains
//     their requirement.
//   - A Coordinator facade that keeps signatures, stores and systems
//     consistent after every call.
//
// Misuse (double registration, unknown types, duplicate or missing
// components, exhausted capacity, out of range ids) panics.
//
// The runtime is single-threaded: a Coordinator must not be used from more
// than one goroutine at a time.
//
//	c := vulqian.NewCoordinator()
//	vulqian.RegisterComponent[Position](c)
//	vulqian.RegisterComponent[Velocity](c)
//
//	movement := vulqian.RegisterSystem[Movement](c)
//	vulqian.SetSystemSignature[Movement](c, vulqian.NewSignature(
//	    vulqian.TypeOf[Position](c), vulqian.TypeOf[Velocity](c)))
//
//	e := c.CreateEntity()
//	vulqian.AddComponent(c, e, Position{})
//	vulqian.AddComponent(c, e, Velocity{X: 1})
//
//	for _, e := range movement.Entities() {
//	    p := vulqian.GetComponent[Position](c, e)
//	    v := vulqian.GetComponent[Velocity](c, e)
//	    p.X += v.X
//	}
package vulqian
