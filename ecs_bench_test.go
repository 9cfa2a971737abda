package vulqian

import (
	"testing"
)

func BenchmarkCreateDestroyEntity(b *testing.B) {
	c := NewCoordinator()
	RegisterComponent[Position](c)
	RegisterSystem[Everything](c)
	b.ReportAllocs()
	for b.Loop() {
		e := c.CreateEntity()
		c.DestroyEntity(e)
	}
}

func BenchmarkAddRemoveComponent(b *testing.B) {
	c, pos, vel := setupCoordinator(b)
	RegisterSystem[Movement](c)
	SetSystemSignature[Movement](c, NewSignature(pos, vel))
	e := c.CreateEntity()
	AddComponent(c, e, Position{})
	b.ReportAllocs()
	for b.Loop() {
		AddComponent(c, e, Velocity{VX: 1})
		RemoveComponent[Velocity](c, e)
	}
}

func BenchmarkBuilderSet(b *testing.B) {
	c, _, _ := setupCoordinator(b)
	positions := NewBuilder[Position](c)
	e := positions.NewEntity(Position{})
	b.ReportAllocs()
	for b.Loop() {
		positions.Set(e, Position{X: 1})
	}
}

func BenchmarkIterateSystem(b *testing.B) {
	c, pos, vel := setupCoordinator(b)
	sys := RegisterSystem[Movement](c)
	SetSystemSignature[Movement](c, NewSignature(pos, vel))
	for range MaxEntities {
		e := c.CreateEntity()
		AddComponent(c, e, Position{})
		AddComponent(c, e, Velocity{VX: 1, VY: 1})
	}

	b.Run("GetComponent", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			for _, e := range sys.Entities() {
				p := GetComponent[Position](c, e)
				v := GetComponent[Velocity](c, e)
				p.X += v.VX
				p.Y += v.VY
			}
		}
	})

	b.Run("Filter2", func(b *testing.B) {
		query := NewFilter2[Position, Velocity](c, &sys.System)
		b.ReportAllocs()
		for b.Loop() {
			query.Reset()
			for query.Next() {
				p, v := query.Get()
				p.X += v.VX
				p.Y += v.VY
			}
		}
	})

	b.Run("Filter", func(b *testing.B) {
		query := NewFilter[Position](c)
		b.ReportAllocs()
		for b.Loop() {
			query.Reset()
			for query.Next() {
				query.Get().X++
			}
		}
	})
}

func BenchmarkEventBusPublish(b *testing.B) {
	bus := &EventBus{}
	sum := 0
	Subscribe(bus, func(e TestEvent) { sum += e.Value })
	event := TestEvent{Value: 1}
	b.ReportAllocs()
	for b.Loop() {
		Publish(bus, event)
	}
	if sum == 0 {
		b.Fatal("handler never ran")
	}
}

func BenchmarkGetResource(b *testing.B) {
	type clock struct{ T float64 }
	r := &Resources{}
	AddResource(r, &clock{})
	b.ReportAllocs()
	for b.Loop() {
		c, _ := GetResource[clock](r)
		c.T++
	}
}
