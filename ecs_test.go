package vulqian

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// --- Test Components ---
type Position struct{ X, Y float32 }
type Velocity struct{ VX, VY float32 }
type Health struct{ Current, Max int }
type Tag struct{}

// --- Test Systems ---
type Movement struct{ System }
type Tagged struct{ System }
type Everything struct{ System }

func setupCoordinator(t testing.TB) (*Coordinator, ComponentType, ComponentType) {
	t.Helper()
	c := NewCoordinator()
	a := RegisterComponent[Position](c)
	b := RegisterComponent[Velocity](c)
	return c, a, b
}

func TestSystemMembershipScenario(t *testing.T) {
	c, a, b := setupCoordinator(t)
	require.Equal(t, ComponentType(0), a)
	require.Equal(t, ComponentType(1), b)

	sys := RegisterSystem[Movement](c)
	SetSystemSignature[Movement](c, NewSignature(a, b))

	e := c.CreateEntity()
	assert.False(t, sys.Has(e))

	AddComponent(c, e, Position{})
	assert.Equal(t, Signature(0b01), c.Signature(e))
	assert.False(t, sys.Has(e))

	AddComponent(c, e, Velocity{})
	assert.Equal(t, Signature(0b11), c.Signature(e))
	assert.True(t, sys.Has(e))
	assert.Equal(t, []Entity{e}, sys.Entities())

	RemoveComponent[Position](c, e)
	assert.Equal(t, Signature(0b10), c.Signature(e))
	assert.False(t, sys.Has(e))
	assert.Zero(t, sys.Len())
}

func TestEmptySignatureSystemSeesEveryEntity(t *testing.T) {
	c, _, _ := setupCoordinator(t)
	e0 := c.CreateEntity()
	all := RegisterSystem[Everything](c)
	assert.True(t, all.Has(e0), "registration picks up existing entities")

	e1 := c.CreateEntity()
	assert.True(t, all.Has(e1), "new entities match the empty requirement")
	AddComponent(c, e1, Position{})
	assert.True(t, all.Has(e1))

	c.DestroyEntity(e0)
	assert.Equal(t, []Entity{e1}, all.Entities())
}

func TestSetSystemSignatureRebuilds(t *testing.T) {
	c, a, b := setupCoordinator(t)
	e0 := c.CreateEntity()
	AddComponent(c, e0, Position{})
	e1 := c.CreateEntity()
	AddComponent(c, e1, Position{})
	AddComponent(c, e1, Velocity{})

	sys := RegisterSystem[Movement](c)
	SetSystemSignature[Movement](c, NewSignature(a))
	assert.ElementsMatch(t, []Entity{e0, e1}, sys.Entities())

	SetSystemSignature[Movement](c, NewSignature(a, b))
	assert.Equal(t, []Entity{e1}, sys.Entities())
	assert.Equal(t, NewSignature(a, b), sys.Signature())
	assert.Same(t, sys, SystemOf[Movement](c))
}

func TestDestroyEntityCascades(t *testing.T) {
	c, a, b := setupCoordinator(t)
	sys := RegisterSystem[Movement](c)
	SetSystemSignature[Movement](c, NewSignature(a, b))

	e := c.CreateEntity()
	AddComponent(c, e, Position{X: 1})
	AddComponent(c, e, Velocity{VX: 1})
	other := c.CreateEntity()
	AddComponent(c, other, Position{X: 2})

	c.DestroyEntity(e)
	assert.False(t, c.Alive(e))
	assert.False(t, HasComponent[Position](c, e))
	assert.False(t, HasComponent[Velocity](c, e))
	assert.False(t, sys.Has(e))
	assert.Equal(t, 1, ComponentsOf[Position](c).Len())
	assert.Equal(t, Position{X: 2}, *GetComponent[Position](c, other))
	assert.Equal(t, 1, c.Living())
}

func TestCoordinatorPanics(t *testing.T) {
	c, _, _ := setupCoordinator(t)
	e := c.CreateEntity()

	t.Run("unregistered component", func(t *testing.T) {
		assert.Panics(t, func() { AddComponent(c, e, Health{}) })
		assert.Panics(t, func() { TypeOf[Health](c) })
		assert.False(t, HasComponent[Health](c, e))
	})
	t.Run("duplicate component", func(t *testing.T) {
		AddComponent(c, e, Position{})
		assert.Panics(t, func() { AddComponent(c, e, Position{}) })
		assert.Equal(t, Signature(0b01), c.Signature(e), "failed add leaves the signature alone")
	})
	t.Run("missing component", func(t *testing.T) {
		assert.Panics(t, func() { RemoveComponent[Velocity](c, e) })
		assert.Panics(t, func() { GetComponent[Velocity](c, e) })
	})
	t.Run("dead entity", func(t *testing.T) {
		d := c.CreateEntity()
		c.DestroyEntity(d)
		assert.PanicsWithValue(t, "ecs: entity 1 is not alive", func() { AddComponent(c, d, Position{}) })
		assert.Panics(t, func() { c.DestroyEntity(d) })
	})
	t.Run("out of range", func(t *testing.T) {
		assert.PanicsWithValue(t, "ecs: entity 500 out of range (max 500)", func() {
			AddComponent(c, MaxEntities, Position{})
		})
	})
	t.Run("double registration", func(t *testing.T) {
		assert.Panics(t, func() { RegisterComponent[Position](c) })
		RegisterSystem[Tagged](c)
		assert.Panics(t, func() { RegisterSystem[Tagged](c) })
	})
	t.Run("unregistered system", func(t *testing.T) {
		assert.Panics(t, func() { SetSystemSignature[Movement](c, 0) })
		assert.Panics(t, func() { SystemOf[Movement](c) })
	})
}

func TestCapacity(t *testing.T) {
	c := NewCoordinator(WithCapacity(4))
	assert.Equal(t, 4, c.Capacity())
	for range 4 {
		c.CreateEntity()
	}
	assert.Panics(t, func() { c.CreateEntity() })
	c.DestroyEntity(2)
	assert.Equal(t, Entity(2), c.CreateEntity())
}

func TestConsistencyUnderRandomOperations(t *testing.T) {
	c := NewCoordinator(WithCapacity(64))
	pos := RegisterComponent[Position](c)
	vel := RegisterComponent[Velocity](c)
	tag := RegisterComponent[Tag](c)

	movement := RegisterSystem[Movement](c)
	SetSystemSignature[Movement](c, NewSignature(pos, vel))
	tagged := RegisterSystem[Tagged](c)
	SetSystemSignature[Tagged](c, NewSignature(tag))
	all := RegisterSystem[Everything](c)

	rng := rand.New(rand.NewPCG(7, 11))
	var live []Entity
	for range 5000 {
		switch op := rng.IntN(8); {
		case op == 0 && c.Living() < c.Capacity():
			live = append(live, c.CreateEntity())
		case op == 1 && len(live) > 0:
			i := rng.IntN(len(live))
			c.DestroyEntity(live[i])
			live = append(live[:i], live[i+1:]...)
		case len(live) > 0:
			e := live[rng.IntN(len(live))]
			switch rng.IntN(3) {
			case 0:
				toggle(c, e, Position{X: 1})
			case 1:
				toggle(c, e, Velocity{VX: 1})
			case 2:
				toggle(c, e, Tag{})
			}
		}
		checkConsistent(t, c, []*System{&movement.System, &tagged.System, &all.System})
	}
}

func toggle[T any](c *Coordinator, e Entity, v T) {
	if HasComponent[T](c, e) {
		RemoveComponent[T](c, e)
	} else {
		AddComponent(c, e, v)
	}
}

func checkConsistent(t *testing.T, c *Coordinator, systems []*System) {
	t.Helper()
	for i := range Entity(c.Capacity()) {
		alive := c.Alive(i)
		s := c.Signature(i)
		if !alive {
			require.True(t, s.IsEmpty(), "dead entity %d has signature %s", i, s)
		}
		require.Equal(t, s.Has(TypeOf[Position](c)), HasComponent[Position](c, i))
		require.Equal(t, s.Has(TypeOf[Velocity](c)), HasComponent[Velocity](c, i))
		require.Equal(t, s.Has(TypeOf[Tag](c)), HasComponent[Tag](c, i))
		for _, sys := range systems {
			require.Equal(t, alive && s.Contains(sys.Signature()), sys.Has(i),
				"entity %d signature %s system %s", i, s, sys.Signature())
		}
	}
	for _, sys := range systems {
		seen := make(map[Entity]bool, sys.Len())
		for _, e := range sys.Entities() {
			require.False(t, seen[e], "entity %d listed twice", e)
			seen[e] = true
		}
	}
}

func TestCoordinatorEvents(t *testing.T) {
	c, a, _ := setupCoordinator(t)
	var log []string
	var added ComponentAdded
	Subscribe(c.Events(), func(ev EntityCreated) { log = append(log, "created") })
	Subscribe(c.Events(), func(ev EntityDestroyed) {
		assert.False(t, c.Alive(ev.Entity), "published after the entity is gone")
		log = append(log, "destroyed")
	})
	Subscribe(c.Events(), func(ev ComponentAdded) {
		added = ev
		assert.True(t, HasComponent[Position](c, ev.Entity))
		log = append(log, "added")
	})
	Subscribe(c.Events(), func(ev ComponentRemoved) { log = append(log, "removed") })

	e := c.CreateEntity()
	AddComponent(c, e, Position{})
	RemoveComponent[Position](c, e)
	c.DestroyEntity(e)

	assert.Equal(t, []string{"created", "added", "removed", "destroyed"}, log)
	assert.Equal(t, ComponentAdded{Entity: e, Type: a, Signature: 0b01}, added)
}

func TestCoordinatorLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c := NewCoordinator(WithLogger(zap.New(core)))
	RegisterComponent[Position](c)
	RegisterSystem[Movement](c)

	entries := logs.Filter(func(e observer.LoggedEntry) bool { return e.LoggerName == "ecs" }).All()
	require.Len(t, entries, 2)
	assert.Equal(t, "component registered", entries[0].Message)
	assert.Equal(t, "vulqian.Position", entries[0].ContextMap()["type"])
	assert.Equal(t, "system registered", entries[1].Message)
}

func TestResourcesOnCoordinator(t *testing.T) {
	type camera struct{ Fov float32 }
	c := NewCoordinator()
	AddResource(c.Resources(), &camera{Fov: 50})
	got, id := GetResource[camera](c.Resources())
	require.NotNil(t, got)
	assert.Equal(t, float32(50), got.Fov)
	assert.Equal(t, 0, id)
}
