package vulqian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	c, a, b := setupCoordinator(t)
	sys := RegisterSystem[Movement](c)
	SetSystemSignature[Movement](c, NewSignature(a, b))

	positions := NewBuilder[Position](c)
	velocities := NewBuilder[Velocity](c)
	assert.Equal(t, a, positions.Type())

	t.Run("NewEntity", func(t *testing.T) {
		e := positions.NewEntity(Position{X: 4})
		assert.True(t, c.Alive(e))
		assert.Equal(t, NewSignature(a), c.Signature(e))
		assert.Equal(t, Position{X: 4}, *positions.Get(e))
		assert.Nil(t, velocities.Get(e))
	})

	t.Run("NewEntities", func(t *testing.T) {
		ents := positions.NewEntities(3, Position{Y: 1})
		require.Len(t, ents, 3)
		for _, e := range ents {
			assert.Equal(t, float32(1), positions.Get(e).Y)
		}
		assert.Nil(t, positions.NewEntities(0, Position{}))
	})

	t.Run("Set updates membership", func(t *testing.T) {
		e := positions.NewEntity(Position{})
		velocities.Set(e, Velocity{VX: 1})
		assert.True(t, sys.Has(e))

		velocities.Set(e, Velocity{VX: 2})
		assert.Equal(t, float32(2), GetComponent[Velocity](c, e).VX, "Set overwrites in place")
		assert.Equal(t, NewSignature(a, b), c.Signature(e))
	})

	t.Run("Remove", func(t *testing.T) {
		e := positions.NewEntity(Position{})
		velocities.Set(e, Velocity{})
		assert.True(t, velocities.Remove(e))
		assert.False(t, velocities.Remove(e))
		assert.False(t, sys.Has(e))
		assert.Equal(t, NewSignature(a), c.Signature(e))
	})

	t.Run("Set on dead entity panics", func(t *testing.T) {
		e := c.CreateEntity()
		c.DestroyEntity(e)
		assert.Panics(t, func() { velocities.Set(e, Velocity{}) })
	})

	t.Run("unregistered type panics", func(t *testing.T) {
		assert.Panics(t, func() { NewBuilder[Health](c) })
	})
}
