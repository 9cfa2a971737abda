package vulqian

import (
	"go.uber.org/zap"
)

// Coordinator owns the entity, component and system managers and keeps
// them consistent: once any of its operations returns, the signature of
// every live entity matches its attached components, and every system
// contains exactly the live entities whose signature contains its
// requirement.
type Coordinator struct {
	entities   *EntityManager
	components *ComponentManager
	systems    *SystemManager
	events     *EventBus
	resources  *Resources
	log        *zap.Logger
}

// Option configures a Coordinator.
type Option func(*options)

type options struct {
	capacity int
	logger   *zap.Logger
}

// WithCapacity sets the maximum number of simultaneous entities.
// The default is MaxEntities.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithLogger sets the logger used for registration and lifecycle messages.
// The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewCoordinator creates a Coordinator with empty managers.
func NewCoordinator(opts ...Option) *Coordinator {
	o := options{capacity: MaxEntities, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Coordinator{
		entities:   NewEntityManager(o.capacity),
		components: NewComponentManager(o.capacity),
		systems:    NewSystemManager(o.capacity),
		events:     &EventBus{},
		resources:  &Resources{},
		log:        o.logger.Named("ecs"),
	}
	c.log.Debug("coordinator created", zap.Int("capacity", o.capacity))
	return c
}

// CreateEntity allocates an entity with an empty signature. It panics when
// the capacity is exhausted.
func (c *Coordinator) CreateEntity() Entity {
	e := c.entities.CreateEntity()
	c.systems.EntitySignatureChanged(e, 0)
	c.log.Debug("entity created", zap.Uint32("entity", uint32(e)))
	Publish(c.events, EntityCreated{Entity: e})
	return e
}

// DestroyEntity detaches every component of e, removes it from every
// system and returns its id to the free pool.
func (c *Coordinator) DestroyEntity(e Entity) {
	c.entities.DestroyEntity(e)
	c.components.OnEntityDestroyed(e)
	c.systems.OnEntityDestroyed(e)
	c.log.Debug("entity destroyed", zap.Uint32("entity", uint32(e)))
	Publish(c.events, EntityDestroyed{Entity: e})
}

// Signature returns the current signature of e.
func (c *Coordinator) Signature(e Entity) Signature {
	return c.entities.Signature(e)
}

// Alive reports whether e is a live entity.
func (c *Coordinator) Alive(e Entity) bool {
	return c.entities.Alive(e)
}

// Living returns the number of live entities.
func (c *Coordinator) Living() int {
	return c.entities.Living()
}

// Capacity returns the maximum number of simultaneous entities.
func (c *Coordinator) Capacity() int {
	return c.entities.Capacity()
}

// Events returns the bus lifecycle events are published on.
func (c *Coordinator) Events() *EventBus {
	return c.events
}

// Resources returns the Coordinator-wide resource store.
func (c *Coordinator) Resources() *Resources {
	return c.resources
}

// updateSignature writes s for e and propagates it into every system.
func (c *Coordinator) updateSignature(e Entity, s Signature) {
	c.entities.SetSignature(e, s)
	c.systems.EntitySignatureChanged(e, s)
}
