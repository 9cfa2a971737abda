package vulqian

// Builder caches the type and store of component T so hot loops skip the
// type lookup that AddComponent and GetComponent perform on every call.
// Mutations through a Builder keep signatures and systems consistent the
// same way the Coordinator functions do.
type Builder[T any] struct {
	c      *Coordinator
	store  *ComponentStore[T]
	compID ComponentType
}

// NewBuilder returns a Builder for T. It panics if T is not registered.
func NewBuilder[T any](c *Coordinator) *Builder[T] {
	return &Builder[T]{
		c:      c,
		store:  storeOf[T](c.components),
		compID: componentTypeOf[T](c.components),
	}
}

// Type returns the ComponentType of T.
func (b *Builder[T]) Type() ComponentType {
	return b.compID
}

// NewEntity creates an entity carrying v.
func (b *Builder[T]) NewEntity(v T) Entity {
	e := b.c.CreateEntity()
	b.add(e, v)
	return e
}

// NewEntities creates count entities carrying v and returns them.
func (b *Builder[T]) NewEntities(count int, v T) []Entity {
	if count == 0 {
		return nil
	}
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = b.NewEntity(v)
	}
	return ents
}

// Get returns the T of e, or nil if e has none.
func (b *Builder[T]) Get(e Entity) *T {
	if !b.store.Has(e) {
		return nil
	}
	return b.store.Get(e)
}

// Set overwrites the T of e, attaching it first if e has none.
func (b *Builder[T]) Set(e Entity, v T) {
	if b.store.Has(e) {
		*b.store.Get(e) = v
		return
	}
	b.c.checkAlive(e)
	b.add(e, v)
}

// Remove detaches the T of e if present and reports whether it was.
func (b *Builder[T]) Remove(e Entity) bool {
	if !b.store.Has(e) {
		return false
	}
	b.store.Remove(e)
	s := b.c.entities.Signature(e).Unset(b.compID)
	b.c.updateSignature(e, s)
	Publish(b.c.events, ComponentRemoved{Entity: e, Type: b.compID, Signature: s})
	return true
}

func (b *Builder[T]) add(e Entity, v T) {
	b.store.Insert(e, v)
	s := b.c.entities.Signature(e).Set(b.compID)
	b.c.updateSignature(e, s)
	Publish(b.c.events, ComponentAdded{Entity: e, Type: b.compID, Signature: s})
}
