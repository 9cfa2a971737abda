package vulqian

// EntityCreated is published after CreateEntity.
type EntityCreated struct {
	Entity Entity
}

// EntityDestroyed is published after DestroyEntity has cleared every store
// and system.
type EntityDestroyed struct {
	Entity Entity
}

// ComponentAdded is published after a component is attached and system
// membership is updated.
type ComponentAdded struct {
	Entity    Entity
	Type      ComponentType
	Signature Signature // signature after the change
}

// ComponentRemoved is published after a component is detached and system
// membership is updated.
type ComponentRemoved struct {
	Entity    Entity
	Type      ComponentType
	Signature Signature // signature after the change
}
