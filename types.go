package vulqian

// MaxEntities is the default number of entities that can be alive at the
// same time in a Coordinator.
const MaxEntities = 500

// MaxComponents is the number of distinct component types a Coordinator
// can register. It matches the width of Signature.
const MaxComponents = 32

// Entity is a dense identifier in [0, capacity). It carries no data.
type Entity uint32

// ComponentType is the index assigned to a component type at registration.
type ComponentType uint8

// SystemID is the index of a system inside the SystemManager arena.
type SystemID uint16
