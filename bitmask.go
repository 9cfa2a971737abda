package vulqian

import (
	"fmt"
	"strconv"
)

// Signature records which component types are attached to an entity, or
// which ones a system requires. Bit i corresponds to ComponentType i.
type Signature uint32

// NewSignature returns a signature with the bits of all given types set.
func NewSignature(types ...ComponentType) Signature {
	var s Signature
	for _, t := range types {
		s = s.Set(t)
	}
	return s
}

// Set returns s with the bit of t enabled.
func (s Signature) Set(t ComponentType) Signature {
	checkBit(t)
	return s | 1<<t
}

// Unset returns s with the bit of t cleared.
func (s Signature) Unset(t ComponentType) Signature {
	checkBit(t)
	return s &^ (1 << t)
}

// Has reports whether the bit of t is set.
func (s Signature) Has(t ComponentType) bool {
	return t < MaxComponents && s&(1<<t) != 0
}

// Contains reports whether every bit set in required is also set in s.
// This is the system membership test.
func (s Signature) Contains(required Signature) bool {
	return s&required == required
}

// IsEmpty reports whether no bit is set.
func (s Signature) IsEmpty() bool {
	return s == 0
}

// String renders the signature in binary, lowest bit last.
func (s Signature) String() string {
	return "0b" + strconv.FormatUint(uint64(s), 2)
}

func checkBit(t ComponentType) {
	if t >= MaxComponents {
		panic(fmt.Sprintf("ecs: component type %d exceeds maximum (%d)", t, MaxComponents))
	}
}
