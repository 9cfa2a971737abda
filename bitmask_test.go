package vulqian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	s := NewSignature(0, 3)
	assert.True(t, s.Has(0))
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(1))
	assert.Equal(t, "0b1001", s.String())

	s = s.Unset(0)
	assert.Equal(t, Signature(0b1000), s)
	assert.False(t, s.IsEmpty())
	assert.True(t, s.Unset(3).IsEmpty())
	assert.False(t, s.Has(MaxComponents))
}

func TestSignatureContains(t *testing.T) {
	tests := []struct {
		name     string
		s        Signature
		required Signature
		want     bool
	}{
		{"empty requirement", 0, 0, true},
		{"empty requirement matches anything", 0b110, 0, true},
		{"exact", 0b11, 0b11, true},
		{"superset", 0b111, 0b101, true},
		{"missing bit", 0b01, 0b11, false},
		{"disjoint", 0b10, 0b01, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.Contains(tt.required))
		})
	}
}

func TestSignatureBitOutOfRange(t *testing.T) {
	var s Signature
	assert.Panics(t, func() { s.Set(MaxComponents) })
	assert.Panics(t, func() { s.Unset(255) })
	assert.NotPanics(t, func() { s.Set(MaxComponents - 1) })
}
