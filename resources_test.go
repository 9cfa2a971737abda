package vulqian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResources(t *testing.T) {
	type testStruct1 struct{ N int }
	type testStruct2 struct{}

	t.Run("Add and Get", func(t *testing.T) {
		r := &Resources{}
		res1 := &testStruct1{}
		assert.Equal(t, 0, r.Add(res1))
		assert.Same(t, res1, r.Get(0))
		assert.Nil(t, r.Get(5))
	})

	t.Run("Has", func(t *testing.T) {
		r := &Resources{}
		r.Add(&testStruct1{})
		assert.True(t, r.Has(0))
		assert.False(t, r.Has(1))
		assert.False(t, r.Has(-1))
	})

	t.Run("Add same type panics", func(t *testing.T) {
		r := &Resources{}
		r.Add(&testStruct1{})
		assert.Panics(t, func() { r.Add(&testStruct1{}) })
		assert.Panics(t, func() { r.Add(nil) })
	})

	t.Run("Remove reuses ids", func(t *testing.T) {
		r := &Resources{}
		r.Add(&testStruct1{})
		id := r.Add(&testStruct2{})
		r.Remove(0)
		assert.False(t, r.Has(0))
		assert.Equal(t, 1, r.Len())
		assert.Equal(t, 0, r.Add(&testStruct1{}))
		assert.True(t, r.Has(id))
		r.Remove(42)
	})

	t.Run("Clear", func(t *testing.T) {
		r := &Resources{}
		r.Add(&testStruct1{})
		r.Add(&testStruct2{})
		r.Clear()
		assert.Zero(t, r.Len())
		assert.False(t, r.Has(0))
		ok, _ := HasResource[testStruct1](r)
		assert.False(t, ok)
	})

	t.Run("Generic helpers", func(t *testing.T) {
		r := &Resources{}
		id := AddResource(r, &testStruct1{N: 3})
		ok, got := HasResource[testStruct1](r)
		assert.True(t, ok)
		assert.Equal(t, id, got)

		v, vid := GetResource[testStruct1](r)
		assert.Equal(t, 3, v.N)
		assert.Equal(t, id, vid)

		missing, mid := GetResource[testStruct2](r)
		assert.Nil(t, missing)
		assert.Equal(t, -1, mid)
		assert.Panics(t, func() { AddResource[testStruct2](r, nil) })
	})
}
