package member

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guarded struct {
	mu    sync.Mutex
	value int
}

type guardedRef struct {
	mu    *sync.Mutex
	value int
}

type handle struct {
	id int
}

func (handle) NotAssignable() {}

type counters struct {
	guarded [2]guarded
}

type holder struct {
	Guarded guarded
	Handle  handle
	Ref     guardedRef
}

type handleRef struct {
	handle *handle
}

func Test_Assignable(t *testing.T) {
	assert.True(t, Assignable[int]())
	assert.True(t, Assignable[string]())
	assert.True(t, Assignable[*sync.Mutex]())
	assert.True(t, Assignable[[]sync.Mutex]())
	assert.True(t, Assignable[map[string]sync.Mutex]())
	assert.True(t, Assignable[sync.Locker]())
	assert.True(t, Assignable[guardedRef]())
	assert.True(t, Assignable[[0]sync.Mutex]())
	assert.True(t, Assignable[*handle]())
	assert.True(t, Assignable[handleRef]())

	assert.False(t, Assignable[sync.Mutex]())
	assert.False(t, Assignable[sync.RWMutex]())
	assert.False(t, Assignable[guarded]())
	assert.False(t, Assignable[counters]())
	assert.False(t, Assignable[handle]())
}

func Test_NotAssignablePtrMember(t *testing.T) {
	m := NewPtr("Guarded", func(h *holder) *guarded { return &h.Guarded })
	assert.False(t, m.Assignable())

	h := &holder{}
	h.Guarded.value = 1

	err := m.Set(h, guarded{value: 2})
	assert.ErrorIs(t, err, ErrNotAssignable)
	assert.Contains(t, err.Error(), "Guarded")
	assert.Equal(t, 1, h.Guarded.value)

	ref, err := m.Get(h)
	require.NoError(t, err)
	assert.Equal(t, 1, ref.value)
}

func Test_NotAssignableMarker(t *testing.T) {
	m := NewPtr("Handle", func(h *holder) *handle { return &h.Handle })

	err := m.Set(&holder{}, handle{id: 1})
	assert.ErrorIs(t, err, ErrNotAssignable)
}

func Test_NotAssignableWithSetter(t *testing.T) {
	m := NewRefSetter("Guarded", func(h *holder, g *guarded) { h.Guarded.value = g.value })

	h := &holder{}
	require.NoError(t, m.Set(h, guarded{value: 3}))
	assert.Equal(t, 3, h.Guarded.value)
}

func Test_AssignableByPointer(t *testing.T) {
	m := NewPtr("Ref", func(h *holder) *guardedRef { return &h.Ref })

	h := &holder{}
	mu := &sync.Mutex{}
	require.NoError(t, m.Set(h, guardedRef{mu: mu, value: 4}))
	assert.Same(t, mu, h.Ref.mu)
}

func Test_AssignableMarkedPointer(t *testing.T) {
	m := NewPtr("handle", func(r *handleRef) **handle { return &r.handle })
	assert.True(t, m.Assignable())

	h := &handle{id: 5}
	r := &handleRef{}
	require.NoError(t, m.Set(r, h))
	assert.Same(t, h, r.handle)
}
