// Package member describes how to read and write one field of a struct type.
//
// A Member is built from a direct field accessor (the field address), from a pair of
// reference getter/setter functions or from a pair of value getter/setter functions.
// Accessor functions are preferred over the field accessor.
package member

import (
	"reflect"

	"github.com/pkg/errors"
)

// Kind is the construction form of a Member.
type Kind int

const (
	KindPtr Kind = iota + 1
	KindRef
	KindVal
)

func (k Kind) String() string {
	switch k {
	case KindPtr:
		return "ptr"
	case KindRef:
		return "ref"
	case KindVal:
		return "val"
	default:
		return "unknown"
	}
}

// Member is a field of the C struct type with the T type.
type Member[C, T any] struct {
	name string
	kind Kind

	ptr func(*C) *T

	refGetter func(*C) *T
	refSetter func(*C, *T)

	valGetter func(*C) T
	valSetter func(*C, T)

	mutRefGetter func(*C) *T

	assignable bool
}

// New is NewPtr with explicitly spelled type arguments in mind.
func New[C, T any](name string, ptr func(*C) *T) *Member[C, T] {
	return NewPtr(name, ptr)
}

// NewPtr makes a member that accesses the field directly, ptr must return the field address.
// A nil ptr leaves the member without any access strategy and without a kind.
func NewPtr[C, T any](name string, ptr func(*C) *T) *Member[C, T] {
	m := &Member[C, T]{name: name, ptr: ptr, assignable: Assignable[T]()}
	if ptr != nil {
		m.kind = KindPtr
	}
	return m
}

// NewRef makes a member based on a getter that returns the field reference and a setter that borrows the value.
// The getter result must not be modified by callers.
func NewRef[C, T any](name string, get func(*C) *T, set func(*C, *T)) *Member[C, T] {
	return &Member[C, T]{name: name, kind: KindRef, refGetter: get, refSetter: set, assignable: Assignable[T]()}
}

// NewVal makes a member based on a getter and a setter that transfer the field by value.
func NewVal[C, T any](name string, get func(*C) T, set func(*C, T)) *Member[C, T] {
	return &Member[C, T]{name: name, kind: KindVal, valGetter: get, valSetter: set, assignable: Assignable[T]()}
}

func NewRefGetter[C, T any](name string, get func(*C) *T) *Member[C, T] {
	return NewRef[C, T](name, get, nil)
}

func NewValGetter[C, T any](name string, get func(*C) T) *Member[C, T] {
	return NewVal[C, T](name, get, nil)
}

func NewRefSetter[C, T any](name string, set func(*C, *T)) *Member[C, T] {
	return NewRef[C, T](name, nil, set)
}

func NewValSetter[C, T any](name string, set func(*C, T)) *Member[C, T] {
	return NewVal[C, T](name, nil, set)
}

// WithMutRefGetter attaches a getter of the modifiable field reference, a previous one is replaced.
func (m *Member[C, T]) WithMutRefGetter(get func(*C) *T) *Member[C, T] {
	m.mutRefGetter = get
	return m
}

// Get returns the field reference, the result must not be modified.
func (m *Member[C, T]) Get(c *C) (*T, error) {
	if m.refGetter != nil {
		return m.refGetter(c), nil
	} else if m.ptr != nil {
		return m.ptr(c), nil
	}
	return nil, m.err(ErrNoReadableConstRef)
}

// GetCopy returns the field value.
func (m *Member[C, T]) GetCopy(c *C) (T, error) {
	var no T
	if m.refGetter != nil {
		if ref := m.refGetter(c); ref != nil {
			return *ref, nil
		}
		return no, errors.WithMessagef(ErrNoReadableValue, "nil reference of member '%s'", m.name)
	} else if m.valGetter != nil {
		return m.valGetter(c), nil
	} else if m.ptr != nil {
		return *m.ptr(c), nil
	}
	return no, m.err(ErrNoReadableValue)
}

// GetRef returns the modifiable field reference.
func (m *Member[C, T]) GetRef(c *C) (*T, error) {
	if m.mutRefGetter != nil {
		return m.mutRefGetter(c), nil
	} else if m.ptr != nil {
		return m.ptr(c), nil
	}
	return nil, m.err(ErrNoReadableMutableRef)
}

// Ptr returns the direct field accessor.
func (m *Member[C, T]) Ptr() (func(*C) *T, error) {
	if m.ptr != nil {
		return m.ptr, nil
	}
	return nil, m.err(ErrNoDirectPointer)
}

// Set writes the value to the field of c.
func (m *Member[C, T]) Set(c *C, value T) error {
	if m.refSetter != nil {
		m.refSetter(c, &value)
		return nil
	} else if m.valSetter != nil {
		m.valSetter(c, value)
		return nil
	} else if m.ptr != nil {
		if !m.assignable {
			return errors.WithMessagef(ErrNotAssignable, "provide a reference setter for member '%s'", m.name)
		}
		*m.ptr(c) = value
		return nil
	}
	return m.err(ErrNotWritable)
}

func (m *Member[C, T]) MustGet(c *C) *T {
	return must(m.Get(c))
}

func (m *Member[C, T]) MustGetCopy(c *C) T {
	return must(m.GetCopy(c))
}

func (m *Member[C, T]) MustGetRef(c *C) *T {
	return must(m.GetRef(c))
}

func (m *Member[C, T]) MustPtr() func(*C) *T {
	return must(m.Ptr())
}

func (m *Member[C, T]) MustSet(c *C, value T) {
	if err := m.Set(c, value); err != nil {
		panic(err)
	}
}

func (m *Member[C, T]) Name() string { return m.name }
func (m *Member[C, T]) Kind() Kind   { return m.kind }

// Type returns the field type.
func (m *Member[C, T]) Type() reflect.Type { return reflect.TypeFor[T]() }

// OwnerType returns the struct type the field belongs to.
func (m *Member[C, T]) OwnerType() reflect.Type { return reflect.TypeFor[C]() }

// Assignable reports whether the field can be written through the direct field accessor.
func (m *Member[C, T]) Assignable() bool { return m.assignable }

func (m *Member[C, T]) HasPtr() bool          { return m.ptr != nil }
func (m *Member[C, T]) HasRefGetter() bool    { return m.refGetter != nil }
func (m *Member[C, T]) HasValGetter() bool    { return m.valGetter != nil }
func (m *Member[C, T]) HasRefSetter() bool    { return m.refSetter != nil }
func (m *Member[C, T]) HasValSetter() bool    { return m.valSetter != nil }
func (m *Member[C, T]) HasMutRefGetter() bool { return m.mutRefGetter != nil }
func (m *Member[C, T]) HasGetter() bool       { return m.HasRefGetter() || m.HasValGetter() }
func (m *Member[C, T]) HasSetter() bool       { return m.HasRefSetter() || m.HasValSetter() }

// CanGetConstRef reports whether Get is supported.
func (m *Member[C, T]) CanGetConstRef() bool { return m.HasPtr() || m.HasRefGetter() }

// CanGetRef reports whether GetRef is supported.
func (m *Member[C, T]) CanGetRef() bool { return m.HasPtr() || m.HasMutRefGetter() }

func (m *Member[C, T]) err(cause error) error {
	return errors.WithMessagef(cause, "member '%s'", m.name)
}

func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
