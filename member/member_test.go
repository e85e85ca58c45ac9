package member

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Age   int
	name  string
	total int
	tags  []string
}

func (p *person) Name() *string        { return &p.name }
func (p *person) SetName(name *string) { p.name = *name }
func (p *person) Total() int           { return p.total }
func (p *person) SetTotal(total int)   { p.total = total }
func (p *person) Tags() *[]string      { return &p.tags }

var (
	personAge   = NewPtr("age", func(p *person) *int { return &p.Age })
	personName  = NewRef("name", (*person).Name, (*person).SetName)
	personTotal = NewVal("total", (*person).Total, (*person).SetTotal)
)

func Test_PtrMember(t *testing.T) {
	p := &person{}

	require.NoError(t, personAge.Set(p, 30))

	age, err := personAge.GetCopy(p)
	require.NoError(t, err)
	assert.Equal(t, 30, age)

	ref, err := personAge.Get(p)
	require.NoError(t, err)
	assert.Equal(t, 30, *ref)
	assert.Same(t, &p.Age, ref)

	mut, err := personAge.GetRef(p)
	require.NoError(t, err)
	*mut = 31
	assert.Equal(t, 31, personAge.MustGetCopy(p))

	ptr, err := personAge.Ptr()
	require.NoError(t, err)
	assert.Same(t, &p.Age, ptr(p))
}

func Test_RefMember(t *testing.T) {
	p := &person{}

	require.NoError(t, personName.Set(p, "Ada"))

	ref, err := personName.Get(p)
	require.NoError(t, err)
	assert.Equal(t, "Ada", *ref)

	name, err := personName.GetCopy(p)
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)
	assert.Equal(t, "Ada", p.name)
}

func Test_RefGetterPrecedesPtr(t *testing.T) {
	p := &person{Age: 1}
	other := 100
	m := NewPtr("age", func(p *person) *int { return &p.Age })
	m.refGetter = func(*person) *int { return &other }

	ref, err := m.Get(p)
	require.NoError(t, err)
	assert.Same(t, &other, ref)
	assert.Equal(t, 100, m.MustGetCopy(p))
}

func Test_RefGetterNilResult(t *testing.T) {
	m := NewRefGetter("name", func(*person) *string { return nil })

	name, err := m.GetCopy(&person{})
	assert.ErrorIs(t, err, ErrNoReadableValue)
	assert.Contains(t, err.Error(), "nil reference of member 'name'")
	assert.Equal(t, "", name)
	assert.Panics(t, func() { m.MustGetCopy(&person{}) })
}

func Test_ValMember(t *testing.T) {
	p := &person{}

	_, err := personTotal.Get(p)
	assert.ErrorIs(t, err, ErrNoReadableConstRef)

	require.NoError(t, personTotal.Set(p, 7))
	total, err := personTotal.GetCopy(p)
	require.NoError(t, err)
	assert.Equal(t, 7, total)

	_, err = personTotal.GetRef(p)
	assert.ErrorIs(t, err, ErrNoReadableMutableRef)
}

func Test_MutRefGetter(t *testing.T) {
	m := NewRef("tags", (*person).Tags, nil)
	assert.False(t, m.CanGetRef())

	_, err := m.GetRef(&person{})
	assert.ErrorIs(t, err, ErrNoReadableMutableRef)

	same := m.WithMutRefGetter((*person).Tags)
	assert.Same(t, m, same)
	assert.True(t, m.CanGetRef())

	p := &person{}
	ref, err := m.GetRef(p)
	require.NoError(t, err)
	*ref = append(*ref, "go")

	tags, err := m.GetCopy(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, tags)
}

func Test_MutRefGetterLastWins(t *testing.T) {
	first, second := 1, 2
	m := NewValGetter("total", (*person).Total).
		WithMutRefGetter(func(*person) *int { return &first }).
		WithMutRefGetter(func(*person) *int { return &second })

	ref, err := m.GetRef(&person{})
	require.NoError(t, err)
	assert.Same(t, &second, ref)
}

func Test_MutRefGetterPrecedesPtr(t *testing.T) {
	other := 5
	m := NewPtr("age", func(p *person) *int { return &p.Age }).WithMutRefGetter(func(*person) *int { return &other })

	ref, err := m.GetRef(&person{})
	require.NoError(t, err)
	assert.Same(t, &other, ref)
}

func Test_ReadOnly(t *testing.T) {
	p := &person{total: 3}
	for _, m := range []*Member[person, int]{
		NewValGetter("total", (*person).Total),
		NewRefGetter("total", func(p *person) *int { return &p.total }),
	} {
		assert.True(t, m.HasGetter())
		assert.False(t, m.HasSetter())

		err := m.Set(p, 1)
		assert.ErrorIs(t, err, ErrNotWritable)
		assert.Equal(t, 3, p.total)
		assert.Equal(t, 3, m.MustGetCopy(p))
	}
}

func Test_WriteOnly(t *testing.T) {
	for _, m := range []*Member[person, int]{
		NewValSetter("total", (*person).SetTotal),
		NewRefSetter("total", func(p *person, v *int) { p.total = *v }),
	} {
		p := &person{}
		require.NoError(t, m.Set(p, 9))
		assert.Equal(t, 9, p.total)

		_, err := m.Get(p)
		assert.ErrorIs(t, err, ErrNoReadableConstRef)
		_, err = m.GetCopy(p)
		assert.ErrorIs(t, err, ErrNoReadableValue)
		_, err = m.GetRef(p)
		assert.ErrorIs(t, err, ErrNoReadableMutableRef)
	}
}

func Test_NoDirectPointer(t *testing.T) {
	_, err := personName.Ptr()
	assert.ErrorIs(t, err, ErrNoDirectPointer)

	_, err = personTotal.Ptr()
	assert.ErrorIs(t, err, ErrNoDirectPointer)

	assert.Panics(t, func() { personTotal.MustPtr() })
}

func Test_ErrorContainsName(t *testing.T) {
	_, err := personTotal.Get(&person{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoReadableConstRef))
	assert.Contains(t, err.Error(), "member 'total'")
}

func Test_MustPanics(t *testing.T) {
	m := NewValSetter("total", (*person).SetTotal)
	p := &person{}

	assert.PanicsWithError(t, "member 'total': "+ErrNoReadableValue.Error(), func() { m.MustGetCopy(p) })
	assert.Panics(t, func() { m.MustGet(p) })
	assert.Panics(t, func() { m.MustGetRef(p) })
	assert.NotPanics(t, func() { m.MustSet(p, 1) })
	assert.Panics(t, func() { NewValGetter("total", (*person).Total).MustSet(p, 1) })
}

func Test_Predicates(t *testing.T) {
	assert.Equal(t, KindPtr, personAge.Kind())
	assert.True(t, personAge.HasPtr())
	assert.True(t, personAge.CanGetConstRef())
	assert.True(t, personAge.CanGetRef())
	assert.False(t, personAge.HasGetter())
	assert.False(t, personAge.HasSetter())

	assert.Equal(t, KindRef, personName.Kind())
	assert.False(t, personName.HasPtr())
	assert.True(t, personName.HasRefGetter())
	assert.True(t, personName.HasRefSetter())
	assert.False(t, personName.HasValGetter())
	assert.False(t, personName.HasValSetter())
	assert.True(t, personName.CanGetConstRef())
	assert.False(t, personName.CanGetRef())

	assert.Equal(t, KindVal, personTotal.Kind())
	assert.True(t, personTotal.HasValGetter())
	assert.True(t, personTotal.HasValSetter())
	assert.False(t, personTotal.HasRefGetter())
	assert.False(t, personTotal.CanGetConstRef())
	assert.False(t, personTotal.HasMutRefGetter())
}

func Test_Metadata(t *testing.T) {
	assert.Equal(t, "name", personName.Name())
	assert.Equal(t, "string", personName.Type().String())
	assert.Equal(t, "person", personName.OwnerType().Name())
	assert.Equal(t, "ptr", KindPtr.String())
	assert.Equal(t, "ref", KindRef.String())
	assert.Equal(t, "val", KindVal.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func Test_NewPtrNil(t *testing.T) {
	m := NewPtr[person, int]("age", nil)
	assert.Equal(t, Kind(0), m.Kind())
	assert.False(t, m.HasPtr())

	_, err := m.Ptr()
	assert.ErrorIs(t, err, ErrNoDirectPointer)
	assert.ErrorIs(t, m.Set(&person{}, 1), ErrNotWritable)
}

func Test_New(t *testing.T) {
	m := New[person, int]("age", func(p *person) *int { return &p.Age })
	assert.Equal(t, KindPtr, m.Kind())
	assert.True(t, m.Assignable())
}
