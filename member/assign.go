package member

import (
	"reflect"
	"sync"
)

// NotAssignableMarker is implemented by types that must be written through a setter only.
type NotAssignableMarker interface {
	NotAssignable()
}

var (
	lockerType        = reflect.TypeFor[sync.Locker]()
	notAssignableType = reflect.TypeFor[NotAssignableMarker]()
)

// Assignable reports whether values of T can be written by plain assignment.
// A type is not assignable when it is marked by NotAssignableMarker or holds a lock by value
// (the same rule the copylocks vet check uses).
func Assignable[T any]() bool {
	return assignable(reflect.TypeFor[T](), map[reflect.Type]struct{}{})
}

func assignable(typ reflect.Type, visited map[reflect.Type]struct{}) bool {
	if _, ok := visited[typ]; ok {
		return true
	}
	visited[typ] = struct{}{}

	if typ.Kind() == reflect.Interface {
		return true
	} else if typ.Kind() == reflect.Pointer {
		return true
	} else if typ.Implements(notAssignableType) || reflect.PointerTo(typ).Implements(lockerType) {
		return false
	}
	switch typ.Kind() {
	case reflect.Struct:
		for i := range typ.NumField() {
			if !assignable(typ.Field(i).Type, visited) {
				return false
			}
		}
	case reflect.Array:
		if typ.Len() > 0 {
			return assignable(typ.Elem(), visited)
		}
	}
	return true
}
