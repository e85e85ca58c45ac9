package member

import "github.com/pkg/errors"

var (
	ErrNoReadableConstRef   = errors.New("cannot return const ref to member: no getter or member pointer set")
	ErrNoReadableValue      = errors.New("cannot return copy of member: no getter or member pointer set")
	ErrNoReadableMutableRef = errors.New("cannot return ref to member: no mutable getter or member pointer set")
	ErrNoDirectPointer      = errors.New("cannot get pointer to member: it wasn't set")
	ErrNotWritable          = errors.New("cannot access member: no setter or member pointer set")
	ErrNotAssignable        = errors.New("member not assignable")
)
