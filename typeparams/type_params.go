package typeparams

import (
	"go/types"
	"strings"

	"github.com/m4gshm/gollections/slice"
)

// TypeParams renders type parameters of a generic type.
type TypeParams struct {
	params     []*types.TypeParam
	typeString func(types.Type) string
}

func New(tparams *types.TypeParamList, typeString func(types.Type) string) TypeParams {
	return TypeParams{params: slice.OfIndexed(tparams.Len(), tparams.At), typeString: typeString}
}

func (p TypeParams) Len() int { return len(p.params) }

func (p TypeParams) Names() []string {
	return slice.Convert(p.params, func(param *types.TypeParam) string { return param.Obj().Name() })
}

// IdentString returns the type arguments part of an instantiated type, like [K, V].
func (p TypeParams) IdentString() string {
	return wrapNonEmpty(strings.Join(p.Names(), ", "))
}

// DeclarationString returns the type parameters declaration, like [K comparable, V any].
// Neighboring parameters with the same constraint share it, like [K, V any].
func (p TypeParams) DeclarationString() string {
	var (
		decl           strings.Builder
		prevConstraint string
	)
	for i, param := range p.params {
		constraint := p.typeString(param.Constraint())
		if i > 0 {
			if constraint != prevConstraint {
				decl.WriteString(" " + prevConstraint)
			}
			decl.WriteString(", ")
		}
		decl.WriteString(param.Obj().Name())
		prevConstraint = constraint
	}
	if len(p.params) > 0 {
		decl.WriteString(" " + prevConstraint)
	}
	return wrapNonEmpty(decl.String())
}

func wrapNonEmpty(s string) string {
	if len(s) == 0 {
		return ""
	}
	return "[" + s + "]"
}
