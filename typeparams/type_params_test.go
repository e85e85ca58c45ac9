package typeparams

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTypeParams(constraints ...types.Type) *types.TypeParamList {
	names := []string{"K", "V", "E"}
	params := make([]*types.TypeParam, len(constraints))
	for i, constraint := range constraints {
		params[i] = types.NewTypeParam(types.NewTypeName(0, nil, names[i], nil), constraint)
	}
	named := types.NewNamed(types.NewTypeName(0, nil, "Box", nil), types.NewStruct(nil, nil), nil)
	named.SetTypeParams(params)
	return named.TypeParams()
}

func typeString(typ types.Type) string {
	return types.TypeString(typ, nil)
}

func Test_Strings(t *testing.T) {
	anyType := types.Universe.Lookup("any").Type()
	comparable := types.Universe.Lookup("comparable").Type()

	params := New(newTypeParams(comparable, anyType, anyType), typeString)
	assert.Equal(t, 3, params.Len())
	assert.Equal(t, []string{"K", "V", "E"}, params.Names())
	assert.Equal(t, "[K, V, E]", params.IdentString())
	assert.Equal(t, "[K comparable, V, E any]", params.DeclarationString())
}

func Test_Empty(t *testing.T) {
	params := New(nil, typeString)
	assert.Equal(t, 0, params.Len())
	assert.Equal(t, "", params.IdentString())
	assert.Equal(t, "", params.DeclarationString())
}
