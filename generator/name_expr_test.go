package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NameExprDefault(t *testing.T) {
	e, err := NewNameExpr(DefaultNameExpr)
	require.NoError(t, err)

	name, err := e.Eval("Person", "Age", "age")
	require.NoError(t, err)
	assert.Equal(t, "PersonAge", name)
}

func Test_NameExprFunctions(t *testing.T) {
	e, err := NewNameExpr(`"Member" + upper(name)`)
	require.NoError(t, err)

	name, err := e.Eval("Person", "Age", "age")
	require.NoError(t, err)
	assert.Equal(t, "MemberAGE", name)
}

func Test_NameExprNotString(t *testing.T) {
	_, err := NewNameExpr(`1 + 2`)
	assert.Error(t, err)
}

func Test_NameExprEmpty(t *testing.T) {
	e, err := NewNameExpr(`name`)
	require.NoError(t, err)

	_, err = e.Eval("Person", "Age", "")
	assert.Error(t, err)
}
