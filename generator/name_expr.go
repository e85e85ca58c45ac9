package generator

import (
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
)

const DefaultNameExpr = `type + field`

// NameExpr computes names of generated declarations.
// The expression has access to the 'type' (struct type name), 'field' (capitalized field name) and 'name' (member name) variables.
type NameExpr struct {
	source  string
	program *vm.Program
}

func NewNameExpr(source string) (*NameExpr, error) {
	program, err := expr.Compile(source, expr.Env(nameEnv("", "", "")), expr.AsKind(reflect.String))
	if err != nil {
		return nil, errors.Wrapf(err, "compile name expression '%s'", source)
	}
	return &NameExpr{source: source, program: program}, nil
}

func (e *NameExpr) Eval(typeName, fieldName, memberName string) (string, error) {
	result, err := expr.Run(e.program, nameEnv(typeName, fieldName, memberName))
	if err != nil {
		return "", errors.Wrapf(err, "evaluate name expression '%s'", e.source)
	}
	name, _ := result.(string)
	if len(name) == 0 {
		return "", errors.Errorf("empty result of name expression '%s', field %s", e.source, fieldName)
	}
	return name, nil
}

func nameEnv(typeName, fieldName, memberName string) map[string]any {
	return map[string]any{
		"type":  typeName,
		"field": fieldName,
		"name":  memberName,
	}
}
