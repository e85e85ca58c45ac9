package generator

import (
	"go/types"
	"strconv"
	"strings"

	"github.com/m4gshm/gollections/op"
	"github.com/pkg/errors"

	"github.com/m4gshm/fieldmeta/logger"
	"github.com/m4gshm/fieldmeta/model/struc"
	"github.com/m4gshm/fieldmeta/typeparams"
	"github.com/m4gshm/fieldmeta/unique"
)

const (
	MemberPkgPath = "github.com/m4gshm/fieldmeta/member"
	memberPkgName = "member"
)

// Access enables member strategies.
type Access struct {
	Ptr, Ref, Val, Mut bool
}

var AllAccess = Access{Ptr: true, Ref: true, Val: true, Mut: true}

type MemberConfig struct {
	GetterPrefix string
	SetterPrefix string
	MutSuffix    string
	NameTag      string
	Access       Access
	VarName      *NameExpr
	Export       bool
	Nolint       bool
}

// GenerateMembers adds a member declaration per field of the model, returns the names of added declarations.
func (g *Generator) GenerateMembers(model *struc.Model, config MemberConfig) ([]string, error) {
	pkgName, err := g.GetPackageNameOrAlias(model.Package().Name(), model.Package().Path())
	if err != nil {
		return nil, err
	} else if len(pkgName) > 0 && !IsExported(model.TypeName()) {
		return nil, errors.Errorf("private type %s is not accessible from package %s", model.TypeName(), g.OutPkgPath)
	}
	memberPkg, err := g.AddImport(MemberPkgPath, memberPkgName)
	if err != nil {
		return nil, err
	}

	params := typeparams.New(model.Typ.TypeParams(), g.TypeString)
	ownerType := GetTypeName(model.TypeName(), pkgName) + params.IdentString()

	names := []string{}
	for fieldName, fieldType := range model.FieldsNameAndType {
		declName, body, err := g.generateMember(model, fieldName, fieldType, ownerType, memberPkg, params, config)
		if err != nil {
			return nil, errors.Wrapf(err, "member of field %s.%s", model.TypeName(), fieldName)
		} else if len(declName) == 0 {
			continue
		} else if err := g.AddDecl(declName, body); err != nil {
			return nil, err
		}
		names = append(names, declName)
	}
	return names, nil
}

func (g *Generator) generateMember(
	model *struc.Model, fieldName struc.FieldName, fieldType struc.FieldType, ownerType, memberPkg string,
	params typeparams.TypeParams, config MemberConfig,
) (string, string, error) {
	external := model.Package().Path() != g.OutPkgPath
	suffix := LegalIdentName(IdentName(fieldName, true))
	getterPrefix := config.GetterPrefix
	if len(getterPrefix) == 0 || getterPrefix == Autoname {
		getterPrefix = op.IfElse(suffix == fieldName, "Get", "")
	}
	accessors := model.FindAccessors(g.OutPkgPath, fieldName, getterPrefix+suffix, config.SetterPrefix+suffix, suffix+config.MutSuffix)

	getter := allowed(accessors.Getter, config.Access)
	setter := allowed(accessors.Setter, config.Access)
	kind := getter.Kind
	if !getter.Exists() {
		kind = setter.Kind
	} else if setter.Exists() && setter.Kind != kind {
		logger.Debugf("ignore %s setter %s of field %s, getter %s is %s", setter.Kind, setter.Name, fieldName, getter.Name, getter.Kind)
		setter = struc.Accessor{}
	}
	usePtr := kind == struc.NoAccessor
	if usePtr && (!config.Access.Ptr || (external && !fieldType.Exported)) {
		logger.Debugf("no accessible strategy for field %s.%s", model.TypeName(), fieldName)
		return "", "", nil
	}

	if external && !accessibleType(fieldType.Type) {
		logger.Debugf("field %s.%s has a private type", model.TypeName(), fieldName)
		return "", "", nil
	}

	memberName := fieldName
	if len(config.NameTag) > 0 {
		if tagValue, ok := model.TagValue(fieldName, config.NameTag); ok {
			if name, _, _ := strings.Cut(tagValue, ","); len(name) > 0 && name != "-" {
				memberName = name
			}
		}
	}

	varName, err := config.VarName.Eval(model.TypeName(), suffix, memberName)
	if err != nil {
		return "", "", err
	}
	declName := LegalIdentName(IdentName(varName, config.Export))

	fieldTypeName := g.TypeString(fieldType.Type)
	methodExpr := func(method string) string { return "(*" + ownerType + ")." + method }
	constructor := memberPkg + "."
	var args string
	if usePtr {
		receiver := unique.NewNamesWith(unique.PreInit(params.Names()...)).Get(TypeReceiverVar(model.TypeName()))
		constructor += "NewPtr"
		args = "func(" + receiver + " *" + ownerType + ") *" + fieldTypeName + " { return &" + receiver + "." + fieldName + " }"
	} else {
		form := op.IfElse(kind == struc.RefAccessor, "Ref", "Val")
		switch {
		case getter.Exists() && setter.Exists():
			constructor += "New" + form
			args = methodExpr(getter.Name) + ", " + methodExpr(setter.Name)
		case getter.Exists():
			constructor += "New" + form + "Getter"
			args = methodExpr(getter.Name)
		default:
			constructor += "New" + form + "Setter"
			args = methodExpr(setter.Name)
		}
	}
	value := constructor + "(" + strconv.Quote(memberName) + ", " + args + ")"
	if config.Access.Mut && accessors.MutGetter.Exists() {
		value += ".WithMutRefGetter(" + methodExpr(accessors.MutGetter.Name) + ")"
	}
	logger.Debugf("member %s: %s", declName, value)

	if params.Len() == 0 {
		return declName, "var " + declName + " = " + value + NoLint(config.Nolint) + "\n", nil
	}
	resultType := "*" + memberPkg + ".Member[" + ownerType + ", " + fieldTypeName + "]"
	return declName, "func " + declName + params.DeclarationString() + "() " + resultType + " {" + NoLint(config.Nolint) + "\n" +
		"return " + value + "\n}\n", nil
}

func allowed(accessor struc.Accessor, access Access) struc.Accessor {
	switch accessor.Kind {
	case struc.RefAccessor:
		if access.Ref {
			return accessor
		}
	case struc.ValAccessor:
		if access.Val {
			return accessor
		}
	}
	return struc.Accessor{}
}

// accessibleType reports whether the type can be referred from another package.
func accessibleType(typ types.Type) bool {
	switch t := typ.(type) {
	case *types.Named:
		if obj := t.Obj(); obj.Pkg() != nil && !obj.Exported() {
			return false
		}
		for i := range t.TypeArgs().Len() {
			if !accessibleType(t.TypeArgs().At(i)) {
				return false
			}
		}
		return true
	case *types.Alias:
		if obj := t.Obj(); obj.Pkg() != nil && !obj.Exported() {
			return false
		}
		return true
	case *types.Pointer:
		return accessibleType(t.Elem())
	case *types.Slice:
		return accessibleType(t.Elem())
	case *types.Array:
		return accessibleType(t.Elem())
	case *types.Chan:
		return accessibleType(t.Elem())
	case *types.Map:
		return accessibleType(t.Key()) && accessibleType(t.Elem())
	default:
		return true
	}
}
