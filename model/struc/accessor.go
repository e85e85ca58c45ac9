package struc

import (
	"go/types"

	"github.com/m4gshm/fieldmeta/logger"
	"github.com/m4gshm/fieldmeta/model/util"
)

// AccessorKind is the way an accessor method transfers the field.
type AccessorKind int

const (
	NoAccessor AccessorKind = iota
	RefAccessor
	ValAccessor
)

func (k AccessorKind) String() string {
	switch k {
	case RefAccessor:
		return "ref"
	case ValAccessor:
		return "val"
	default:
		return "none"
	}
}

// Accessor is a method that reads or writes a field.
type Accessor struct {
	Name string
	Kind AccessorKind
}

func (a Accessor) Exists() bool { return a.Kind != NoAccessor }

// FieldAccessors are the methods of a struct type that access one field.
type FieldAccessors struct {
	Getter    Accessor
	Setter    Accessor
	MutGetter Accessor
}

// FindAccessors looks for the getter, setter and mutable reference getter methods of the field by their names.
// A getter has no params and returns the field value or the field pointer.
// A setter has one param, the field value or the field pointer, and no results.
// A mutable getter has no params and returns the field pointer.
func (m *Model) FindAccessors(outPkgPath string, fieldName FieldName, getterName, setterName, mutGetterName string) FieldAccessors {
	result := FieldAccessors{}
	if fun := m.Method(outPkgPath, getterName); fun != nil {
		sig := fun.Type().(*types.Signature)
		fieldType := m.receiverFieldType(sig, fieldName)
		if sig.Params().Len() == 0 && sig.Results().Len() == 1 {
			result.Getter = Accessor{Name: getterName, Kind: transferKind(sig.Results().At(0).Type(), fieldType)}
		}
		logger.Debugf("field %s.%s getter %s kind %s", m.TypeName(), fieldName, getterName, result.Getter.Kind)
	}
	if fun := m.Method(outPkgPath, setterName); fun != nil {
		sig := fun.Type().(*types.Signature)
		fieldType := m.receiverFieldType(sig, fieldName)
		if sig.Params().Len() == 1 && sig.Results().Len() == 0 && !sig.Variadic() {
			result.Setter = Accessor{Name: setterName, Kind: transferKind(sig.Params().At(0).Type(), fieldType)}
		}
		logger.Debugf("field %s.%s setter %s kind %s", m.TypeName(), fieldName, setterName, result.Setter.Kind)
	}
	if fun := m.Method(outPkgPath, mutGetterName); fun != nil {
		sig := fun.Type().(*types.Signature)
		fieldType := m.receiverFieldType(sig, fieldName)
		if sig.Params().Len() == 0 && sig.Results().Len() == 1 && transferKind(sig.Results().At(0).Type(), fieldType) == RefAccessor {
			result.MutGetter = Accessor{Name: mutGetterName, Kind: RefAccessor}
		}
		logger.Debugf("field %s.%s mutable getter %s kind %s", m.TypeName(), fieldName, mutGetterName, result.MutGetter.Kind)
	}
	return result
}

func transferKind(typ, fieldType types.Type) AccessorKind {
	if types.Identical(typ, fieldType) {
		return ValAccessor
	} else if ptr, ok := typ.(*types.Pointer); ok && types.Identical(ptr.Elem(), fieldType) {
		return RefAccessor
	}
	return NoAccessor
}

// receiverFieldType returns the field type expressed by the method receiver type parameters.
// Methods of a generic type declare own type parameters, so the declared field type must be instantiated by them.
func (m *Model) receiverFieldType(sig *types.Signature, fieldName FieldName) types.Type {
	declared := m.FieldsType[fieldName].Type
	recvTypeParams := sig.RecvTypeParams()
	if recvTypeParams.Len() == 0 || recvTypeParams.Len() != m.Typ.TypeParams().Len() {
		return declared
	}
	args := make([]types.Type, recvTypeParams.Len())
	for i := range args {
		args[i] = recvTypeParams.At(i)
	}
	inst, err := types.Instantiate(nil, m.Typ, args, false)
	if err != nil {
		logger.Debugf("instantiate %s by receiver type params: %v", m.TypeName(), err)
		return declared
	}
	if typStruct, _ := util.GetTypeStruct(inst); typStruct != nil {
		for i := range typStruct.NumFields() {
			if field := typStruct.Field(i); field.Name() == fieldName {
				return field.Type()
			}
		}
	}
	return declared
}
