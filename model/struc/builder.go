package struc

import (
	"fmt"
	"go/types"
	"reflect"

	"github.com/m4gshm/fieldmeta/logger"
	"github.com/m4gshm/fieldmeta/model/util"
)

type structModelBuilder struct {
	model *Model
}

func newBuilder() *structModelBuilder {
	return &structModelBuilder{}
}

func (b *structModelBuilder) populateByStruct(typ *types.Struct) error {
	numFields := typ.NumFields()
	for i := 0; i < numFields; i++ {
		fieldVar := typ.Field(i)
		if !fieldVar.IsField() {
			return fmt.Errorf("unexpected struct element, must be field, value %v, type %v", fieldVar, reflect.TypeOf(fieldVar))
		}
		fldName := fieldVar.Name()
		if fldName == "_" {
			logger.Debugf("skip blank field of %s", b.model.TypeName())
			continue
		} else if _, ok := b.model.FieldsType[fldName]; ok {
			logger.Infof("duplicated field '%s'", fldName)
			continue
		}
		b.model.FieldNames = append(b.model.FieldNames, fldName)

		if tagValues, _ := parseTagValues(typ.Tag(i)); len(tagValues) > 0 {
			b.model.FieldsTagValue[fldName] = tagValues
		}
		b.model.FieldsType[fldName] = FieldType{
			Embedded: fieldVar.Embedded(),
			Exported: fieldVar.Exported(),
			Type:     fieldVar.Type(),
		}
	}
	return nil
}

func (b *structModelBuilder) newModel(typ *types.Named) (*Model, error) {
	typName := typ.Obj().Name()
	typStruct, ref := util.GetTypeStruct(typ)
	if typStruct == nil || ref > 0 {
		return nil, fmt.Errorf("'%s' is not a struct type", typName)
	}

	b.model = &Model{
		Typ:            typ,
		FieldNames:     []FieldName{},
		FieldsType:     map[FieldName]FieldType{},
		FieldsTagValue: map[FieldName]map[TagName]TagValue{},
	}
	if err := b.populateByStruct(typStruct); err != nil {
		return nil, err
	}
	return b.model, nil
}
