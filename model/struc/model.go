package struc

import (
	"fmt"
	"go/types"

	"github.com/m4gshm/fieldmeta/model/util"
)

type (
	TagName   = string
	TagValue  = string
	FieldName = string
	FieldType struct {
		Embedded bool
		Exported bool
		Type     types.Type
	}

	// Model struct type model.
	Model struct {
		Typ            *types.Named
		FieldNames     []FieldName
		FieldsType     map[FieldName]FieldType
		FieldsTagValue map[FieldName]map[TagName]TagValue
		methods        *types.MethodSet
	}
)

// New - Model's default constructor.
func New(typ *types.Named) (*Model, error) {
	structModel, err := newBuilder().newModel(typ)
	if err != nil {
		return nil, fmt.Errorf("new model of %+v: %w", typ, err)
	}
	return structModel, nil
}

func (m *Model) Package() *types.Package {
	return m.Typ.Obj().Pkg()
}

func (m *Model) TypeName() string {
	return m.Typ.Obj().Name()
}

func (m *Model) FieldsNameAndType(yield func(FieldName, FieldType) bool) {
	if m != nil {
		for _, fn := range m.FieldNames {
			if !yield(fn, m.FieldsType[fn]) {
				break
			}
		}
	}
}

// TagValue returns the field tag value.
func (m *Model) TagValue(fieldName FieldName, tagName TagName) (TagValue, bool) {
	v, ok := m.FieldsTagValue[fieldName][tagName]
	return v, ok
}

// Method looks for a method in the method set of the pointer to the model type that can be called from the outPkgPath package.
func (m *Model) Method(outPkgPath string, name string) *types.Func {
	if m.methods == nil {
		m.methods = types.NewMethodSet(types.NewPointer(m.Typ))
	}
	sel := m.methods.Lookup(m.Package(), name)
	if sel == nil {
		return nil
	}
	fun, ok := sel.Obj().(*types.Func)
	if !ok || len(sel.Index()) > 1 {
		// promoted methods of embedded fields are not used as accessors
		return nil
	} else if !fun.Exported() && outPkgPath != m.Package().Path() {
		return nil
	}
	return fun
}

func (m *Model) String() string {
	return util.TypeString(m.Typ, "")
}

func parseTagValues(tags string) (map[TagName]TagValue, []TagName) {
	tagNames := make([]TagName, 0)
	tagValues := make(map[TagName]TagValue)

	var prevTagPos int
	tagValueLen := len(tags)
	for pos := 0; pos < tagValueLen; pos++ {
		character := rune(tags[pos])
		switch character {
		case '`', ' ':
			prevTagPos = pos + 1
		case ':':
			tagName := TagName(tags[prevTagPos:pos])

			pos++
			if pos >= tagValueLen {
				return tagValues, tagNames
			}
			character = rune(tags[pos])
			tagValueBorder := '"'
			findEndBorder := false
			if character == tagValueBorder {
				pos++
				findEndBorder = true
			}
			tagDelim := ' '

			var endValuePos int
			for endValuePos = pos; endValuePos < tagValueLen; endValuePos++ {
				character = rune(tags[endValuePos])
				if findEndBorder && character == tagValueBorder {
					break
				} else if !findEndBorder && character == tagDelim {
					break
				}
			}

			tagValues[tagName] = tags[pos:endValuePos]
			tagNames = append(tagNames, tagName)

			prevTagPos = endValuePos + 1
			pos = endValuePos
		}
	}
	return tagValues, tagNames
}
