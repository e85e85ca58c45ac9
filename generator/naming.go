package generator

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/m4gshm/gollections/op"
	"github.com/m4gshm/gollections/slice"
)

const Autoname = "."

var initialisms = []string{"API", "DB", "HTML", "HTTP", "ID", "JSON", "SQL", "URI", "URL", "UUID", "XML"}

// IdentName makes the name exported or not, leading initialism like ID or URL changes its case as a whole.
func IdentName(name string, export bool) string {
	if len(name) == 0 {
		return name
	}
	if initialism, ok := leadingInitialism(name); ok {
		return op.IfElse(export, strings.ToUpper, strings.ToLower)(initialism) + name[len(initialism):]
	}
	runes := []rune(name)
	runes[0] = op.IfElse(export, unicode.ToUpper, unicode.ToLower)(runes[0])
	return string(runes)
}

func leadingInitialism(name string) (string, bool) {
	for _, initialism := range initialisms {
		if len(name) < len(initialism) || !strings.EqualFold(name[:len(initialism)], initialism) {
			continue
		}
		rest := name[len(initialism):]
		if len(rest) == 0 {
			return name, true
		} else if next := []rune(rest)[0]; unicode.IsUpper(next) || unicode.IsDigit(next) || next == '_' {
			return name[:len(initialism)], true
		}
	}
	return "", false
}

// LegalIdentName replaces illegal identifier symbols and escapes keywords.
func LegalIdentName(name string) string {
	legal := []rune(name)
	for i, ch := range legal {
		if !identSymbol(ch, i == 0) {
			legal[i] = '_'
		}
	}
	if len(legal) > 0 && unicode.IsDigit(legal[0]) {
		legal = append([]rune{'_'}, legal...)
	}
	result := string(legal)
	if token.IsKeyword(result) {
		result += "_"
	}
	return result
}

func IsExported(name string) bool {
	return token.IsExported(name)
}

// TypeReceiverVar makes a short variable name for a value of the type.
func TypeReceiverVar(typeName string) string {
	if parts := strings.Split(typeName, "."); len(parts) > 1 {
		if converted := slice.Convert(parts, TypeReceiverVar); len(parts[1]) > 0 {
			return converted[1]
		} else if len(parts[0]) > 0 {
			return converted[0]
		}
	} else if f, ok := slice.First([]rune(typeName), unicode.IsLetter); ok {
		return string(unicode.ToLower(f))
	}
	return "r"
}

// GetTypeName qualifies the type name by the package name if needed.
func GetTypeName(typeName, pkgName string) string {
	if len(pkgName) > 0 {
		return pkgName + "." + typeName
	}
	return typeName
}

func NoLint(nolint bool) string {
	if nolint {
		return " //nolint"
	}
	return ""
}
