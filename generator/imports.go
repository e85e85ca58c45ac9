package generator

import (
	"path"
	"unicode"
	"unicode/utf8"

	"github.com/m4gshm/gollections/slice"
)

func identSymbol(ch rune, first bool) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' ||
		!first && '0' <= ch && ch <= '9' || ch >= utf8.RuneSelf && unicode.IsLetter(ch)
}

func packagePathToName(importPath string) string {
	base := []rune(path.Base(importPath))
	first := true
	return string(slice.Filter(base, func(ch rune) bool {
		ok := identSymbol(ch, first)
		if ok {
			first = false
		}
		return ok
	}))
}
