package util

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/m4gshm/gollections/op"
	"github.com/m4gshm/gollections/slice"
	"golang.org/x/tools/go/packages"

	"github.com/m4gshm/fieldmeta/logger"
)

const packageMode = packages.NeedSyntax | packages.NeedName | packages.NeedTypesInfo | packages.NeedTypes | packages.NeedModule

// ExtractPackages loads the package placed in the fileName directory or in the fileName itself if it is a directory.
func ExtractPackages(fileSet *token.FileSet, buildTags []string, fileName string) ([]*packages.Package, error) {
	dir, err := GetDir(fileName)
	if err != nil {
		return nil, err
	}
	pkgs, err := packages.Load(&packages.Config{
		Dir:        dir,
		Fset:       fileSet,
		Mode:       packageMode,
		BuildFlags: buildTagsArg(buildTags),
		Logf:       func(format string, args ...any) { logger.Debugf("packagesLoad: "+format, args...) },
	}, ".")
	if err != nil {
		return nil, fmt.Errorf("load package of %s: %w", fileName, err)
	}
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			logger.Debugf("package %s error: %v", pkg.PkgPath, pkgErr)
		}
	}
	return pkgs, nil
}

func buildTagsArg(buildTags []string) []string {
	return []string{fmt.Sprintf("-tags=%s", strings.Join(buildTags, ","))}
}

func GetDir(fileName string) (string, error) {
	fileStat, err := os.Stat(fileName)
	isNoExists := errors.Is(err, os.ErrNotExist)
	if !isNoExists && err != nil {
		return "", err
	}
	return op.IfElse(!isNoExists && fileStat.IsDir(), fileName, filepath.Dir(fileName)), nil
}

// FindTypePackageFile looks for the typeName type declaration in the pkgs packages.
// Returns nil type if nothing found.
func FindTypePackageFile(typeName string, fileSet *token.FileSet, pkgs []*packages.Package) (*types.Named, *packages.Package, string, error) {
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		} else if lookup := pkg.Types.Scope().Lookup(typeName); lookup == nil {
			logger.Debugf("no type '%s' in package '%s'", typeName, pkg.Types.Name())
		} else if typeNamed, _ := GetTypeNamed(lookup.Type()); typeNamed == nil {
			return nil, nil, "", fmt.Errorf("cannot detect type '%s'", typeName)
		} else {
			filePath, err := FindTypeFile(typeNamed, fileSet, pkg.Syntax)
			return typeNamed, pkg, filePath, err
		}
	}
	return nil, nil, "", nil
}

func FindTypeFile(typeNamed *types.Named, fileSet *token.FileSet, files []*ast.File) (string, error) {
	typeObj := typeNamed.Obj()
	typTokenFile := fileSet.File(typeObj.Pos())
	if typTokenFile == nil {
		return "", fmt.Errorf("type's file not found: type %s", typeObj.Id())
	}
	base := token.Pos(typTokenFile.Base())
	if _, ok := slice.First(files, func(f *ast.File) bool { return f.FileStart == base }); !ok {
		return "", fmt.Errorf("type's file not parsed: type %s, file %s", typeObj.Id(), typTokenFile.Name())
	}
	logger.Debugf("found type file (type [%s], file [%s])", typeObj.Id(), typTokenFile.Name())
	return typTokenFile.Name(), nil
}

// GetTypeNamed returns the named type under pointers and the pointers count.
func GetTypeNamed(typ types.Type) (*types.Named, int) {
	switch ftt := typ.(type) {
	case *types.Named:
		return ftt, 0
	case *types.Alias:
		return GetTypeNamed(types.Unalias(ftt))
	case *types.Pointer:
		t, p := GetTypeNamed(ftt.Elem())
		return t, p + 1
	default:
		return nil, 0
	}
}

func GetTypeStruct(t types.Type) (*types.Struct, int) {
	return getType[*types.Struct](t, 1000)
}

func getType[T types.Type](t types.Type, depth int) (T, int) {
	if depth < 0 {
		panic(fmt.Sprintf("getType overflow %v", t))
	}
	var zero T
	switch tt := t.(type) {
	case T:
		return tt, 0
	case *types.Pointer:
		s, pc := getType[T](tt.Elem(), depth-1)
		return s, pc + 1
	case types.Type:
		if underlying := tt.Underlying(); underlying != t {
			return getType[T](underlying, depth-1)
		}
	}
	return zero, 0
}

func GetPackageName(pkgPath string) string {
	j := len(pkgPath)
	i := j - 1
	for ; i >= 0; i-- {
		if pkgPath[i] == '/' {
			part := pkgPath[i+1 : j]
			if !isVersionElement(part) {
				return part
			}
			j = i
		}
	}
	return pkgPath[i+1 : j]
}

// isVersionElement reports whether s is a well-formed path version element:
// v2, v3, v10, etc, but not v0, v05, v1.
func isVersionElement(pkgName string) bool {
	if len(pkgName) < 2 || pkgName[0] != 'v' || pkgName[1] == '0' || pkgName[1] == '1' && len(pkgName) == 2 {
		return false
	}
	for i := 1; i < len(pkgName); i++ {
		if pkgName[i] < '0' || '9' < pkgName[i] {
			return false
		}
	}
	return true
}

// ToSnakeCase converts camel case names like HTTPServer to http_server.
func ToSnakeCase(name string) string {
	runes := []rune(name)
	out := make([]rune, 0, len(runes)+2)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && runes[i-1] != '_' && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

// TypeString renders the type with package names omitted for the outPkgPath package.
func TypeString(typ types.Type, outPkgPath string) string {
	return types.TypeString(typ, func(p *types.Package) string {
		return op.IfElse(p.Path() == outPkgPath, "", p.Name())
	})
}
