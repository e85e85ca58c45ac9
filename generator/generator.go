package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"sort"
	"strconv"

	"github.com/m4gshm/gollections/collection/mutable"
	"github.com/pkg/errors"

	"github.com/m4gshm/fieldmeta/logger"
	"github.com/m4gshm/fieldmeta/model/util"
)

// Generator collects declarations of a go source file.
type Generator struct {
	Name       string
	Header     string
	OutPkgPath string
	OutPkgName string

	imports      map[string]string
	importNames  map[string]string
	declNames    *mutable.Set[string]
	declarations []string
}

func New(name, header, outPkgPath, outPkgName string) *Generator {
	return &Generator{
		Name:        name,
		Header:      header,
		OutPkgPath:  outPkgPath,
		OutPkgName:  outPkgName,
		imports:     map[string]string{},
		importNames: map[string]string{outPkgName: outPkgPath},
		declNames:   mutable.NewSet[string](),
	}
}

// AddImport registers the package import and returns the name the package must be referred to in the generated code.
// The alias is used only if the package name is already taken by another import.
func (g *Generator) AddImport(pkgPath, pkgName string) (string, error) {
	if len(pkgPath) == 0 {
		return "", errors.New("empty import path")
	} else if pkgPath == g.OutPkgPath {
		return "", nil
	} else if name, ok := g.imports[pkgPath]; ok {
		return name, nil
	}
	if len(pkgName) == 0 {
		pkgName = packagePathToName(util.GetPackageName(pkgPath))
	}
	name := pkgName
	for i := 1; ; i++ {
		if _, used := g.importNames[name]; !used {
			break
		}
		name = pkgName + strconv.Itoa(i)
	}
	logger.Debugf("import %s as %s", pkgPath, name)
	g.imports[pkgPath] = name
	g.importNames[name] = pkgPath
	return name, nil
}

// GetPackageNameOrAlias returns empty string for the output package or the name of the imported package.
func (g *Generator) GetPackageNameOrAlias(pkgName, pkgPath string) (string, error) {
	name, err := g.AddImport(pkgPath, pkgName)
	if err != nil {
		return "", errors.Wrapf(err, "package %s", pkgName)
	}
	return name, nil
}

// TypeString renders the type and imports all referred packages.
func (g *Generator) TypeString(typ types.Type) string {
	return types.TypeString(typ, g.qualifier)
}

func (g *Generator) qualifier(pkg *types.Package) string {
	name, err := g.GetPackageNameOrAlias(pkg.Name(), pkg.Path())
	if err != nil {
		logger.Infof("qualify package: %v", err)
		return pkg.Name()
	}
	return name
}

// AddDecl appends a top level declaration, the name must be unique.
func (g *Generator) AddDecl(name, body string) error {
	if !g.declNames.AddNew(name) {
		return fmt.Errorf("duplicated declaration %s", name)
	}
	g.declarations = append(g.declarations, body)
	return nil
}

func (g *Generator) Empty() bool {
	return len(g.declarations) == 0
}

func (g *Generator) Src() []byte {
	out := bytes.Buffer{}
	if len(g.Header) > 0 {
		out.WriteString(g.Header + "\n\n")
	}
	out.WriteString("package " + g.OutPkgName + "\n\n")

	if len(g.imports) > 0 {
		paths := make([]string, 0, len(g.imports))
		for path := range g.imports {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		out.WriteString("import (\n")
		for _, path := range paths {
			name := g.imports[path]
			if name == packagePathToName(util.GetPackageName(path)) {
				out.WriteString(strconv.Quote(path) + "\n")
			} else {
				out.WriteString(name + " " + strconv.Quote(path) + "\n")
			}
		}
		out.WriteString(")\n\n")
	}
	for _, decl := range g.declarations {
		out.WriteString(decl + "\n")
	}
	return out.Bytes()
}

// FormatSrc returns gofmt-ed source, the unformatted one is returned with the error.
func (g *Generator) FormatSrc() ([]byte, error) {
	src := g.Src()
	fmtSrc, err := format.Source(src)
	if err != nil {
		return src, errors.Wrap(err, "format generated source")
	}
	return fmtSrc, nil
}
