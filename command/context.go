package command

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/packages"

	"github.com/m4gshm/fieldmeta/generator"
	"github.com/m4gshm/fieldmeta/model/struc"
	"github.com/m4gshm/fieldmeta/model/util"
	"github.com/m4gshm/fieldmeta/params"
	"github.com/m4gshm/fieldmeta/use"
)

// Context is shared by the commands of one generator run.
type Context struct {
	Config    *params.Config
	Generator *generator.Generator
	FileSet   *token.FileSet
	Packages  []*packages.Package

	model *struc.Model
}

// StructModel returns the model of the struct type selected by the -type flag.
func (c *Context) StructModel() (*struc.Model, error) {
	if m := c.model; m != nil {
		return m, nil
	}
	typeName := *c.Config.Type
	if len(typeName) == 0 {
		return nil, use.Err("no type arg")
	}
	typ, _, _, err := util.FindTypePackageFile(typeName, c.FileSet, c.Packages)
	if err != nil {
		return nil, err
	} else if typ == nil {
		return nil, use.Err(fmt.Sprintf("type not found, %s", typeName))
	}
	model, err := struc.New(typ)
	if err != nil {
		return nil, err
	}
	c.model = model
	return model, nil
}
