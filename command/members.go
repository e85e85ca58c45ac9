package command

import (
	"flag"

	"github.com/m4gshm/flag/flagenum"
	"github.com/m4gshm/gollections/collection/immutable"
	"github.com/m4gshm/gollections/slice"

	"github.com/m4gshm/fieldmeta/generator"
	"github.com/m4gshm/fieldmeta/logger"
	"github.com/m4gshm/fieldmeta/params"
	"github.com/m4gshm/fieldmeta/use"
)

func toString[F ~string](from F) string { return string(from) }
func fromString[F ~string](s string) F  { return F(s) }

type access string

const (
	ptrAccess access = "ptr"
	refAccess access = "ref"
	valAccess access = "val"
	mutAccess access = "mut"
)

func NewMembers() *Command {
	const (
		name = "members"
	)
	var (
		flagSet   = flag.NewFlagSet(name, flag.ExitOnError)
		getPrefix = flagSet.String("get-prefix", generator.Autoname, "getter methods prefix, use "+generator.Autoname+
			" for autoprefix (empty or Get if the capitalized field name equals the field name)")
		setPrefix = flagSet.String("set-prefix", "Set", "setter methods prefix")
		mutSuffix = flagSet.String("mut-suffix", "Ref", "mutable reference getter methods suffix")
		nameTag   = flagSet.String("name-tag", "", "a tag whose value is used as the member name, like json")
		varName   = flagSet.String("var", generator.DefaultNameExpr, "an expression that computes member variable names;"+
			" variables: type (struct type name), field (capitalized field name), name (member name)")
		export = params.Export(flagSet)
		nolint = params.Nolint(flagSet)
	)
	all := slice.Of(ptrAccess, refAccess, valAccess, mutAccess)
	accesses, err := flagenum.Multiple(flagSet, "access", all, all, fromString[access], toString[access], "enabled field access strategies")
	if err != nil {
		panic(err)
	}

	return New(
		name, "generates member descriptors of struct fields",
		flagSet,
		func(context *Context) error {
			model, err := context.StructModel()
			if err != nil {
				return err
			}
			nameExpr, err := generator.NewNameExpr(*varName)
			if err != nil {
				return use.Err(err.Error())
			}
			selected := immutable.NewSet(*accesses...)
			config := generator.MemberConfig{
				GetterPrefix: *getPrefix,
				SetterPrefix: *setPrefix,
				MutSuffix:    *mutSuffix,
				NameTag:      *nameTag,
				Access: generator.Access{
					Ptr: selected.Contains(ptrAccess),
					Ref: selected.Contains(refAccess),
					Val: selected.Contains(valAccess),
					Mut: selected.Contains(mutAccess),
				},
				VarName: nameExpr,
				Export:  *export,
				Nolint:  *nolint,
			}
			names, err := context.Generator.GenerateMembers(model, config)
			if err != nil {
				return err
			}
			logger.Debugf("generated members of %s: %v", model.TypeName(), names)
			return nil
		},
	)
}
