package main

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/m4gshm/gollections/slice"
	"golang.org/x/tools/go/packages"

	"github.com/m4gshm/fieldmeta/command"
	"github.com/m4gshm/fieldmeta/generator"
	"github.com/m4gshm/fieldmeta/logger"
	"github.com/m4gshm/fieldmeta/model/util"
	"github.com/m4gshm/fieldmeta/params"
	"github.com/m4gshm/fieldmeta/use"
)

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "Usage of "+params.Name+":\n")
	_, _ = fmt.Fprintf(out, "\t"+params.Name+" [flags] -type T command [command flags]\n")
	_, _ = fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
	command.PrintUsage()
}

func main() {
	log.SetPrefix(params.Name + ": ")

	config := params.NewConfig(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()

	err := run(config, flag.Args())
	logger.Sync()
	var useErr *use.Error
	if errors.As(err, &useErr) {
		log.Print(err)
		flag.Usage()
		os.Exit(2)
	} else if err != nil {
		log.Fatal(err)
	}
}

func run(config *params.Config, args []string) error {
	inputs := *config.Input
	if len(inputs) == 0 {
		if goFile := os.Getenv("GOFILE"); len(goFile) > 0 {
			inputs = []string{goFile}
		} else {
			inputs = []string{"."}
		}
		config.Input = &inputs
	}

	commentConfig, commentArgs, err := NewFilesCommentsConfig(inputs)
	if err != nil {
		return err
	}
	config = config.MergeWith(commentConfig)
	if len(args) == 0 {
		args = commentArgs
	}

	logger.Init(*config.Debug)
	logger.Debugw("using", "config", config, "args", args)

	typeName := *config.Type
	if len(typeName) == 0 {
		return use.Err("no type arg")
	} else if len(args) == 0 {
		return use.Err("no command, expected one of " + strings.Join(command.Supported(), ", "))
	}

	fileSet := token.NewFileSet()
	buildTags := *config.BuildTags
	pkgs, err := util.ExtractPackages(fileSet, buildTags, inputs[0])
	if err != nil {
		return err
	}
	typ, typPkg, typFile, err := util.FindTypePackageFile(typeName, fileSet, pkgs)
	if err != nil {
		return err
	} else if typ == nil {
		return use.Err(fmt.Sprintf("type not found, %s", typeName))
	}

	outputName := *config.Output
	if len(outputName) == 0 {
		outputName = filepath.Join(filepath.Dir(typFile), util.ToSnakeCase(typeName)+params.DefaultFileSuffix)
	}
	if outputName, err = filepath.Abs(outputName); err != nil {
		return err
	}
	outPkg, err := outputPackage(fileSet, buildTags, outputName, typFile, typPkg)
	if err != nil {
		return err
	}

	header := "// Code generated by '" + strings.Join(append([]string{params.Name}, os.Args[1:]...), " ") + "'; DO NOT EDIT."
	g := generator.New(params.Name, header, outPkg.PkgPath, outPkg.Name)
	context := &command.Context{Config: config, Generator: g, FileSet: fileSet, Packages: pkgs}
	for len(args) > 0 {
		cmd := command.Get(args[0])
		if cmd == nil {
			return use.Err(fmt.Sprintf("unsupported command %s", args[0]))
		}
		if args, err = cmd.Parse(args[1:]); err != nil {
			return err
		} else if err = cmd.Run(context); err != nil {
			return fmt.Errorf("command %s: %w", cmd.Name(), err)
		}
	}

	if g.Empty() {
		logger.Infof("nothing generated for %s", typeName)
		return nil
	}
	src, fmtErr := g.FormatSrc()
	const userWriteOtherRead = fs.FileMode(0644)
	if err := os.WriteFile(outputName, src, userWriteOtherRead); err != nil {
		return fmt.Errorf("writing output: %w", err)
	} else if fmtErr != nil {
		return fmt.Errorf("go src code formatting error: %w", fmtErr)
	}
	logger.Debugf("generated %s", outputName)
	return nil
}

func outputPackage(fileSet *token.FileSet, buildTags []string, outputName, typFile string, typPkg *packages.Package) (*packages.Package, error) {
	outDir := filepath.Dir(outputName)
	if outDir == filepath.Dir(typFile) {
		return typPkg, nil
	}
	pkgs, err := util.ExtractPackages(fileSet, buildTags, outDir)
	if err != nil {
		return nil, err
	}
	if pkg, ok := slice.First(pkgs, func(p *packages.Package) bool { return len(p.Name) > 0 && len(p.PkgPath) > 0 }); ok {
		return pkg, nil
	}
	return nil, use.Err(fmt.Sprintf("cannot determine output package, path '%s'", outDir))
}

// NewFilesCommentsConfig reads //go:fieldmeta comments of the go files.
// Returns the merged config and the command arguments of the first comment that has them.
func NewFilesCommentsConfig(inputs []string) (config *params.Config, args []string, err error) {
	fileSet := token.NewFileSet()
	for _, input := range inputs {
		if !strings.HasSuffix(input, ".go") {
			continue
		}
		file, err := parser.ParseFile(fileSet, input, nil, parser.ParseComments)
		if err != nil {
			return nil, nil, err
		}
		fileConfig, fileArgs, err := NewFileCommentConfig(file)
		if err != nil {
			return nil, nil, err
		} else if fileConfig != nil {
			config = fileConfig.MergeWith(config)
		}
		if len(args) == 0 {
			args = fileArgs
		}
	}
	return config, args, nil
}

func NewFileCommentConfig(file *ast.File) (config *params.Config, args []string, err error) {
	for _, commentGroup := range file.Comments {
		for _, comment := range commentGroup.List {
			commentConfig, commentArgs, err := NewConfigComment(comment.Text)
			if err != nil {
				return nil, nil, use.FileCommentErr(err.Error(), file, comment)
			} else if commentConfig == nil {
				continue
			}
			config = commentConfig.MergeWith(config)
			if len(args) == 0 {
				args = commentArgs
			}
		}
	}
	return config, args, nil
}

// NewConfigComment parses a comment like //go:fieldmeta -type Person members -export.
func NewConfigComment(text string) (*params.Config, []string, error) {
	prefix := "//" + params.CommentConfigPrefix
	if !strings.HasPrefix(text, prefix) {
		return nil, nil, nil
	}
	configComment := strings.TrimPrefix(text, prefix)
	if len(configComment) > 0 && configComment[0] != ' ' {
		// another directive like //go:fieldmetaX
		return nil, nil, nil
	}
	flagSet := flag.NewFlagSet(params.CommentConfigPrefix, flag.ContinueOnError)
	commentConfig := params.NewConfig(flagSet)
	if err := flagSet.Parse(strings.Fields(configComment)); err != nil {
		return nil, nil, fmt.Errorf("parsing config comment %v; %w", text, err)
	}
	return commentConfig, flagSet.Args(), nil
}
