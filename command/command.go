package command

import (
	"flag"
	"fmt"
	"os"

	"github.com/m4gshm/gollections/slice"
)

func New(name, description string, flagSet *flag.FlagSet, op func(context *Context) error) *Command {
	c := &Command{
		name:        name,
		description: description,
		flag:        flagSet,
		op:          op,
	}
	flagSet.Usage = c.PrintUsage
	return c
}

// Command is a generator sub-command with own flags.
type Command struct {
	name, description, manual string
	op                        func(context *Context) error
	flag                      *flag.FlagSet
}

func (c *Command) Name() string { return c.name }

func (c *Command) PrintUsage() {
	out := c.flag.Output()
	_, _ = fmt.Fprintln(out, c.description)
	_, _ = fmt.Fprintln(out, "Flags:")
	c.flag.PrintDefaults()
	if len(c.manual) > 0 {
		_, _ = fmt.Fprintln(out, c.manual)
	}
}

func (c *Command) Run(context *Context) error {
	return c.op(context)
}

// Parse parses the command flags and returns the rest arguments, they may contain the next command.
func (c *Command) Parse(arguments []string) ([]string, error) {
	if err := c.flag.Parse(arguments); err != nil {
		return nil, fmt.Errorf("parse args '%s': %w", c.name, err)
	}
	return c.flag.Args(), nil
}

// Get makes a new instance of the command, returns nil for unsupported names.
func Get(name string) *Command {
	if c, ok := index[name]; ok {
		return c()
	}
	return nil
}

func Supported() []string {
	return slice.Convert(commands, func(cmd func() *Command) string { return cmd().name })
}

func PrintUsage() {
	out := os.Stderr
	_, _ = fmt.Fprintln(out, "Commands:")
	for _, cmd := range commands {
		c := cmd()
		_, _ = fmt.Fprintln(out, "  "+c.name+"\n    \t"+c.description)
	}
}

var commands = []func() *Command{
	NewMembers,
}

var index = toMap(commands)

func toMap(commands []func() *Command) map[string]func() *Command {
	index := map[string]func() *Command{}
	for _, c := range commands {
		index[c().name] = c
	}
	return index
}
