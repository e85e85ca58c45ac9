package params

import (
	"flag"

	"github.com/m4gshm/fieldmeta/logger"
)

const (
	Name                = "fieldmeta"
	DefaultFileSuffix   = "_" + Name + ".go"
	CommentConfigPrefix = "go:" + Name
)

func NewConfig(flagSet *flag.FlagSet) *Config {
	return &Config{
		Type:      flagSet.String("type", "", "type name; must be set"),
		BuildTags: MultiVal(flagSet, "buildTag", []string{Name}, "include build tag"),
		Output:    flagSet.String("out", "", "output file name; default srcdir/<type>"+DefaultFileSuffix),
		Input:     MultiVal(flagSet, "in", []string{}, "go source file"),
		Debug:     flagSet.Bool("debug", false, "enable debug logging"),
	}
}

func Nolint(flagSet *flag.FlagSet) *bool {
	return flagSet.Bool("nolint", false, "add //nolint comment")
}

func Export(flagSet *flag.FlagSet) *bool {
	return flagSet.Bool("export", false, "export generated content")
}

type Config struct {
	Type      *string
	BuildTags *[]string
	Output    *string
	Input     *[]string
	Debug     *bool
}

// MergeWith fills the config values that are not set by the src ones.
func (c *Config) MergeWith(src *Config) *Config {
	logger.Debugw("config merging", "dest", c, "src", src)
	if src == nil {
		return c
	}
	if len(*c.Type) == 0 {
		c.Type = src.Type
	}
	if len(*c.BuildTags) == 0 {
		c.BuildTags = src.BuildTags
	}
	if len(*c.Output) == 0 {
		c.Output = src.Output
	}
	input := *c.Input
	if srcInput := *src.Input; len(srcInput) > 0 {
		input = append(input, srcInput...)
		c.Input = &input
	}
	if !*c.Debug {
		c.Debug = src.Debug
	}
	logger.Debugw("config merged", "dest", c)
	return c
}
