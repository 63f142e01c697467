package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/apparentlymart/spirv-meta/registry"
)

const envPrefix = "SPIRV_META"

// options is the consolidated configuration for one run. Each value comes
// from, in order of precedence, a command line flag, a SPIRV_META_*
// environment variable, the config file, or the flag default.
type options struct {
	Output      string
	Shape       string
	Format      string
	VendorTags  []string
	DocComments bool
	Dump        bool
	LogLevel    string
}

func addFlags(flags *pflag.FlagSet) {
	flags.SortFlags = false
	flags.StringP("output", "o", "-", "output file, or - for stdout")
	flags.String("shape", "auto", "grammar shape: core, extension, or auto to decide from the file name")
	flags.String("format", "auto", "grammar encoding: json, xml, or auto to decide from the content")
	flags.StringSlice("vendor-tags", nil, "vendor tags to keep together in identifiers (default AMD,EXT,GOOGLE,INTEL,KHR,NV)")
	flags.Bool("doc-comments", false, "add capability doc comments to the generated code")
	flags.Bool("dump", false, "dump the normalized grammar to stderr")
	flags.String("log-level", "warning", "log level: panic, fatal, error, warning, info, debug or trace")
	flags.String("config", "", "YAML, TOML or JSON file with default values for these flags")
}

func newViper(fs afero.Fs, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return v, nil
}

func loadOptions(v *viper.Viper) (options, error) {
	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return options{}, errors.Wrapf(err, "failed to read config file %s", cfgFile)
		}
	}

	opts := options{
		Output:      v.GetString("output"),
		Shape:       v.GetString("shape"),
		Format:      v.GetString("format"),
		DocComments: v.GetBool("doc-comments"),
		Dump:        v.GetBool("dump"),
		LogLevel:    v.GetString("log-level"),
	}

	// Environment variables and config files can give the tags as a single
	// comma separated string.
	for _, raw := range v.GetStringSlice("vendor-tags") {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				opts.VendorTags = append(opts.VendorTags, tag)
			}
		}
	}

	if opts.Shape != "auto" {
		if _, ok := registry.ParseShape(opts.Shape); !ok {
			return options{}, errors.Errorf("invalid shape %q", opts.Shape)
		}
	}
	if _, ok := registry.ParseFormat(opts.Format); !ok {
		return options{}, errors.Errorf("invalid format %q", opts.Format)
	}
	return opts, nil
}

func (o options) shapeFor(filename string) registry.Shape {
	if shape, ok := registry.ParseShape(o.Shape); ok {
		return shape
	}
	return registry.DetectShape(filename)
}

func (o options) format() registry.Format {
	f, _ := registry.ParseFormat(o.Format)
	return f
}
