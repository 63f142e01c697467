package main

import (
	"bytes"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	spirvmeta "github.com/apparentlymart/spirv-meta"
	"github.com/apparentlymart/spirv-meta/registry"
)

func newRootCommand(fs afero.Fs, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrangle [flags] <grammar-file>",
		Short: "Generate Zig declarations from a SPIR-V grammar",
		Long: `Generate Zig declarations from a SPIR-V grammar.

The grammar is either a core grammar such as spirv.core.grammar.json or an
extended instruction set grammar such as extinst.glsl.std.450.grammar.json,
in JSON or XML. Opcodes and value enumerations become non-exhaustive enums
and bit enumerations become packed structs. Aliased enumerants are removed,
keeping the shortest name for each value.`,
		Example: `
  # Generate the core declarations.
  wrangle -o spirv.zig spirv.core.grammar.json

  # Generate declarations for an extended instruction set.
  wrangle -o glsl450.zig extinst.glsl.std.450.grammar.json

  # Read an XML grammar from stdin.
  wrangle --shape core --format xml - < grammar.xml`[1:],
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	addFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := newViper(fs, cmd.Flags())
		if err != nil {
			return err
		}
		opts, err := loadOptions(v)
		if err != nil {
			return err
		}
		logger, err := newLogger(stderr, opts.LogLevel)
		if err != nil {
			return err
		}
		return run(fs, stdin, stdout, stderr, logger, args[0], opts)
	}
	return cmd
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	return logger, nil
}

func run(fs afero.Fs, stdin io.Reader, stdout, stderr io.Writer, logger *logrus.Logger, input string, opts options) error {
	var raw []byte
	var err error
	shape := opts.shapeFor(input)
	if input == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = afero.ReadFile(fs, input)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read grammar %s", input)
	}

	log := logger.WithField("input", input)
	log.WithFields(logrus.Fields{
		"shape":  shape.String(),
		"format": opts.format().String(),
		"bytes":  len(raw),
	}).Info("Generating declarations")

	genOpts := []spirvmeta.Option{
		spirvmeta.WithFormat(opts.format()),
		spirvmeta.WithDocComments(opts.DocComments),
		spirvmeta.WithLogger(log),
	}
	if len(opts.VendorTags) > 0 {
		genOpts = append(genOpts, spirvmeta.WithVendorTags(opts.VendorTags...))
	}
	if opts.Dump {
		dumper := spew.ConfigState{Indent: "  ", SortKeys: true}
		genOpts = append(genOpts, spirvmeta.WithDump(func(reg *registry.Registry) {
			dumper.Fdump(stderr, reg)
		}))
	}

	// Nothing is written until generation has succeeded, so a failed run
	// never leaves a truncated file behind.
	var buf bytes.Buffer
	if err := spirvmeta.Generate(raw, shape, &buf, genOpts...); err != nil {
		return errors.Wrapf(err, "%s", input)
	}

	if opts.Output == "" || opts.Output == "-" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	if err := afero.WriteFile(fs, opts.Output, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", opts.Output)
	}
	log.WithField("output", opts.Output).Info("Wrote declarations")
	return nil
}
