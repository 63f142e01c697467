// Package spirvmeta generates Zig declarations from SPIR-V grammar files.
//
// A generation call parses the grammar, removes aliased enumerants so that
// each value has a single name, and renders the opcodes and operand kinds as
// Zig enums and packed structs. See the registry, ident and zig packages
// for the individual steps.
package spirvmeta

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/apparentlymart/spirv-meta/ident"
	"github.com/apparentlymart/spirv-meta/registry"
	"github.com/apparentlymart/spirv-meta/zig"
)

// GenerateCore generates declarations for a core grammar such as
// spirv.core.grammar.json.
func GenerateCore(raw []byte, w io.Writer, opts ...Option) error {
	return Generate(raw, registry.Core, w, opts...)
}

// GenerateExtension generates declarations for an extended instruction set
// grammar such as extinst.glsl.std.450.grammar.json.
func GenerateExtension(raw []byte, w io.Writer, opts ...Option) error {
	return Generate(raw, registry.Extension, w, opts...)
}

// Generate parses raw as a grammar of the given shape, normalizes it and
// writes the rendered declarations to w.
//
// The first error aborts the call. w may already have received part of the
// output by then, and callers must discard it.
func Generate(raw []byte, shape registry.Shape, w io.Writer, opts ...Option) error {
	c := newConfig(opts)
	log := c.logger.WithField("shape", shape.String())

	reg, err := registry.Parse(raw, shape, c.format)
	if err != nil {
		return errors.Wrap(err, "failed to parse grammar")
	}
	log.WithFields(logrus.Fields{
		"instructions":  len(reg.Instructions),
		"operand_kinds": len(reg.OperandKinds),
	}).Debug("Parsed grammar")

	aliases, err := registry.Normalize(reg)
	if err != nil {
		return errors.Wrap(err, "failed to normalize grammar")
	}
	for _, a := range aliases {
		log.WithFields(logrus.Fields{
			"kind":      a.Kind,
			"alias":     a.Name,
			"canonical": a.Canonical,
			"value":     a.Value,
		}).Debug("Removed aliased enumerant")
	}
	log.WithField("aliases", len(aliases)).Debug("Normalized grammar")

	if c.dump != nil {
		c.dump(reg)
	}

	renderOpts := []zig.Option{zig.WithIdentRenderer(ident.New(c.vendorTags...))}
	if c.docs {
		renderOpts = append(renderOpts, zig.WithDocComments())
	}
	if err := zig.Render(w, reg, renderOpts...); err != nil {
		return errors.Wrap(err, "failed to render declarations")
	}
	return nil
}
