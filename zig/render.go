// Package zig renders a normalized registry as Zig source.
//
// Opcodes and value enumerations become non-exhaustive enums, which accept
// values added by later grammar revisions, and bit enumerations become
// packed structs of 32 bool fields.
package zig

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/apparentlymart/spirv-meta/ident"
	"github.com/apparentlymart/spirv-meta/registry"
)

// Banner is written after the copyright text of every generated file.
const Banner = "This file is generated by spirv-meta. Do not edit."

const opcodePrefix = "Op"

// Option customizes rendering.
type Option func(*renderer)

// WithIdentRenderer sets the identifier renderer, which decides which
// vendor tags are kept together. The default recognizes ident.DefaultTags.
func WithIdentRenderer(ir *ident.Renderer) Option {
	return func(r *renderer) {
		r.ident = ir
	}
}

// WithDocComments adds a doc comment listing the required capabilities
// above each opcode and enumerant that has any.
func WithDocComments() Option {
	return func(r *renderer) {
		r.docs = true
	}
}

type renderer struct {
	w     *stickyWriter
	ident *ident.Renderer
	docs  bool

	// declared holds the top-level names written so far.
	declared map[string]bool
}

// fixedDecls are the top-level names every generated file declares before
// any operand kind.
var fixedDecls = []string{"Version", "version", "magic_number", "Opcode"}

func newRenderer(w io.Writer, opts []Option) *renderer {
	r := &renderer{w: &stickyWriter{w: w}, declared: make(map[string]bool)}
	for _, name := range fixedDecls {
		r.declared[name] = true
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.ident == nil {
		r.ident = ident.New()
	}
	return r
}

// Render writes reg as Zig source, choosing the layout by reg.Shape. reg
// should already have been passed through registry.Normalize.
//
// On error w may have received part of the output, which should be
// discarded.
func Render(w io.Writer, reg *registry.Registry, opts ...Option) error {
	switch reg.Shape {
	case registry.Core:
		return RenderCore(w, reg, opts...)
	case registry.Extension:
		return RenderExtension(w, reg, opts...)
	default:
		return errors.Errorf("unsupported grammar shape %s", reg.Shape)
	}
}

// RenderCore renders a core grammar. Every instruction name must start with
// "Op", which is removed.
func RenderCore(w io.Writer, reg *registry.Registry, opts ...Option) error {
	r := newRenderer(w, opts)
	r.header(reg.Copyright)
	r.w.printf("pub const version = Version{ .major = %d, .minor = %d, .patch = %d };\n", reg.MajorVersion, reg.MinorVersion, reg.Revision)
	r.w.printf("pub const magic_number: u32 = %s;\n", reg.MagicNumber)
	if err := r.opcodes(reg.Instructions, opcodePrefix); err != nil {
		return err
	}
	return r.operandKinds(reg.OperandKinds)
}

// RenderExtension renders an extended instruction set grammar, whose
// instruction names are used as they are.
func RenderExtension(w io.Writer, reg *registry.Registry, opts ...Option) error {
	r := newRenderer(w, opts)
	r.header(reg.Copyright)
	r.w.printf("pub const version = Version{ .major = %d, .minor = 0, .patch = %d };\n", reg.Version, reg.Revision)
	if err := r.opcodes(reg.Instructions, ""); err != nil {
		return err
	}
	return r.operandKinds(reg.OperandKinds)
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func (r *renderer) header(copyright []string) {
	for _, entry := range copyright {
		// An entry may itself span several lines, each of which must stay
		// inside the comment.
		for _, line := range strings.Split(newlines.Replace(entry), "\n") {
			line = strings.TrimRight(line, " \t")
			if line == "" {
				r.w.print("//\n")
				continue
			}
			r.w.printf("// %s\n", line)
		}
	}
	if len(copyright) > 0 {
		r.w.print("//\n")
	}
	r.w.printf("// %s\n\n", Banner)
	r.w.print("pub const Version = struct { major: u32, minor: u32, patch: u32 };\n\n")
}

// opcodes writes the Opcode enum. Zig enum tags must have distinct values,
// so an instruction reusing an earlier opcode becomes a declaration that
// refers to the first tag with that value.
func (r *renderer) opcodes(insts []registry.Instruction, prefix string) error {
	type alias struct{ name, tag string }
	var aliases []alias
	tags := make(map[uint16]string, len(insts))

	r.w.print("\npub const Opcode = enum(u16) {\n")
	for _, inst := range insts {
		name := inst.Name
		if prefix != "" {
			if !strings.HasPrefix(name, prefix) || len(name) == len(prefix) {
				return errors.Wrapf(registry.ErrMissingOpcodePrefix, "instruction %q (opcode %d) does not start with %q", name, inst.Opcode, prefix)
			}
			name = name[len(prefix):]
		}
		member := r.member(name)
		if tag, ok := tags[inst.Opcode]; ok {
			aliases = append(aliases, alias{name: member, tag: tag})
			continue
		}
		tags[inst.Opcode] = member
		r.doc(inst.Capabilities)
		r.w.printf("    %s = %d,\n", member, inst.Opcode)
	}
	r.w.print("    _,\n")
	if len(aliases) > 0 {
		r.w.print("\n")
		for _, a := range aliases {
			r.w.printf("    pub const %s = Opcode.%s;\n", a.name, a.tag)
		}
	}
	r.w.print("};\n")
	return r.w.err
}

func (r *renderer) operandKinds(kinds []registry.OperandKind) error {
	for i := range kinds {
		kind := &kinds[i]
		var err error
		switch kind.Category {
		case registry.CategoryValueEnum:
			err = r.valueEnum(kind)
		case registry.CategoryBitEnum:
			err = r.bitEnum(kind)
		default:
			// Ids, literals and composites are plain operand types with
			// nothing to enumerate.
		}
		if err != nil {
			return err
		}
	}
	return r.w.err
}

// declare reserves the type name for kind, failing if another declaration
// in the file already uses it.
func (r *renderer) declare(kind *registry.OperandKind) (string, error) {
	name := r.typeName(kind.Kind)
	if r.declared[name] {
		return "", errors.Wrapf(registry.ErrStructural, "operand kind %q renders as %s, which is already declared", kind.Kind, name)
	}
	r.declared[name] = true
	return name, nil
}

func (r *renderer) valueEnum(kind *registry.OperandKind) error {
	name, err := r.declare(kind)
	if err != nil {
		return err
	}
	r.w.printf("\npub const %s = enum(u32) {\n", name)
	for _, e := range kind.Enumerants {
		if e.Value.Kind != registry.IntValue {
			return errors.Wrapf(registry.ErrStructural, "enumerant %q of %s has a %s value", e.Name, kind.Kind, e.Value.Kind)
		}
		r.doc(e.Capabilities)
		r.w.printf("    %s = %d,\n", r.member(e.Name), e.Value.Int)
	}
	r.w.print("    _,\n};\n")
	return r.w.err
}

func (r *renderer) bitEnum(kind *registry.OperandKind) error {
	name, err := r.declare(kind)
	if err != nil {
		return err
	}

	// Each bit position holds the enumerant whose value is exactly that bit.
	// Zero and multi-bit masks have no position and are left out.
	var bits [32]*registry.Enumerant
	for i := range kind.Enumerants {
		e := &kind.Enumerants[i]
		if e.Value.Kind != registry.BitflagValue {
			return errors.Wrapf(registry.ErrStructural, "enumerant %q of %s has a %s value", e.Name, kind.Kind, e.Value.Kind)
		}
		v, err := registry.ParseHex(e.Value.Bitflag)
		if err != nil {
			return errors.Wrapf(err, "enumerant %q of %s", e.Name, kind.Kind)
		}
		if pos, ok := v.SingleBit(); ok && bits[pos] == nil {
			bits[pos] = e
		}
	}

	r.w.printf("\npub const %s = packed struct(u32) {\n", name)
	for pos, e := range bits {
		if e == nil {
			r.w.printf("    _reserved_bit_%d: bool = false,\n", pos)
			continue
		}
		r.doc(e.Capabilities)
		r.w.printf("    %s: bool = false,\n", r.member(e.Name))
	}
	r.w.print("};\n")
	return r.w.err
}

func (r *renderer) doc(caps registry.Set) {
	if !r.docs || len(caps) == 0 {
		return
	}
	r.w.printf("    /// Capabilities: %s\n", caps)
}

func (r *renderer) member(name string) string {
	return Ident(r.ident.Format(ident.Snake, name))
}

func (r *renderer) typeName(name string) string {
	return Ident(r.ident.Format(ident.Title, name))
}
