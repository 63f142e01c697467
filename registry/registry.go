// Package registry contains the in-memory model of a SPIR-V grammar, the
// decoders that build it from JSON or XML, and the normalization pass that
// removes aliased enumerants before rendering.
package registry

import (
	"fmt"
)

// Registry is a parsed grammar document.
//
// Exactly one of the two metadata groups is meaningful, depending on Shape:
// core grammars have MagicNumber, MajorVersion and MinorVersion while
// extended instruction set grammars have Version. Revision is shared.
type Registry struct {
	Shape     Shape
	Copyright []string

	MagicNumber  string
	MajorVersion uint32
	MinorVersion uint32
	Version      uint32
	Revision     uint32

	Instructions []Instruction
	OperandKinds []OperandKind
}

type Instruction struct {
	Name         string
	Opcode       uint16
	Class        string
	Operands     []Operand
	Capabilities Set
	Extensions   Set
	Version      string
}

type Operand struct {
	Kind       string
	Name       string
	Quantifier Quantifier
}

type OperandKind struct {
	Kind       string
	Category   Category
	Doc        string
	Enumerants []Enumerant
}

type Enumerant struct {
	Name         string
	Value        Value
	Capabilities Set
	Extensions   Set
	Parameters   []Operand
	Version      string
}

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	IntValue ValueKind = iota
	BitflagValue
)

func (k ValueKind) String() string {
	switch k {
	case IntValue:
		return "integer"
	case BitflagValue:
		return "bitflag"
	default:
		return "invalid"
	}
}

// Value is the value of an enumerant: a plain integer for ValueEnum kinds
// or the verbatim hex text of a mask for BitEnum kinds.
type Value struct {
	Kind    ValueKind
	Int     uint32
	Bitflag string
}

// IntVal returns an integer enumerant value.
func IntVal(v uint32) Value {
	return Value{Kind: IntValue, Int: v}
}

// BitflagVal returns a bit-flag enumerant value. s is kept verbatim and is
// only interpreted by Numeric.
func BitflagVal(s string) Value {
	return Value{Kind: BitflagValue, Bitflag: s}
}

// Numeric returns the value as a number, parsing the hex text of a bit-flag
// value.
func (v Value) Numeric() (Word, error) {
	if v.Kind == BitflagValue {
		return ParseHex(v.Bitflag)
	}
	return Word(v.Int), nil
}

func (v Value) String() string {
	if v.Kind == BitflagValue {
		return v.Bitflag
	}
	return fmt.Sprintf("%d", v.Int)
}

// HasEnumerants reports whether this operand kind is one that renders as an
// enumeration or a flag set.
func (k *OperandKind) HasEnumerants() bool {
	return k.Category.HasEnumerants()
}
