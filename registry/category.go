package registry

import (
	"strings"
)

// Category is the "category" of an operand kind. Only ValueEnum and BitEnum
// carry enumerants; the rest describe plain operand types and are not
// rendered.
type Category string

const (
	CategoryValueEnum Category = "ValueEnum"
	CategoryBitEnum   Category = "BitEnum"
	CategoryID        Category = "Id"
	CategoryLiteral   Category = "Literal"
	CategoryComposite Category = "Composite"
)

// HasEnumerants reports whether operand kinds of this category must list
// their enumerants.
func (c Category) HasEnumerants() bool {
	return c == CategoryValueEnum || c == CategoryBitEnum
}

// Quantifier says how many times an operand may appear.
type Quantifier string

const (
	QuantifierOne      Quantifier = ""
	QuantifierOptional Quantifier = "?"
	QuantifierVariadic Quantifier = "*"
)

func parseQuantifier(raw string) (Quantifier, bool) {
	switch q := Quantifier(raw); q {
	case QuantifierOne, QuantifierOptional, QuantifierVariadic:
		return q, true
	default:
		return "", false
	}
}

// Shape selects which of the two grammar layouts a document uses.
type Shape int

const (
	// Core is the main grammar, with a magic number and a three-part
	// version.
	Core Shape = iota
	// Extension is an extended instruction set grammar, such as
	// GLSL.std.450, with a single version integer.
	Extension
)

func (s Shape) String() string {
	switch s {
	case Core:
		return "core"
	case Extension:
		return "extension"
	default:
		return "invalid"
	}
}

// ParseShape converts the names produced by Shape.String back into a
// Shape.
func ParseShape(s string) (Shape, bool) {
	switch strings.ToLower(s) {
	case "core":
		return Core, true
	case "extension", "ext", "extinst":
		return Extension, true
	default:
		return Core, false
	}
}

// DetectShape guesses the shape of a grammar from its file name, following
// the upstream convention of naming extended instruction set grammars
// "extinst.<name>.grammar.json".
func DetectShape(filename string) Shape {
	base := filename
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if strings.HasPrefix(base, "extinst.") {
		return Extension
	}
	return Core
}

// Format is the encoding of a grammar document.
type Format int

const (
	// Auto picks JSON or XML by looking at the first non-space byte.
	Auto Format = iota
	JSON
	XML
)

func (f Format) String() string {
	switch f {
	case Auto:
		return "auto"
	case JSON:
		return "json"
	case XML:
		return "xml"
	default:
		return "invalid"
	}
}

// ParseFormat converts the names produced by Format.String back into a
// Format.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "auto", "":
		return Auto, true
	case "json":
		return JSON, true
	case "xml":
		return XML, true
	default:
		return Auto, false
	}
}
