package registry

import (
	"bytes"
	"fmt"
)

// Parse decodes a grammar document of the given shape. With format Auto the
// encoding is chosen by looking at the first non-space byte.
//
// Parsing only checks structure: required fields, value types, and that
// enumerant values use the variant their operand kind calls for. It does
// not interpret bit-flag text; that happens in Normalize.
func Parse(data []byte, shape Shape, format Format) (*Registry, error) {
	if format == Auto {
		format = sniffFormat(data)
	}
	switch format {
	case JSON:
		return ParseJSON(data, shape)
	case XML:
		return ParseXML(data, shape)
	default:
		return nil, fmt.Errorf("unsupported grammar format %s", format)
	}
}

func sniffFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && trimmed[0] == '<' {
		return XML
	}
	return JSON
}

// checkOperandKind enforces the invariants shared by both encodings once an
// operand kind has been decoded.
func checkOperandKind(k *OperandKind, where string) error {
	if !k.HasEnumerants() {
		return nil
	}
	if len(k.Enumerants) == 0 {
		return structuralf("%s: %s operand kind %q has no enumerants", where, k.Category, k.Kind)
	}
	want := IntValue
	if k.Category == CategoryBitEnum {
		want = BitflagValue
	}
	for i, e := range k.Enumerants {
		if e.Value.Kind != want {
			return structuralf(
				"%s: enumerant %d (%q) of %s %q has a %s value, but %s was expected",
				where, i, e.Name, k.Category, k.Kind, e.Value.Kind, want,
			)
		}
	}
	return nil
}
