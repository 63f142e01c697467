package registry

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

type xmlRegistry struct {
	XMLName      xml.Name         `xml:"registry"`
	MagicNumber  *string          `xml:"magic_number,attr"`
	MajorVersion *string          `xml:"major_version,attr"`
	MinorVersion *string          `xml:"minor_version,attr"`
	Version      *string          `xml:"version,attr"`
	Revision     *string          `xml:"revision,attr"`
	Copyright    []string         `xml:"copyright>line"`
	Instructions *xmlInstructions `xml:"instructions"`
	OperandKinds *xmlOperandKinds `xml:"operand_kinds"`
}

type xmlInstructions struct {
	List []xmlInstruction `xml:"instruction"`
}

type xmlOperandKinds struct {
	List []xmlOperandKind `xml:"operand_kind"`
}

type xmlInstruction struct {
	Name         *string      `xml:"opname,attr"`
	Opcode       *string      `xml:"opcode,attr"`
	Class        string       `xml:"class,attr"`
	Version      string       `xml:"version,attr"`
	Capabilities string       `xml:"capabilities,attr"`
	Extensions   string       `xml:"extensions,attr"`
	Operands     []xmlOperand `xml:"operand"`
}

type xmlOperand struct {
	Kind       *string `xml:"kind,attr"`
	Name       string  `xml:"name,attr"`
	Quantifier string  `xml:"quantifier,attr"`
}

type xmlOperandKind struct {
	Kind       *string        `xml:"kind,attr"`
	Category   *string        `xml:"category,attr"`
	Doc        string         `xml:"doc,attr"`
	Enumerants []xmlEnumerant `xml:"enumerant"`
}

type xmlEnumerant struct {
	Name         *string      `xml:"enumerant,attr"`
	Value        *string      `xml:"value,attr"`
	Version      string       `xml:"version,attr"`
	Capabilities string       `xml:"capabilities,attr"`
	Extensions   string       `xml:"extensions,attr"`
	Parameters   []xmlOperand `xml:"parameter"`
}

// ParseXML decodes a grammar from an XML document that mirrors the JSON
// layout, with scalar fields carried as attributes:
//
//	<registry magic_number="0x07230203" major_version="1" minor_version="6" revision="1">
//	  <copyright><line>...</line></copyright>
//	  <instructions>
//	    <instruction opname="OpNop" opcode="0"/>
//	  </instructions>
//	  <operand_kinds>
//	    <operand_kind category="BitEnum" kind="ImageOperands">
//	      <enumerant enumerant="None" value="0x0000"/>
//	    </operand_kind>
//	  </operand_kinds>
//	</registry>
//
// An enumerant value starting with "0x" is a bit-flag value and anything else
// must be a decimal integer. Capabilities and extensions are space-separated
// lists.
func ParseXML(data []byte, shape Shape) (*Registry, error) {
	var doc xmlRegistry
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, structuralf("document is not a valid registry: %s", err)
	}

	r := &Registry{
		Shape:     shape,
		Copyright: doc.Copyright,
	}
	var err error

	switch shape {
	case Core:
		if doc.MagicNumber == nil || strings.TrimSpace(*doc.MagicNumber) == "" {
			return nil, structuralf("document: core grammar requires a numeric \"magic_number\"")
		}
		r.MagicNumber = strings.TrimSpace(*doc.MagicNumber)
		if _, err := strconv.ParseUint(r.MagicNumber, 0, 32); err != nil {
			return nil, structuralf("document: \"magic_number\" %q is not a number", r.MagicNumber)
		}
		if r.MajorVersion, err = xmlUint(doc.MajorVersion, "major_version", "document", 32, true); err != nil {
			return nil, err
		}
		if r.MinorVersion, err = xmlUint(doc.MinorVersion, "minor_version", "document", 32, true); err != nil {
			return nil, err
		}
	case Extension:
		if r.Version, err = xmlUint(doc.Version, "version", "document", 32, true); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported grammar shape %s", shape)
	}
	if r.Revision, err = xmlUint(doc.Revision, "revision", "document", 32, false); err != nil {
		return nil, err
	}

	if doc.Instructions == nil {
		return nil, structuralf("document: missing \"instructions\" element")
	}
	for i, raw := range doc.Instructions.List {
		inst, err := xmlInstructionModel(raw, fmt.Sprintf("instructions[%d]", i))
		if err != nil {
			return nil, err
		}
		r.Instructions = append(r.Instructions, inst)
	}

	if doc.OperandKinds != nil {
		for i, raw := range doc.OperandKinds.List {
			kind, err := xmlOperandKindModel(raw, fmt.Sprintf("operand_kinds[%d]", i))
			if err != nil {
				return nil, err
			}
			r.OperandKinds = append(r.OperandKinds, kind)
		}
	}

	return r, nil
}

func xmlInstructionModel(raw xmlInstruction, where string) (Instruction, error) {
	var inst Instruction
	if raw.Name == nil {
		return inst, structuralf("%s: missing \"opname\"", where)
	}
	inst.Name = *raw.Name
	where = fmt.Sprintf("%s (%s)", where, inst.Name)
	opcode, err := xmlUint(raw.Opcode, "opcode", where, 16, true)
	if err != nil {
		return inst, err
	}
	inst.Opcode = uint16(opcode)
	inst.Class = raw.Class
	inst.Version = raw.Version
	inst.Capabilities = NewSet(strings.Fields(raw.Capabilities)...)
	inst.Extensions = NewSet(strings.Fields(raw.Extensions)...)
	if inst.Operands, err = xmlOperands(raw.Operands, "operands", where); err != nil {
		return inst, err
	}
	return inst, nil
}

func xmlOperandKindModel(raw xmlOperandKind, where string) (OperandKind, error) {
	var kind OperandKind
	if raw.Kind == nil {
		return kind, structuralf("%s: missing \"kind\"", where)
	}
	kind.Kind = *raw.Kind
	where = fmt.Sprintf("%s (%s)", where, kind.Kind)
	if raw.Category == nil {
		return kind, structuralf("%s: missing \"category\"", where)
	}
	kind.Category = Category(*raw.Category)
	kind.Doc = raw.Doc

	if kind.HasEnumerants() {
		for i, rawEnum := range raw.Enumerants {
			e, err := xmlEnumerantModel(rawEnum, fmt.Sprintf("%s.enumerants[%d]", where, i))
			if err != nil {
				return kind, err
			}
			kind.Enumerants = append(kind.Enumerants, e)
		}
	}

	return kind, checkOperandKind(&kind, where)
}

func xmlEnumerantModel(raw xmlEnumerant, where string) (Enumerant, error) {
	var e Enumerant
	if raw.Name == nil {
		return e, structuralf("%s: missing \"enumerant\"", where)
	}
	e.Name = *raw.Name
	where = fmt.Sprintf("%s (%s)", where, e.Name)
	if raw.Value == nil {
		return e, structuralf("%s: missing \"value\"", where)
	}
	value := strings.TrimSpace(*raw.Value)
	if strings.HasPrefix(value, "0x") {
		e.Value = BitflagVal(value)
	} else {
		v, err := strconv.ParseUint(value, 10, 31)
		if err != nil {
			return e, structuralf("%s: value %q is neither a 31-bit unsigned integer nor a 0x-prefixed mask", where, value)
		}
		e.Value = IntVal(uint32(v))
	}
	e.Version = raw.Version
	e.Capabilities = NewSet(strings.Fields(raw.Capabilities)...)
	e.Extensions = NewSet(strings.Fields(raw.Extensions)...)
	var err error
	if e.Parameters, err = xmlOperands(raw.Parameters, "parameters", where); err != nil {
		return e, err
	}
	return e, nil
}

func xmlOperands(list []xmlOperand, key, where string) ([]Operand, error) {
	var ret []Operand
	for i, raw := range list {
		opWhere := fmt.Sprintf("%s.%s[%d]", where, key, i)
		if raw.Kind == nil {
			return nil, structuralf("%s: missing \"kind\"", opWhere)
		}
		q, ok := parseQuantifier(raw.Quantifier)
		if !ok {
			return nil, structuralf("%s: unknown quantifier %q", opWhere, raw.Quantifier)
		}
		ret = append(ret, Operand{
			Kind:       *raw.Kind,
			Name:       raw.Name,
			Quantifier: q,
		})
	}
	return ret, nil
}

func xmlUint(raw *string, key, where string, bits int, required bool) (uint32, error) {
	if raw == nil {
		if required {
			return 0, structuralf("%s: missing %q", where, key)
		}
		return 0, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(*raw), 10, bits)
	if err != nil {
		return 0, structuralf("%s: %q is not a %d-bit unsigned integer", where, key, bits)
	}
	return uint32(n), nil
}
