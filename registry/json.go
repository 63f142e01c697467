package registry

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// ParseJSON decodes a grammar in the JSON layout published with the SPIR-V
// headers, such as spirv.core.grammar.json or
// extinst.glsl.std.450.grammar.json.
func ParseJSON(data []byte, shape Shape) (*Registry, error) {
	if !gjson.ValidBytes(data) {
		return nil, structuralf("document is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, structuralf("document root is not a JSON object")
	}

	r := &Registry{Shape: shape}
	var err error

	r.Copyright, err = jsonStrings(doc, "copyright", "document")
	if err != nil {
		return nil, err
	}

	switch shape {
	case Core:
		magic := doc.Get("magic_number")
		switch magic.Type {
		case gjson.String:
			r.MagicNumber = magic.String()
			if _, err := strconv.ParseUint(r.MagicNumber, 0, 32); err != nil {
				return nil, structuralf("document: \"magic_number\" %q is not a number", r.MagicNumber)
			}
		case gjson.Number:
			r.MagicNumber = magic.Raw
			if _, err := strconv.ParseUint(r.MagicNumber, 10, 32); err != nil {
				return nil, structuralf("document: \"magic_number\" %s is not a 32-bit unsigned integer", r.MagicNumber)
			}
		default:
			return nil, structuralf("document: core grammar requires a numeric \"magic_number\"")
		}
		if r.MajorVersion, err = jsonUint(doc, "major_version", "document", 32, true); err != nil {
			return nil, err
		}
		if r.MinorVersion, err = jsonUint(doc, "minor_version", "document", 32, true); err != nil {
			return nil, err
		}
	case Extension:
		if r.Version, err = jsonUint(doc, "version", "document", 32, true); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported grammar shape %s", shape)
	}
	if r.Revision, err = jsonUint(doc, "revision", "document", 32, false); err != nil {
		return nil, err
	}

	insts := doc.Get("instructions")
	if !insts.IsArray() {
		return nil, structuralf("document: missing \"instructions\" array")
	}
	for i, raw := range insts.Array() {
		inst, err := jsonInstruction(raw, fmt.Sprintf("instructions[%d]", i))
		if err != nil {
			return nil, err
		}
		r.Instructions = append(r.Instructions, inst)
	}

	kinds := doc.Get("operand_kinds")
	if kinds.Exists() && !kinds.IsArray() {
		return nil, structuralf("document: \"operand_kinds\" is not an array")
	}
	for i, raw := range kinds.Array() {
		kind, err := jsonOperandKind(raw, fmt.Sprintf("operand_kinds[%d]", i))
		if err != nil {
			return nil, err
		}
		r.OperandKinds = append(r.OperandKinds, kind)
	}

	return r, nil
}

func jsonInstruction(raw gjson.Result, where string) (Instruction, error) {
	var inst Instruction
	if !raw.IsObject() {
		return inst, structuralf("%s: not an object", where)
	}
	var err error
	if inst.Name, err = jsonString(raw, "opname", where, true); err != nil {
		return inst, err
	}
	where = fmt.Sprintf("%s (%s)", where, inst.Name)
	opcode, err := jsonUint(raw, "opcode", where, 16, true)
	if err != nil {
		return inst, err
	}
	inst.Opcode = uint16(opcode)
	if inst.Class, err = jsonString(raw, "class", where, false); err != nil {
		return inst, err
	}
	if inst.Version, err = jsonString(raw, "version", where, false); err != nil {
		return inst, err
	}
	if inst.Operands, err = jsonOperands(raw, "operands", where); err != nil {
		return inst, err
	}
	if inst.Capabilities, err = jsonSet(raw, "capabilities", where); err != nil {
		return inst, err
	}
	if inst.Extensions, err = jsonSet(raw, "extensions", where); err != nil {
		return inst, err
	}
	return inst, nil
}

func jsonOperandKind(raw gjson.Result, where string) (OperandKind, error) {
	var kind OperandKind
	if !raw.IsObject() {
		return kind, structuralf("%s: not an object", where)
	}
	var err error
	if kind.Kind, err = jsonString(raw, "kind", where, true); err != nil {
		return kind, err
	}
	where = fmt.Sprintf("%s (%s)", where, kind.Kind)
	category, err := jsonString(raw, "category", where, true)
	if err != nil {
		return kind, err
	}
	kind.Category = Category(category)
	if kind.Doc, err = jsonString(raw, "doc", where, false); err != nil {
		return kind, err
	}

	enumerants := raw.Get("enumerants")
	if enumerants.Exists() && !enumerants.IsArray() {
		return kind, structuralf("%s: \"enumerants\" is not an array", where)
	}
	if kind.HasEnumerants() {
		for i, rawEnum := range enumerants.Array() {
			e, err := jsonEnumerant(rawEnum, fmt.Sprintf("%s.enumerants[%d]", where, i))
			if err != nil {
				return kind, err
			}
			kind.Enumerants = append(kind.Enumerants, e)
		}
	}

	return kind, checkOperandKind(&kind, where)
}

func jsonEnumerant(raw gjson.Result, where string) (Enumerant, error) {
	var e Enumerant
	if !raw.IsObject() {
		return e, structuralf("%s: not an object", where)
	}
	var err error
	if e.Name, err = jsonString(raw, "enumerant", where, true); err != nil {
		return e, err
	}
	where = fmt.Sprintf("%s (%s)", where, e.Name)

	value := raw.Get("value")
	switch value.Type {
	case gjson.Number:
		v, err := strconv.ParseUint(value.Raw, 10, 31)
		if err != nil {
			return e, structuralf("%s: value %s is not a 31-bit unsigned integer", where, value.Raw)
		}
		e.Value = IntVal(uint32(v))
	case gjson.String:
		e.Value = BitflagVal(value.String())
	default:
		return e, structuralf("%s: missing \"value\"", where)
	}

	if e.Version, err = jsonString(raw, "version", where, false); err != nil {
		return e, err
	}
	if e.Parameters, err = jsonOperands(raw, "parameters", where); err != nil {
		return e, err
	}
	if e.Capabilities, err = jsonSet(raw, "capabilities", where); err != nil {
		return e, err
	}
	if e.Extensions, err = jsonSet(raw, "extensions", where); err != nil {
		return e, err
	}
	return e, nil
}

func jsonOperands(obj gjson.Result, key, where string) ([]Operand, error) {
	list := obj.Get(key)
	if !list.Exists() {
		return nil, nil
	}
	if !list.IsArray() {
		return nil, structuralf("%s: %q is not an array", where, key)
	}
	var ret []Operand
	for i, raw := range list.Array() {
		opWhere := fmt.Sprintf("%s.%s[%d]", where, key, i)
		if !raw.IsObject() {
			return nil, structuralf("%s: not an object", opWhere)
		}
		var op Operand
		var err error
		if op.Kind, err = jsonString(raw, "kind", opWhere, true); err != nil {
			return nil, err
		}
		if op.Name, err = jsonString(raw, "name", opWhere, false); err != nil {
			return nil, err
		}
		rawQuant, err := jsonString(raw, "quantifier", opWhere, false)
		if err != nil {
			return nil, err
		}
		q, ok := parseQuantifier(rawQuant)
		if !ok {
			return nil, structuralf("%s: unknown quantifier %q", opWhere, rawQuant)
		}
		op.Quantifier = q
		ret = append(ret, op)
	}
	return ret, nil
}

func jsonString(obj gjson.Result, key, where string, required bool) (string, error) {
	v := obj.Get(key)
	switch {
	case !v.Exists():
		if required {
			return "", structuralf("%s: missing %q", where, key)
		}
		return "", nil
	case v.Type != gjson.String:
		return "", structuralf("%s: %q must be a string", where, key)
	}
	return v.String(), nil
}

func jsonUint(obj gjson.Result, key, where string, bits int, required bool) (uint32, error) {
	v := obj.Get(key)
	switch {
	case !v.Exists():
		if required {
			return 0, structuralf("%s: missing %q", where, key)
		}
		return 0, nil
	case v.Type != gjson.Number:
		return 0, structuralf("%s: %q must be a number", where, key)
	}
	n, err := strconv.ParseUint(v.Raw, 10, bits)
	if err != nil {
		return 0, structuralf("%s: %q is not a %d-bit unsigned integer", where, key, bits)
	}
	return uint32(n), nil
}

func jsonStrings(obj gjson.Result, key, where string) ([]string, error) {
	v := obj.Get(key)
	if !v.Exists() {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, structuralf("%s: %q is not an array", where, key)
	}
	var ret []string
	for _, item := range v.Array() {
		if item.Type != gjson.String {
			return nil, structuralf("%s: %q must only contain strings", where, key)
		}
		ret = append(ret, item.String())
	}
	return ret, nil
}

func jsonSet(obj gjson.Result, key, where string) (Set, error) {
	names, err := jsonStrings(obj, key, where)
	if err != nil {
		return nil, err
	}
	return NewSet(names...), nil
}
