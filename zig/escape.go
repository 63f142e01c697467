package zig

import (
	"strconv"
	"unicode"
)

var keywords = map[string]struct{}{
	"addrspace": {}, "align": {}, "allowzero": {}, "and": {}, "anyframe": {},
	"anytype": {}, "asm": {}, "async": {}, "await": {}, "break": {},
	"callconv": {}, "catch": {}, "comptime": {}, "const": {}, "continue": {},
	"defer": {}, "else": {}, "enum": {}, "errdefer": {}, "error": {},
	"export": {}, "extern": {}, "fn": {}, "for": {}, "if": {}, "inline": {},
	"linksection": {}, "noalias": {}, "noinline": {}, "nosuspend": {},
	"opaque": {}, "or": {}, "orelse": {}, "packed": {}, "pub": {},
	"resume": {}, "return": {}, "struct": {}, "suspend": {}, "switch": {},
	"test": {}, "threadlocal": {}, "try": {}, "union": {}, "unreachable": {},
	"usingnamespace": {}, "var": {}, "volatile": {}, "while": {},

	// primitive values and types
	"anyerror": {}, "anyopaque": {}, "bool": {}, "comptime_float": {},
	"comptime_int": {}, "f16": {}, "f32": {}, "f64": {}, "f80": {},
	"f128": {}, "false": {}, "isize": {}, "noreturn": {}, "null": {},
	"true": {}, "type": {}, "undefined": {}, "usize": {}, "void": {},
	"c_char": {}, "c_short": {}, "c_ushort": {}, "c_int": {}, "c_uint": {},
	"c_long": {}, "c_ulong": {}, "c_longlong": {}, "c_ulonglong": {},
	"c_longdouble": {},
}

// Ident returns name as a valid Zig identifier, using the @"..." syntax
// for names that are keywords, primitives, or not otherwise valid.
func Ident(name string) string {
	if needsQuoting(name) {
		return "@" + strconv.Quote(name)
	}
	return name
}

func needsQuoting(name string) bool {
	if name == "" || name == "_" {
		return true
	}
	if _, ok := keywords[name]; ok {
		return true
	}
	if isIntType(name) {
		return true
	}
	for i, r := range name {
		switch {
		case r == '_' || (r <= unicode.MaxASCII && unicode.IsLetter(r)):
		case i > 0 && unicode.IsDigit(r):
		default:
			return true
		}
	}
	return false
}

// isIntType matches the arbitrary-width integer types such as u7 and i32.
func isIntType(name string) bool {
	if len(name) < 2 || (name[0] != 'u' && name[0] != 'i') {
		return false
	}
	for _, r := range name[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
