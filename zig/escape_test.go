package zig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdent(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"foo":            "foo",
		"bar_ext":        "bar_ext",
		"float16_image":  "float16_image",
		"_reserved":      "_reserved",
		"1d":             `@"1d"`,
		"const":          `@"const"`,
		"inline":         `@"inline"`,
		"type":           `@"type"`,
		"u8":             `@"u8"`,
		"i32":            `@"i32"`,
		"u":              "u",
		"uint":           "uint",
		"_":              `@"_"`,
		"":               `@""`,
		"has space":      `@"has space"`,
		"comptime_float": `@"comptime_float"`,
	}
	for in, want := range testCases {
		assert.Equal(t, want, Ident(in), "Ident(%q)", in)
	}
}
