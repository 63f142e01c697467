package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectShape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Core, DetectShape("spirv.core.grammar.json"))
	assert.Equal(t, Core, DetectShape("/tmp/grammar.xml"))
	assert.Equal(t, Extension, DetectShape("extinst.glsl.std.450.grammar.json"))
	assert.Equal(t, Extension, DetectShape("include/spirv/unified1/extinst.opencl.std.100.grammar.json"))
	assert.Equal(t, Core, DetectShape("include/extinst.d/core.json"))
}

func TestParseShapeAndFormat(t *testing.T) {
	t.Parallel()

	for _, s := range []Shape{Core, Extension} {
		got, ok := ParseShape(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := ParseShape("auto")
	assert.False(t, ok)

	for _, f := range []Format{Auto, JSON, XML} {
		got, ok := ParseFormat(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	_, ok = ParseFormat("yaml")
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	t.Parallel()

	var s Set
	assert.False(t, s.Has("Shader"))
	s.Add("Shader")
	s.Add("Kernel")
	s.Add("Shader")
	assert.True(t, s.Has("Shader"))
	assert.Equal(t, []string{"Kernel", "Shader"}, s.Sorted())
	assert.Equal(t, "Kernel, Shader", s.String())
	assert.Nil(t, NewSet())
}
