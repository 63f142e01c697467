package ident

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		style Style
		token string
		want  string
	}{
		{Snake, "Foo", "foo"},
		{Snake, "BarEXT", "bar_ext"},
		{Snake, "Nop", "nop"},
		{Snake, "SourceContinued", "source_continued"},
		{Snake, "FPFastMathMode", "fp_fast_math_mode"},
		{Snake, "Float16ImageAMD", "float16_image_amd"},
		{Snake, "1D", "1d"},
		{Snake, "R11fG11fB10f", "r11f_g11f_b10f"},
		{Snake, "Rgb10A2", "rgb10a2"},
		{Snake, "Rgba8Snorm", "rgba8_snorm"},
		{Snake, "SPV_KHR_ray_query", "spv_khr_ray_query"},
		{Snake, "GLSL", "glsl"},
		{Snake, "FAbs", "f_abs"},
		{Snake, "KHR", "khr"},
		{Snake, "SPIRVKHR", "spirv_khr"},
		{Snake, "HlslSemanticGOOGLE", "hlsl_semantic_google"},
		{Snake, "RayQueryNEXT", "ray_query_next"},
		{Snake, "RayQueryNEXTKHR", "ray_query_next_khr"},
		{Snake, "OpaqueNV", "opaque_nv"},
		{Title, "RayQueryNEXT", "RayQueryNext"},
		{Title, "MyKind", "MyKind"},
		{Title, "BarEXT", "BarEXT"},
		{Title, "FPFastMathMode", "FpFastMathMode"},
		{Title, "image_operands", "ImageOperands"},
		{Title, "RayTracingNV", "RayTracingNV"},
		{Screaming, "RayTracingKHR", "RAY_TRACING_KHR"},
		{Screaming, "ImageOperands", "IMAGE_OPERANDS"},
		{Screaming, "GLSL.std.450", "GLSL_STD_450"},
	}
	r := New()
	for _, tc := range testCases {
		assert.Equal(t, tc.want, r.Format(tc.style, tc.token), "%s(%q)", tc.style, tc.token)
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	r := New()
	assert.Equal(t, []string{"Image", "Gather", "Bias", "Lod", "AMD"}, r.Words("ImageGatherBiasLodAMD"))
	assert.Equal(t, []string{"Input4x8", "Bit", "Packed", "KHR"}, r.Words("Input4x8BitPackedKHR"))
	assert.Equal(t, []string{"Ray", "Query", "NEXT"}, r.Words("RayQueryNEXT"))
	assert.Empty(t, r.Words(""))
}

func TestCustomTags(t *testing.T) {
	t.Parallel()

	withNVX := New("nv", "NVX")
	assert.Equal(t, []string{"NVX", "NV"}, withNVX.Tags())
	assert.Equal(t, "FooNVX", withNVX.Format(Title, "FooNVX"))
	assert.Equal(t, "FooNV", withNVX.Format(Title, "FooNV"))

	onlyNV := New("NV")
	assert.Equal(t, "FooNvx", onlyNV.Format(Title, "FooNVX"))

	// Tags not in the renderer's set are ordinary words.
	assert.Equal(t, "BarExt", onlyNV.Format(Title, "BarEXT"))
	assert.ElementsMatch(t, DefaultTags, New().Tags())
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	r := New()
	var first, second bytes.Buffer
	require.NoError(t, r.Render(&first, Snake, "MakeTexelAvailableKHR"))
	require.NoError(t, r.Render(&second, Snake, "MakeTexelAvailableKHR"))
	assert.Equal(t, "make_texel_available_khr", first.String())
	assert.Equal(t, first.String(), second.String())

	// A fresh renderer, without the cached segmentation, agrees.
	assert.Equal(t, first.String(), New().Format(Snake, "MakeTexelAvailableKHR"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderWriteError(t *testing.T) {
	t.Parallel()

	err := New().Render(failingWriter{}, Snake, "Foo")
	assert.EqualError(t, err, "disk full")
}
