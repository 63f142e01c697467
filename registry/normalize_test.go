package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(es []Enumerant) []string {
	var ret []string
	for _, e := range es {
		ret = append(ret, e.Name)
	}
	return ret
}

func bitKind(enumerants ...Enumerant) *Registry {
	return &Registry{
		OperandKinds: []OperandKind{{
			Kind:       "Flags",
			Category:   CategoryBitEnum,
			Enumerants: enumerants,
		}},
	}
}

func TestNormalizeKeepsShortestName(t *testing.T) {
	t.Parallel()

	r := bitKind(
		Enumerant{Name: "Foo", Value: BitflagVal("0x1")},
		Enumerant{Name: "FooEXT", Value: BitflagVal("0x1")},
	)
	aliases, err := Normalize(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo"}, names(r.OperandKinds[0].Enumerants))
	assert.Equal(t, []Alias{{Kind: "Flags", Name: "FooEXT", Canonical: "Foo", Value: 1}}, aliases)
}

func TestNormalizeShorterAliasDeclaredLater(t *testing.T) {
	t.Parallel()

	r := bitKind(
		Enumerant{Name: "StorageBufferKHR", Value: BitflagVal("0x4")},
		Enumerant{Name: "Other", Value: BitflagVal("0x8")},
		Enumerant{Name: "StorageBuffer", Value: BitflagVal("0x0004")},
	)
	_, err := Normalize(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"Other", "StorageBuffer"}, names(r.OperandKinds[0].Enumerants))
}

func TestNormalizeTieBreakKeepsFirst(t *testing.T) {
	t.Parallel()

	r := &Registry{
		OperandKinds: []OperandKind{{
			Kind:     "Values",
			Category: CategoryValueEnum,
			Enumerants: []Enumerant{
				{Name: "AbcNV", Value: IntVal(7)},
				{Name: "Zero", Value: IntVal(0)},
				{Name: "AbcXY", Value: IntVal(7)},
			},
		}},
	}
	_, err := Normalize(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"AbcNV", "Zero"}, names(r.OperandKinds[0].Enumerants))
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	r := bitKind(
		Enumerant{Name: "None", Value: BitflagVal("0x0")},
		Enumerant{Name: "Read", Value: BitflagVal("0x1")},
		Enumerant{Name: "ReadKHR", Value: BitflagVal("0x1")},
		Enumerant{Name: "Write", Value: BitflagVal("0x2")},
		Enumerant{Name: "WriteINTEL", Value: BitflagVal("0x2")},
		Enumerant{Name: "ReadWrite", Value: BitflagVal("0x3")},
	)
	_, err := Normalize(r)
	require.NoError(t, err)
	once := r.OperandKinds[0].Enumerants
	assert.Equal(t, []string{"None", "Read", "Write", "ReadWrite"}, names(once))

	aliases, err := Normalize(r)
	require.NoError(t, err)
	assert.Empty(t, aliases)
	if diff := cmp.Diff(once, r.OperandKinds[0].Enumerants); diff != "" {
		t.Errorf("second Normalize changed enumerants (-once +twice):\n%s", diff)
	}
}

func TestNormalizeKindsAreIndependent(t *testing.T) {
	t.Parallel()

	r := &Registry{
		OperandKinds: []OperandKind{
			{Kind: "A", Category: CategoryValueEnum, Enumerants: []Enumerant{{Name: "X", Value: IntVal(1)}}},
			{Kind: "B", Category: CategoryValueEnum, Enumerants: []Enumerant{{Name: "Y", Value: IntVal(1)}}},
			{Kind: "IdRef", Category: CategoryID},
		},
	}
	aliases, err := Normalize(r)
	require.NoError(t, err)
	assert.Empty(t, aliases)
	assert.Equal(t, []string{"X"}, names(r.OperandKinds[0].Enumerants))
	assert.Equal(t, []string{"Y"}, names(r.OperandKinds[1].Enumerants))
}

func TestNormalizeInvalidHex(t *testing.T) {
	t.Parallel()

	r := bitKind(
		Enumerant{Name: "Good", Value: BitflagVal("0x1")},
		Enumerant{Name: "Bad", Value: BitflagVal("2")},
	)
	_, err := Normalize(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidHexInt))
	assert.Contains(t, err.Error(), `"Bad"`)
}
