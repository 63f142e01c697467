package registry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	v, err := ParseHex("0x10")
	require.NoError(t, err)
	assert.Equal(t, Word(16), v)

	v, err = ParseHex("0x80000000")
	require.NoError(t, err)
	assert.Equal(t, Word(1<<31), v)

	for _, bad := range []string{"10", "", "0x", "0xZZ", "0X10", "0x100000000"} {
		_, err := ParseHex(bad)
		assert.Truef(t, errors.Is(err, ErrInvalidHexInt), "ParseHex(%q) returned %v", bad, err)
	}
}

func TestWordSingleBit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		v   Word
		pos int
		ok  bool
	}{
		{0x0, 0, false},
		{0x1, 0, true},
		{0x2, 1, true},
		{0x3, 0, false},
		{0x100, 8, true},
		{0x80000000, 31, true},
		{0x80000001, 0, false},
	}
	for _, tc := range testCases {
		pos, ok := tc.v.SingleBit()
		assert.Equal(t, tc.ok, ok, "%s", tc.v)
		if tc.ok {
			assert.Equal(t, tc.pos, pos, "%s", tc.v)
		}
	}
}

func TestWordString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "0x07230203", Word(0x07230203).String())
	assert.Equal(t, "0x00000001", Word(1).String())
}
