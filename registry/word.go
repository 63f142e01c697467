package registry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Word is a single 32-bit SPIR-V word, as used for bit-flag values.
type Word uint32

func (v Word) String() string {
	return fmt.Sprintf("0x%08x", uint32(v))
}

// SingleBit returns the position of the only set bit in v. ok is false for
// zero and for values with more than one bit set.
func (v Word) SingleBit() (pos int, ok bool) {
	if v == 0 || v&(v-1) != 0 {
		return 0, false
	}
	for v&1 == 0 {
		v >>= 1
		pos++
	}
	return pos, true
}

// ParseHex parses a bit-flag value such as "0x0010". The "0x" prefix is
// mandatory.
func ParseHex(s string) (Word, error) {
	if !strings.HasPrefix(s, "0x") {
		return 0, errors.Wrapf(ErrInvalidHexInt, "%q has no 0x prefix", s)
	}
	v, err := strconv.ParseUint(s[2:], 16, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidHexInt, "%q: %s", s, err)
	}
	return Word(v), nil
}
