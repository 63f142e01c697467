package registry

import (
	"sort"
	"strings"
)

// Set is an unordered collection of names, used for the capabilities and
// extensions that an instruction or enumerant depends on.
type Set map[string]struct{}

// NewSet returns a set containing the given names.
func NewSet(names ...string) Set {
	if len(names) == 0 {
		return nil
	}
	ret := make(Set, len(names))
	for _, n := range names {
		ret.Add(n)
	}
	return ret
}

func (ss Set) Has(s string) bool {
	_, ok := ss[s]
	return ok
}

func (ss *Set) Add(s string) {
	if *ss == nil {
		*ss = make(Set)
	}
	(*ss)[s] = struct{}{}
}

// Sorted returns the members of the set in lexical order.
func (ss Set) Sorted() []string {
	ret := make([]string, 0, len(ss))
	for s := range ss {
		ret = append(ret, s)
	}
	sort.Strings(ret)
	return ret
}

func (ss Set) String() string {
	return strings.Join(ss.Sorted(), ", ")
}
