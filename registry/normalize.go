package registry

import (
	"github.com/pkg/errors"
)

// Alias describes an enumerant that Normalize removed because another
// enumerant of the same operand kind has the same value.
type Alias struct {
	Kind      string
	Name      string
	Canonical string
	Value     Word
}

// Normalize collapses enumerants that share a numeric value down to a single
// canonical enumerant, modifying r in place. Within each group the shortest
// name wins, and the first-declared one wins among names of equal length.
// This usually keeps the core name of a value that was promoted from a
// vendor extension, such as "Foo" over "FooKHR".
//
// The surviving enumerants keep their original relative order. Running
// Normalize again on its own result changes nothing.
//
// The returned aliases are in the order they were removed.
func Normalize(r *Registry) ([]Alias, error) {
	var ret []Alias
	for i := range r.OperandKinds {
		aliases, err := normalizeKind(&r.OperandKinds[i])
		if err != nil {
			return nil, err
		}
		ret = append(ret, aliases...)
	}
	return ret, nil
}

func normalizeKind(k *OperandKind) ([]Alias, error) {
	if len(k.Enumerants) == 0 {
		return nil, nil
	}

	// canonical maps each distinct value to the index of the enumerant
	// that will represent it.
	canonical := make(map[Word]int, len(k.Enumerants))
	values := make([]Word, len(k.Enumerants))
	for i, e := range k.Enumerants {
		v, err := e.Value.Numeric()
		if err != nil {
			return nil, errors.Wrapf(err, "operand kind %q, enumerant %q", k.Kind, e.Name)
		}
		values[i] = v
		best, seen := canonical[v]
		if !seen || len(e.Name) < len(k.Enumerants[best].Name) {
			canonical[v] = i
		}
	}

	var aliases []Alias
	for i, e := range k.Enumerants {
		if best := canonical[values[i]]; best != i {
			aliases = append(aliases, Alias{
				Kind:      k.Kind,
				Name:      e.Name,
				Canonical: k.Enumerants[best].Name,
				Value:     values[i],
			})
		}
	}
	if len(aliases) == 0 {
		return nil, nil
	}

	kept := make([]Enumerant, 0, len(k.Enumerants)-len(aliases))
	for i, e := range k.Enumerants {
		if canonical[values[i]] == i {
			kept = append(kept, e)
		}
	}
	k.Enumerants = kept
	return aliases, nil
}
