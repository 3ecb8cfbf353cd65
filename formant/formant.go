// Package formant parses formant column names and derives the names of the
// columns computed from them.
//
// A formant column name is a non-digit prefix followed by exactly one ASCII
// digit as its final character, e.g. "F1" or "f2". The digit is the formant
// number.
package formant

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidName is returned for names that do not end in exactly one digit.
var ErrInvalidName = errors.New("formant: invalid formant name")

// Name is a parsed formant column name.
type Name struct {
	Original string
	Prefix   string
	Index    int
}

// Parse splits name into its prefix and formant index. Names without a
// digit, with more than one digit ("F12"), or whose digit is not the last
// character fail with [ErrInvalidName].
func Parse(name string) (Name, error) {
	digits := 0
	pos := -1

	for i := 0; i < len(name); i++ {
		if name[i] >= '0' && name[i] <= '9' {
			digits++
			pos = i
		}
	}

	if digits != 1 || pos != len(name)-1 {
		return Name{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	idx, _ := strconv.Atoi(name[pos:])

	return Name{Original: name, Prefix: name[:pos], Index: idx}, nil
}

// ParseAll parses every name, stopping at the first invalid one.
func ParseAll(names []string) ([]Name, error) {
	out := make([]Name, len(names))
	for i, n := range names {
		p, err := Parse(n)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}

// BarkColumn returns the name of the Bark-scale column: "z" followed by the
// formant index.
func (n Name) BarkColumn() string {
	return "z" + strconv.Itoa(n.Index)
}

// ZScoreColumn returns the name of the Lobanov column: "zsc" followed by the
// original name.
func (n Name) ZScoreColumn() string {
	return "zsc" + n.Original
}

// String returns the original column name.
func (n Name) String() string { return n.Original }
