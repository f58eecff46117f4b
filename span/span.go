// Package span returns views into caller-owned text without copying it.
//
// Results of LongerOf, Longer and FirstWord alias their inputs. For string
// inputs that is always safe. For []byte inputs the result shares backing
// storage with the argument it came from: writes to that argument after
// the call are visible through the result, so callers must not mutate or
// reuse the input while the result is still in use. OwnedFirstWord returns
// a copy for callers that cannot keep that promise.
//
// Lengths are measured in bytes unless a function says otherwise.
package span

import (
	"bytes"
	"unicode/utf8"
)

// Text is any string or byte slice type.
type Text interface {
	~string | ~[]byte
}

// Side names which argument a result aliases.
type Side int

const (
	First Side = iota
	Second
)

func (s Side) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	}
	return "unknown"
}

// Longer returns the longer of a and b along with the side it came from.
// Equal lengths select b.
func Longer[S Text](a, b S) (S, Side) {
	if len(a) > len(b) {
		return a, First
	}
	return b, Second
}

// LongerOf returns a if it is strictly longer than b, otherwise b.
func LongerOf[S Text](a, b S) S {
	s, _ := Longer(a, b)
	return s
}

// LongerOfRunes is LongerOf measured in runes instead of bytes.
func LongerOfRunes(a, b string) string {
	if utf8.RuneCountInString(a) > utf8.RuneCountInString(b) {
		return a
	}
	return b
}

// FirstWord returns s up to, but not including, the first ASCII space.
// If s has no space it is returned unchanged.
//
// The scan is bytewise. A 0x20 byte never appears inside a multi-byte
// UTF-8 sequence, so for valid UTF-8 the cut always falls on a rune
// boundary.
func FirstWord[S Text](s S) S {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return s[:i]
		}
	}
	return s
}

// OwnedFirstWord is FirstWord for byte slices, returning a copy that does
// not share storage with s.
func OwnedFirstWord(s []byte) []byte {
	return bytes.Clone(FirstWord(s))
}
