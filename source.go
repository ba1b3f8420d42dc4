package matchas

import (
	"reflect"

	"github.com/coregx/matchas/internal/conv"
)

// Char is the set of character types a pattern can be compiled for.
//
// Byte-sized types (byte, or any ~byte type) search input one byte at a time
// and report byte offsets. Rune-sized types (rune, or any ~rune type) search
// code points and report code point offsets.
type Char = conv.Char

// Ownership tells whether a Source holds its own copy of the characters.
type Ownership int

const (
	// Borrowed sources alias caller memory. The caller must keep the memory
	// alive and unchanged while the source is in use.
	Borrowed Ownership = iota

	// Owned sources hold a private copy made at construction.
	Owned
)

// String returns "borrowed" or "owned".
func (o Ownership) String() string {
	if o == Owned {
		return "owned"
	}
	return "borrowed"
}

// Source is a normalized, read-only view of the characters to search.
//
// Positions run from Begin (always 0) to End (Len). The zero Source is empty.
type Source[C Char] struct {
	chars     []C
	ownership Ownership
}

// Literal returns an owned byte source holding a copy of s.
//
// Example:
//
//	src := matchas.Literal("test")
//	println(src.Len(), src.Ownership().String()) // 4 owned
func Literal(s string) Source[byte] {
	return Source[byte]{chars: []byte(s), ownership: Owned}
}

// RuneLiteral returns an owned rune source holding the code points of s.
// Invalid UTF-8 decodes to U+FFFD.
func RuneLiteral(s string) Source[rune] {
	return Source[rune]{chars: []rune(s), ownership: Owned}
}

// String returns a byte source borrowing the bytes of *s without copying.
// A nil pointer yields an empty source.
func String(s *string) Source[byte] {
	if s == nil {
		return Source[byte]{chars: []byte{}}
	}
	return Source[byte]{chars: conv.StringBytes(*s), ownership: Borrowed}
}

// Range returns a source borrowing cs. The element type must be the
// pattern's character type, which Match enforces at compile time.
func Range[C Char](cs []C) Source[C] {
	return Source[C]{chars: cs, ownership: Borrowed}
}

// Adapt builds a Source from a dynamically typed value, for callers that only
// learn the input type at run time.
//
// Accepted values are Source[C], []C, string, *string, []byte (byte-sized C
// only) and []rune (rune-sized C only). Strings and string pointers for a
// rune-sized C are decoded into an owned copy. Anything else returns a
// *TypeMismatchError.
func Adapt[C Char](v any) (Source[C], error) {
	switch x := v.(type) {
	case Source[C]:
		return x, nil
	case []C:
		return Range(x), nil
	case string:
		if conv.IsByte[C]() {
			return Source[C]{chars: conv.Chars[C]([]byte(x)), ownership: Owned}, nil
		}
		return Source[C]{chars: conv.Chars[C]([]rune(x)), ownership: Owned}, nil
	case *string:
		if x == nil {
			return Source[C]{chars: []C{}}, nil
		}
		if conv.IsByte[C]() {
			return Source[C]{chars: conv.Chars[C](conv.StringBytes(*x)), ownership: Borrowed}, nil
		}
		return Source[C]{chars: conv.Chars[C]([]rune(*x)), ownership: Owned}, nil
	case []byte:
		if conv.IsByte[C]() {
			return Range(conv.Chars[C](x)), nil
		}
	case []rune:
		if !conv.IsByte[C]() {
			return Range(conv.Chars[C](x)), nil
		}
	}

	return Source[C]{}, &TypeMismatchError{
		Want: reflect.TypeFor[C](),
		Got:  reflect.TypeOf(v),
	}
}

// Len returns the number of characters.
func (s Source[C]) Len() int { return len(s.chars) }

// Begin returns the first position, always 0.
func (s Source[C]) Begin() int { return 0 }

// End returns the position one past the last character.
func (s Source[C]) End() int { return len(s.chars) }

// Ownership reports whether the source borrows or owns its characters.
func (s Source[C]) Ownership() Ownership { return s.ownership }

// Chars returns the underlying characters. The slice must not be modified.
func (s Source[C]) Chars() []C { return s.chars }

// Text returns characters [i, j) as a string. Rune sources are UTF-8 encoded.
func (s Source[C]) Text(i, j int) string {
	return conv.Text(s.chars[i:j])
}

// String returns the whole source as a string.
func (s Source[C]) String() string {
	return conv.Text(s.chars)
}
