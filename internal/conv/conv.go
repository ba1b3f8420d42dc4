// Package conv provides zero-copy conversions between character slices and
// the byte and rune buffers the regex engines operate on.
//
// Every view returned here aliases its input. Callers must not mutate the
// input while a view is in use, and must not mutate a view obtained from a
// Go string at all.
package conv

import "unsafe"

// Char is the set of character types a pattern can be compiled for.
// Byte-sized characters are searched as bytes; 4-byte characters as code points.
type Char interface {
	~byte | ~rune
}

// IsByte reports whether C is byte-sized.
//
//go:inline
func IsByte[C Char]() bool {
	var zero C
	return unsafe.Sizeof(zero) == 1
}

// Bytes reinterprets cs as a byte slice without copying.
// Panics if C is not byte-sized.
func Bytes[C Char](cs []C) []byte {
	if !IsByte[C]() {
		panic("conv: Bytes called with a rune-sized character type")
	}
	if len(cs) == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(cs))), len(cs))
}

// Runes reinterprets cs as a rune slice without copying.
// Panics if C is not rune-sized.
func Runes[C Char](cs []C) []rune {
	if IsByte[C]() {
		panic("conv: Runes called with a byte-sized character type")
	}
	if len(cs) == 0 {
		return []rune{}
	}
	return unsafe.Slice((*rune)(unsafe.Pointer(unsafe.SliceData(cs))), len(cs))
}

// Chars reinterprets a byte or rune slice as []C. The element size of b must
// match the size of C.
func Chars[C Char, E Char](b []E) []C {
	if IsByte[C]() != IsByte[E]() {
		panic("conv: Chars called with mismatched character sizes")
	}
	if len(b) == 0 {
		return []C{}
	}
	return unsafe.Slice((*C)(unsafe.Pointer(unsafe.SliceData(b))), len(b))
}

// Text returns the characters of cs as a Go string. Byte-sized characters are
// copied verbatim; rune-sized characters are UTF-8 encoded.
func Text[C Char](cs []C) string {
	if IsByte[C]() {
		return string(Bytes(cs))
	}
	return string(Runes(cs))
}

// StringBytes returns the bytes backing s without copying.
// The result must never be written to.
func StringBytes(s string) []byte {
	if len(s) == 0 {
		return []byte{}
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
