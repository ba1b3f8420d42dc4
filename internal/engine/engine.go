// Package engine adapts third-party regex engines to a single search
// primitive: find the leftmost match at or after a position.
//
// Byte engines:
//   - Coregex: github.com/coregx/coregex, RE2 syntax, the default
//   - Binary: rsc.io/binaryregexp, every byte is one character
//   - AhoCorasick: github.com/coregx/ahocorasick, literal sets only
//
// Rune engines:
//   - Regexp2: github.com/dlclark/regexp2, backtracking, supports timeouts
//
// Byte engines work on raw bytes. How coregex treats multi-byte UTF-8
// sequences depends on its release: v0.10.0 matches `.` one byte at a time.
// Use Regexp2 when matches must fall on code point boundaries.
//
// IgnoreCase is applied to coregex patterns by rewriting case-folded literals
// into character classes (see foldCase); the other engines use their own
// case-insensitive mode.
//
// All searchers returned by this package are immutable and safe for
// concurrent use.
package engine

import (
	"errors"
	"fmt"
	"time"
)

// Kind names a regex engine.
type Kind string

// Supported engine kinds.
const (
	Coregex     Kind = "coregex"
	Binary      Kind = "binary"
	Regexp2     Kind = "regexp2"
	AhoCorasick Kind = "aho-corasick"
)

// Kinds lists every engine kind in a stable order.
var Kinds = []Kind{Coregex, Binary, Regexp2, AhoCorasick}

var (
	// ErrUnsupportedKind indicates the engine cannot search the requested
	// character type or input form.
	ErrUnsupportedKind = errors.New("unsupported engine kind")

	// ErrUnsupportedOption indicates the engine does not implement an option.
	ErrUnsupportedOption = errors.New("unsupported engine option")

	// ErrEmptyLiteral indicates a literal set contained an empty word.
	ErrEmptyLiteral = errors.New("empty literal")
)

// Options are the engine-independent compile options.
type Options struct {
	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool

	// MatchTimeout bounds a single search. Only Regexp2 honors it;
	// zero means no limit.
	MatchTimeout time.Duration
}

// Searcher finds the leftmost match in hay[at:].
//
// start and end are absolute offsets into hay. found is false when there is
// no match; err is non-nil only when the engine gave up (for example on a
// timeout), never for a plain miss.
type Searcher[E byte | rune] interface {
	FindAt(hay []E, at int) (start, end int, found bool, err error)
}

// Valid reports whether k names a known engine.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Bytes reports whether k searches byte input.
func (k Kind) Bytes() bool {
	return k == Coregex || k == Binary || k == AhoCorasick
}

// Runes reports whether k searches rune input.
func (k Kind) Runes() bool {
	return k == Regexp2
}

// CompileBytes compiles expr for a byte engine.
func CompileBytes(kind Kind, expr string, opts Options) (Searcher[byte], error) {
	switch kind {
	case Coregex:
		return compileCoregex(expr, opts)
	case Binary:
		return compileBinary(expr, opts)
	default:
		return nil, fmt.Errorf("%w: %q cannot compile byte patterns", ErrUnsupportedKind, kind)
	}
}

// CompileRunes compiles expr for a rune engine.
func CompileRunes(kind Kind, expr string, opts Options) (Searcher[rune], error) {
	switch kind {
	case Regexp2:
		return compileRegexp2(expr, opts)
	default:
		return nil, fmt.Errorf("%w: %q cannot compile rune patterns", ErrUnsupportedKind, kind)
	}
}

// LiteralBytes builds a byte searcher matching any of words.
func LiteralBytes(kind Kind, words []string, opts Options) (Searcher[byte], error) {
	if err := checkWords(words); err != nil {
		return nil, err
	}
	switch kind {
	case AhoCorasick:
		return buildAhoCorasick(words, opts)
	case Coregex, Binary:
		return CompileBytes(kind, alternation(words, quoteRE2), opts)
	default:
		return nil, fmt.Errorf("%w: %q cannot match byte literals", ErrUnsupportedKind, kind)
	}
}

// LiteralRunes builds a rune searcher matching any of words.
func LiteralRunes(kind Kind, words []string, opts Options) (Searcher[rune], error) {
	if err := checkWords(words); err != nil {
		return nil, err
	}
	switch kind {
	case Regexp2:
		return compileRegexp2(alternation(words, quoteRegexp2), opts)
	default:
		return nil, fmt.Errorf("%w: %q cannot match rune literals", ErrUnsupportedKind, kind)
	}
}

func checkWords(words []string) error {
	if len(words) == 0 {
		return fmt.Errorf("%w: no literals given", ErrEmptyLiteral)
	}
	for i, w := range words {
		if w == "" {
			return fmt.Errorf("%w at index %d", ErrEmptyLiteral, i)
		}
	}
	return nil
}

func alternation(words []string, quote func(string) string) string {
	n := 0
	for _, w := range words {
		n += len(w) + 1
	}
	buf := make([]byte, 0, n+4)
	buf = append(buf, "(?:"...)
	for i, w := range words {
		if i > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, quote(w)...)
	}
	buf = append(buf, ')')
	return string(buf)
}
