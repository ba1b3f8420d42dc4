// Package matchas converts regular expression matches into the result shape
// the caller asks for.
//
// The requested type decides what is computed:
//
//	p := matchas.MustCompile[byte](`.`)
//	m := p.Match(matchas.Literal("test"))
//
//	matchas.As[bool](m)           // true: did it match
//	matchas.As[int](m)            // 4: how many non-overlapping matches
//	matchas.As[string](m)         // "t": the first match
//	matchas.As[[]string](m)       // ["t" "e" "s" "t"]: every match
//	matchas.As[matchas.Triple](m) // {"" "t" "est"}: before, match, after
//
// All shapes are driven by one search loop (Session.All) or by a single
// search (Session.SearchFrom). After a zero-width match the loop steps one
// character forward, so patterns that can match the empty string always
// terminate.
//
// Character types:
//
// Patterns are compiled for a character type C. Byte patterns search
// []byte-like sources with coregex (default) or rsc.io/binaryregexp and
// report byte offsets. Byte engines may match part of a multi-byte UTF-8
// sequence (coregex v0.10.0 matches `.` per byte); use rune patterns, which
// search []rune-like sources with regexp2 and report code point offsets, when
// matches must be whole characters.
//
// Byte engines search the rest of the source from each position as if it
// were the whole input, so `^`, `\A` and `\b` treat every search position as
// the start of text: `^a` counts 3 matches in "aaa" as a byte pattern. Rune
// patterns see the characters before the position and count 1.
//
// Matching a source of the wrong character type is a compile error; Adapt
// reports it at run time as a *TypeMismatchError for dynamically typed input.
//
// Sources:
//
//	matchas.Literal("text")        // owned copy
//	matchas.String(&s)             // borrowed, zero-copy
//	matchas.Range(buf)             // borrowed slice of any Char type
//	matchas.RuneLiteral("texte")   // owned, decoded to code points
//
// Extending:
//
// Register adds a converter for a new result type; Convert reaches it, and
// reports *UnsupportedResultTypeError for types with no converter. As is
// limited to the built-in Shape types and checks that at compile time.
//
// Concurrency:
//
// Patterns are immutable and may be shared between goroutines. Sessions are
// not; every conversion opens its own. ConvertAll fans a pattern out over
// many sources.
package matchas
