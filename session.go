package matchas

import (
	"iter"
)

// Matcher pairs a compiled pattern with a source. It is the builder that
// conversions start from: every As or Convert call opens its own Session, so
// a Matcher can be converted any number of times, to any shapes.
type Matcher[C Char] struct {
	pattern *Pattern[C]
	src     Source[C]
}

// Match pairs p with src. The source's character type must be the pattern's
// character type; a mismatch does not compile.
//
// Example:
//
//	m := matchas.Match(matchas.MustCompile[byte](`.`), matchas.Literal("test"))
//	println(matchas.As[int](m)) // 4
func Match[C Char](p *Pattern[C], src Source[C]) *Matcher[C] {
	return &Matcher[C]{pattern: p, src: src}
}

// Pattern returns the matcher's pattern.
func (m *Matcher[C]) Pattern() *Pattern[C] { return m.pattern }

// Source returns the matcher's source.
func (m *Matcher[C]) Source() Source[C] { return m.src }

// Session opens a new search session with its own cursor.
func (m *Matcher[C]) Session() *Session[C] {
	return &Session[C]{
		pattern: m.pattern,
		src:     m.src,
		limit:   m.pattern.config.MaxMatches,
	}
}

// Searcher is the character-type independent view of a Session that
// converters consume.
type Searcher interface {
	// SearchFrom runs one search over [pos, Len()).
	SearchFrom(pos int) (Outcome, bool)

	// All yields successive non-overlapping matches from the start.
	All() iter.Seq[Outcome]

	// Err returns the first engine failure, if any.
	Err() error

	// Len returns the source length in characters.
	Len() int

	// Text returns source characters [i, j) as a string.
	Text(i, j int) string
}

// Session runs searches of one pattern over one source.
//
// A Session is not safe for concurrent use: Next and All advance a shared
// cursor. Open one Session per goroutine.
type Session[C Char] struct {
	pattern *Pattern[C]
	src     Source[C]

	cursor  int
	yielded int
	limit   int
	done    bool
	err     error
}

var _ Searcher = (*Session[byte])(nil)

// SearchFrom runs exactly one search for the leftmost match starting at or
// after pos. It returns false when there is no match in [pos, Len()), when
// pos is out of range, or when the engine fails (see Err).
//
// Offsets in the Outcome are relative to the whole source. What the engine
// sees before pos depends on the character type: byte engines search
// Chars()[pos:] as if it were the whole input, so `^` and `\b` match at pos;
// the rune engine searches the whole source starting at pos, so anchors and
// lookbehind see the characters before it.
//
// SearchFrom does not move the cursor used by Next and All.
func (s *Session[C]) SearchFrom(pos int) (Outcome, bool) {
	if pos < 0 || pos > s.src.Len() {
		return Outcome{}, false
	}

	start, end, found, err := s.pattern.find(s.src.chars, pos)
	if err != nil {
		s.fail(err, pos)
		return Outcome{}, false
	}
	if !found {
		return Outcome{}, false
	}
	return Outcome{Start: start, End: end, src: s.src}, true
}

// Next returns the match after the previous one and advances the cursor.
//
// The next search starts where the previous match ended. After a zero-width
// match the cursor is forced one position further, so patterns that match
// the empty string still terminate: the empty pattern yields Len()+1
// matches. Next returns false once the source is exhausted, the configured
// MaxMatches is reached, or the engine fails.
func (s *Session[C]) Next() (Outcome, bool) {
	if s.done {
		return Outcome{}, false
	}
	if (s.limit > 0 && s.yielded >= s.limit) || s.cursor > s.src.Len() {
		s.done = true
		return Outcome{}, false
	}

	o, ok := s.SearchFrom(s.cursor)
	if !ok {
		s.done = true
		return Outcome{}, false
	}

	if o.Empty() {
		s.cursor = o.End + 1
	} else {
		s.cursor = o.End
	}
	s.yielded++
	return o, true
}

// All resets the session and yields every match in order, as Next would.
// Each step is a SearchFrom at the cursor, so for byte patterns anchors
// apply at every step: `^a` yields three matches in "aaa" for bytes and one
// for runes.
//
// Example:
//
//	s := matchas.MustCompile[byte](`\d`).Match(matchas.Literal("a1b2")).Session()
//	for o := range s.All() {
//	    println(o.Start, o.Text()) // 1 1, then 3 2
//	}
func (s *Session[C]) All() iter.Seq[Outcome] {
	return func(yield func(Outcome) bool) {
		s.Reset()
		for {
			o, ok := s.Next()
			if !ok || !yield(o) {
				return
			}
		}
	}
}

// Reset rewinds the cursor to the start of the source and clears Err.
func (s *Session[C]) Reset() {
	s.cursor = 0
	s.yielded = 0
	s.done = false
	s.err = nil
}

// Err returns the first engine failure since the last Reset. A search that
// simply finds nothing is not an error.
func (s *Session[C]) Err() error {
	return s.err
}

// Len returns the source length in characters.
func (s *Session[C]) Len() int {
	return s.src.Len()
}

// Text returns source characters [i, j) as a string.
func (s *Session[C]) Text(i, j int) string {
	return s.src.Text(i, j)
}

func (s *Session[C]) fail(err error, pos int) {
	s.pattern.config.Logger.Warn().
		Err(err).
		Str("engine", string(s.pattern.kind)).
		Str("pattern", s.pattern.expr).
		Int("position", pos).
		Msg("search aborted")
	if s.err == nil {
		s.err = err
	}
	s.done = true
}
