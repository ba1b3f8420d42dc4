package matchas

import (
	"fmt"
	"reflect"
	"sync"
)

// Shape is the set of result types with a built-in conversion:
//
//	bool      whether the pattern matches anywhere
//	int       number of non-overlapping matches
//	string    text of the first match, "" if none
//	[]string  text of every match in order, empty if none
//	Triple    prefix, match and suffix around the first match
//
// As only accepts these types, so asking for anything else is a compile
// error. Shapes added with Register are reached through Convert.
type Shape interface {
	bool | int | string | []string | Triple
}

// Triple holds the source split around the first match: the text before it,
// the match, and the text after it.
//
// When nothing matches, the whole source is the prefix and the match and
// suffix are empty, so Prefix()+Match()+Suffix() always reproduces the
// source.
type Triple [3]string

// Prefix returns the text before the match.
func (t Triple) Prefix() string { return t[0] }

// Match returns the matched text.
func (t Triple) Match() string { return t[1] }

// Suffix returns the text after the match.
func (t Triple) Suffix() string { return t[2] }

// Converter turns the matches of a session into a T.
//
// Converters must only use the Searcher they are given; each call gets a
// fresh session. The returned error should be s.Err() unless the converter
// has its own failure modes.
type Converter[T any] interface {
	Convert(s Searcher) (T, error)
}

// ConverterFunc adapts a function to a Converter.
type ConverterFunc[T any] func(s Searcher) (T, error)

// Convert calls f(s).
func (f ConverterFunc[T]) Convert(s Searcher) (T, error) {
	return f(s)
}

// registry maps a result type to its single converter.
var registry = struct {
	sync.RWMutex
	converters map[reflect.Type]any
}{
	converters: make(map[reflect.Type]any),
}

func init() {
	mustRegister[bool](ConverterFunc[bool](toBool))
	mustRegister[int](ConverterFunc[int](toCount))
	mustRegister[string](ConverterFunc[string](toFirst))
	mustRegister[[]string](ConverterFunc[[]string](toList))
	mustRegister[Triple](ConverterFunc[Triple](toTriple))
}

// Register adds the conversion strategy for T. Each type has exactly one
// strategy: registering a second one, including for a built-in Shape,
// returns an error wrapping ErrDuplicateConverter.
//
// Example:
//
//	type Spans [][2]int
//
//	err := matchas.Register[Spans](matchas.ConverterFunc[Spans](func(s matchas.Searcher) (Spans, error) {
//	    var out Spans
//	    for o := range s.All() {
//	        out = append(out, [2]int{o.Start, o.End})
//	    }
//	    return out, s.Err()
//	}))
func Register[T any](c Converter[T]) error {
	if c == nil {
		return fmt.Errorf("matchas: nil converter for %v", reflect.TypeFor[T]())
	}

	t := reflect.TypeFor[T]()
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.converters[t]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateConverter, t)
	}
	registry.converters[t] = c
	return nil
}

func mustRegister[T any](c Converter[T]) {
	if err := Register[T](c); err != nil {
		panic(err)
	}
}

func lookup[T any]() (Converter[T], error) {
	t := reflect.TypeFor[T]()
	registry.RLock()
	c, ok := registry.converters[t]
	registry.RUnlock()
	if !ok {
		return nil, &UnsupportedResultTypeError{Type: t}
	}
	return c.(Converter[T]), nil
}

// As converts the matches of m into the requested shape.
//
// The shape is chosen by T alone:
//
//	b := matchas.As[bool](m)     // true
//	n := matchas.As[int](m)      // 4
//	s := matchas.As[string](m)   // "t"
//	l := matchas.As[[]string](m) // ["t" "e" "s" "t"]
//	t := matchas.As[matchas.Triple](m) // {"" "t" "est"}
//
// for m = Match(MustCompile[byte](`.`), Literal("test")).
//
// If the engine fails part way (a regexp2 timeout), As returns what was
// gathered up to that point; the failure is logged at warn level. Use Convert
// to receive the error.
func As[T Shape, C Char](m *Matcher[C]) T {
	v, _ := Convert[T](m)
	return v
}

// Convert converts the matches of m into any registered result type.
//
// An unregistered T returns a *UnsupportedResultTypeError before any search
// runs. Otherwise the converter's value is returned together with the first
// engine failure, if any.
func Convert[T any, C Char](m *Matcher[C]) (T, error) {
	c, err := lookup[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Convert(m.Session())
}

// Bool reports whether the pattern matches anywhere in the source.
func Bool[C Char](m *Matcher[C]) bool { return As[bool](m) }

// Count returns the number of non-overlapping matches.
func Count[C Char](m *Matcher[C]) int { return As[int](m) }

// First returns the text of the first match, or "" if there is none.
func First[C Char](m *Matcher[C]) string { return As[string](m) }

// List returns the text of every match in order.
func List[C Char](m *Matcher[C]) []string { return As[[]string](m) }

// Split returns the source split around the first match.
func Split[C Char](m *Matcher[C]) Triple { return As[Triple](m) }

func toBool(s Searcher) (bool, error) {
	_, ok := s.SearchFrom(0)
	return ok, s.Err()
}

func toCount(s Searcher) (int, error) {
	n := 0
	for range s.All() {
		n++
	}
	return n, s.Err()
}

func toFirst(s Searcher) (string, error) {
	o, ok := s.SearchFrom(0)
	if !ok {
		return "", s.Err()
	}
	return o.Text(), nil
}

func toList(s Searcher) ([]string, error) {
	matches := []string{}
	for o := range s.All() {
		matches = append(matches, o.Text())
	}
	return matches, s.Err()
}

func toTriple(s Searcher) (Triple, error) {
	o, ok := s.SearchFrom(0)
	if !ok {
		return Triple{s.Text(0, s.Len()), "", ""}, s.Err()
	}
	return Triple{o.Prefix(), o.Text(), o.Suffix()}, nil
}
