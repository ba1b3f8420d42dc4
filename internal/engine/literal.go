package engine

import (
	"bytes"
	"fmt"

	"github.com/coregx/ahocorasick"
)

// ahoCorasickSearcher matches a fixed set of non-empty byte strings.
//
// The automaton reports the match that ends first. FindAt turns that into the
// leftmost match, preferring earlier words at the same start, so it agrees
// with the alternation the regex engines compile for the same words.
type ahoCorasickSearcher struct {
	automaton *ahocorasick.Automaton
	words     [][]byte
	maxLen    int
}

func buildAhoCorasick(words []string, opts Options) (Searcher[byte], error) {
	if opts.IgnoreCase {
		return nil, fmt.Errorf("%w: %s does not support case-insensitive matching", ErrUnsupportedOption, AhoCorasick)
	}

	s := ahoCorasickSearcher{words: make([][]byte, len(words))}
	builder := ahocorasick.NewBuilder()
	for i, w := range words {
		s.words[i] = []byte(w)
		s.maxLen = max(s.maxLen, len(w))
		builder.AddPattern(s.words[i])
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	s.automaton = automaton

	return s, nil
}

func (s ahoCorasickSearcher) FindAt(hay []byte, at int) (int, int, bool, error) {
	// Words are never empty, so nothing can match at or past the end.
	if at < 0 || at >= len(hay) {
		return -1, -1, false, nil
	}
	m := s.automaton.Find(hay, at)
	if m == nil {
		return -1, -1, false, nil
	}

	// Every other match ends at or after m.End, so none starts before
	// m.End-maxLen.
	for i := max(at, m.End-s.maxLen); i <= m.Start; i++ {
		if end, ok := s.wordAt(hay, i); ok {
			return i, end, true, nil
		}
	}
	return m.Start, m.End, true, nil
}

// wordAt returns the end of the first word, in insertion order, found at i.
func (s ahoCorasickSearcher) wordAt(hay []byte, i int) (int, bool) {
	for _, w := range s.words {
		if bytes.HasPrefix(hay[i:], w) {
			return i + len(w), true
		}
	}
	return 0, false
}
