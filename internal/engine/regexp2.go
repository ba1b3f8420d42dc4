package engine

import (
	"github.com/dlclark/regexp2"
)

// regexp2Searcher searches code points. Unlike the byte engines it keeps the
// whole input in view, so lookbehind and \b see the characters before at.
type regexp2Searcher struct {
	re *regexp2.Regexp
}

func compileRegexp2(expr string, opts Options) (Searcher[rune], error) {
	flags := regexp2.None
	if opts.IgnoreCase {
		flags |= regexp2.IgnoreCase
	}

	re, err := regexp2.Compile(expr, flags)
	if err != nil {
		return nil, err
	}
	if opts.MatchTimeout > 0 {
		re.MatchTimeout = opts.MatchTimeout
	}

	return regexp2Searcher{re: re}, nil
}

func (s regexp2Searcher) FindAt(hay []rune, at int) (int, int, bool, error) {
	if at < 0 || at > len(hay) {
		return -1, -1, false, nil
	}
	m, err := s.re.FindRunesMatchStartingAt(hay, at)
	if err != nil {
		return -1, -1, false, err
	}
	if m == nil {
		return -1, -1, false, nil
	}
	return m.Index, m.Index + m.Length, true, nil
}

func quoteRegexp2(s string) string {
	return regexp2.Escape(s)
}
