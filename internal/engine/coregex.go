package engine

import (
	"github.com/coregx/coregex"
	"rsc.io/binaryregexp"
)

// indexFinder is the subset of the stdlib-compatible regexp API the byte
// engines share.
type indexFinder interface {
	FindIndex(b []byte) []int
}

// sliceSearcher searches hay[at:] and shifts the result back to absolute
// offsets. Anchors and word boundaries see at as the start of input.
type sliceSearcher struct {
	re indexFinder
}

func (s sliceSearcher) FindAt(hay []byte, at int) (int, int, bool, error) {
	if at < 0 || at > len(hay) {
		return -1, -1, false, nil
	}
	loc := s.re.FindIndex(hay[at:])
	if loc == nil {
		return -1, -1, false, nil
	}
	return at + loc[0], at + loc[1], true, nil
}

func compileCoregex(expr string, opts Options) (Searcher[byte], error) {
	if opts.IgnoreCase {
		folded, err := foldCase(expr)
		if err != nil {
			return nil, err
		}
		expr = folded
	}

	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, err
	}
	return sliceSearcher{re: re}, nil
}

func compileBinary(expr string, opts Options) (Searcher[byte], error) {
	re, err := binaryregexp.Compile(withFlags(expr, opts))
	if err != nil {
		return nil, err
	}
	return sliceSearcher{re: re}, nil
}

// withFlags prepends RE2 inline flags for opts. Used by binaryregexp, which
// honors (?i) like the standard library.
func withFlags(expr string, opts Options) string {
	if opts.IgnoreCase {
		return "(?i)" + expr
	}
	return expr
}

// quoteRE2 escapes RE2 metacharacters in s.
func quoteRE2(s string) string {
	return coregex.QuoteMeta(s)
}
