package engine

import (
	"regexp/syntax"
	"slices"
	"unicode"
)

// foldCase rewrites expr so that it matches case-insensitively without
// relying on the engine's (?i) flag: every case-folded literal becomes a
// character class of its fold orbit. Classes are already folded by the
// parser.
func foldCase(expr string) (string, error) {
	re, err := syntax.Parse(expr, syntax.Perl|syntax.FoldCase)
	if err != nil {
		return "", err
	}
	return expandFolds(re).String(), nil
}

func expandFolds(re *syntax.Regexp) *syntax.Regexp {
	for i, sub := range re.Sub {
		re.Sub[i] = expandFolds(sub)
	}
	if re.Op != syntax.OpLiteral || re.Flags&syntax.FoldCase == 0 {
		return re
	}

	flags := re.Flags &^ syntax.FoldCase
	subs := make([]*syntax.Regexp, 0, len(re.Rune))
	for _, r := range re.Rune {
		subs = append(subs, foldRune(r, flags))
	}
	if len(subs) == 1 {
		return subs[0]
	}
	return &syntax.Regexp{Op: syntax.OpConcat, Flags: flags, Sub: subs}
}

// foldRune returns a literal for r, or a class of every rune that folds to it.
func foldRune(r rune, flags syntax.Flags) *syntax.Regexp {
	orbit := []rune{r}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		orbit = append(orbit, f)
	}
	if len(orbit) == 1 {
		return &syntax.Regexp{Op: syntax.OpLiteral, Flags: flags, Rune: orbit}
	}

	slices.Sort(orbit)
	class := make([]rune, 0, 2*len(orbit))
	for _, f := range orbit {
		class = append(class, f, f)
	}
	return &syntax.Regexp{Op: syntax.OpCharClass, Flags: flags, Rune: class}
}
