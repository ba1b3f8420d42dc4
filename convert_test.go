package matchas

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spanList is a result shape registered only for tests.
type spanList [][2]int

func init() {
	mustRegister[spanList](ConverterFunc[spanList](func(s Searcher) (spanList, error) {
		var out spanList
		for o := range s.All() {
			out = append(out, [2]int{o.Start, o.End})
		}
		return out, s.Err()
	}))
}

func TestShapesDotOnTest(t *testing.T) {
	m := Match(MustCompile[byte](`.`), Literal("test"))

	assert.Equal(t, true, As[bool](m))
	assert.Equal(t, 4, As[int](m))
	assert.Equal(t, "t", As[string](m))
	assert.Equal(t, []string{"t", "e", "s", "t"}, As[[]string](m))
	assert.Equal(t, Triple{"", "t", "est"}, As[Triple](m))
}

func TestShapesNoMatch(t *testing.T) {
	m := Match(MustCompile[byte](`xyz`), Literal("test"))

	assert.Equal(t, false, As[bool](m))
	assert.Equal(t, 0, As[int](m))
	assert.Equal(t, "", As[string](m))

	list := As[[]string](m)
	assert.NotNil(t, list, "no matches is an empty list, not nil")
	assert.Empty(t, list)

	// No match: the whole source is the prefix.
	assert.Equal(t, Triple{"test", "", ""}, As[Triple](m))
}

func TestShapesEmptySource(t *testing.T) {
	m := Match(MustCompile[byte](`.`), Literal(""))

	assert.False(t, As[bool](m))
	assert.Equal(t, 0, As[int](m))
	assert.Equal(t, "", As[string](m))
	assert.Empty(t, As[[]string](m))
	assert.Equal(t, Triple{"", "", ""}, As[Triple](m))
}

func TestShapesRunes(t *testing.T) {
	m := Match(MustCompile[rune](`l+`), RuneLiteral("héllo wörld"))

	assert.True(t, As[bool](m))
	assert.Equal(t, 2, As[int](m))
	assert.Equal(t, "ll", As[string](m))
	assert.Equal(t, []string{"ll", "l"}, As[[]string](m))
	assert.Equal(t, Triple{"hé", "ll", "o wörld"}, As[Triple](m))
}

func TestWrappers(t *testing.T) {
	m := MustCompile[byte](`o`).Match(Literal("foo"))

	assert.True(t, Bool(m))
	assert.Equal(t, 2, Count(m))
	assert.Equal(t, "o", First(m))
	assert.Equal(t, []string{"o", "o"}, List(m))
	assert.Equal(t, Triple{"f", "o", "o"}, Split(m))
}

func TestTripleAccessors(t *testing.T) {
	tr := Triple{"a", "b", "c"}
	assert.Equal(t, "a", tr.Prefix())
	assert.Equal(t, "b", tr.Match())
	assert.Equal(t, "c", tr.Suffix())
}

func TestConvertBuiltins(t *testing.T) {
	m := MustCompile[byte](`\d+`).Match(Literal("a1 b22"))

	n, err := Convert[int](m)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	l, err := Convert[[]string](m)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "22"}, l)
}

func TestConvertRegisteredShape(t *testing.T) {
	m := MustCompile[byte](`\d+`).Match(Literal("a1 b22"))

	got, err := Convert[spanList](m)
	require.NoError(t, err)
	assert.Equal(t, spanList{{1, 2}, {4, 6}}, got)
}

func TestConvertUnsupported(t *testing.T) {
	type unregistered struct{}

	// A pattern whose search would fail proves no search runs.
	config := DefaultConfig()
	config.MatchTimeout = time.Nanosecond
	p, err := CompileWithConfig[rune](`(a+)+$`, config)
	require.NoError(t, err)
	m := p.Match(RuneLiteral(strings.Repeat("a", 30) + "!"))

	_, err = Convert[unregistered](m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedResultType))

	var uerr *UnsupportedResultTypeError
	require.True(t, errors.As(err, &uerr))
	assert.Contains(t, uerr.Error(), "unregistered")

	_, err = Convert[float64](m)
	assert.True(t, errors.Is(err, ErrUnsupportedResultType))
}

func TestConvertEngineFailure(t *testing.T) {
	config := DefaultConfig()
	config.MatchTimeout = 10 * time.Millisecond
	p, err := CompileWithConfig[rune](`(a+)+$`, config)
	require.NoError(t, err)
	m := p.Match(RuneLiteral(strings.Repeat("a", 40) + "!"))

	n, err := Convert[int](m)
	assert.Error(t, err)
	assert.Equal(t, 0, n)

	assert.False(t, As[bool](m), "As swallows the failure")
}

func TestRegisterDuplicate(t *testing.T) {
	err := Register[int](ConverterFunc[int](func(Searcher) (int, error) { return 0, nil }))
	assert.True(t, errors.Is(err, ErrDuplicateConverter))

	err = Register[spanList](ConverterFunc[spanList](func(Searcher) (spanList, error) { return nil, nil }))
	assert.True(t, errors.Is(err, ErrDuplicateConverter))

	// The first registration stays in effect.
	assert.Equal(t, 4, As[int](MustCompile[byte](`.`).Match(Literal("test"))))
}

func TestRegisterNil(t *testing.T) {
	type neverRegistered struct{}
	assert.Error(t, Register[neverRegistered](nil))
}

func TestEachConversionGetsItsOwnSession(t *testing.T) {
	m := MustCompile[byte](`\w`).Match(Literal("abc"))

	for i := 0; i < 3; i++ {
		assert.Equal(t, []string{"a", "b", "c"}, As[[]string](m))
	}
}

func TestEnginesAgreeOnASCII(t *testing.T) {
	patterns := []string{`.`, `\d+`, `xyz`, `[aeiou]`, ``, `a*`, `o+|l`}
	inputs := []string{"", "test", "a1b22c333", "baaac", "hello world"}

	binary := DefaultConfig()
	binary.Engine = EngineBinary

	for _, pattern := range patterns {
		for _, input := range inputs {
			t.Run(pattern+"/"+input, func(t *testing.T) {
				want := As[[]string](MustCompile[byte](pattern).Match(Literal(input)))

				bp, err := CompileWithConfig[byte](pattern, binary)
				require.NoError(t, err)
				assert.Equal(t, want, As[[]string](bp.Match(Literal(input))), "binary")

				assert.Equal(t, want, As[[]string](MustCompile[rune](pattern).Match(RuneLiteral(input))), "regexp2")
			})
		}
	}
}

func TestLiteralEnginesAgree(t *testing.T) {
	wordSets := [][]string{
		{"bc", "abcd"},
		{"ab", "abcd"},
		{"abcd", "ab"},
		{"he", "she", "his", "hers"},
		{"a", "aa", "aaa"},
		{"x.y", "y"},
	}
	inputs := []string{"", "xabcd", "abcdabcd", "ushers", "aaaa", "x.yxy", "nothing here"}

	for _, words := range wordSets {
		for _, input := range inputs {
			t.Run(strings.Join(words, ",")+"/"+input, func(t *testing.T) {
				var (
					lists   [][]string
					triples []Triple
				)
				for _, engine := range []EngineKind{EngineAhoCorasick, EngineCoregex, EngineBinary} {
					config := DefaultConfig()
					config.Engine = engine
					p, err := CompileLiterals[byte](words, config)
					require.NoError(t, err)

					m := p.Match(Literal(input))
					lists = append(lists, As[[]string](m))
					triples = append(triples, As[Triple](m))
				}

				assert.Equal(t, lists[1], lists[0], "aho-corasick vs coregex")
				assert.Equal(t, lists[1], lists[2], "binary vs coregex")
				assert.Equal(t, triples[1], triples[0], "aho-corasick vs coregex")

				runes, err := CompileLiterals[rune](words, DefaultConfig())
				require.NoError(t, err)
				assert.Equal(t, lists[1], As[[]string](runes.Match(RuneLiteral(input))), "regexp2 vs coregex")
			})
		}
	}
}
