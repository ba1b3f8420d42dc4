package matchas

import (
	"strings"

	"github.com/coregx/matchas/internal/conv"
	"github.com/coregx/matchas/internal/engine"
)

// findFunc is the single search primitive every engine is reduced to: the
// leftmost match in hay at or after at, with absolute offsets.
type findFunc[C Char] func(hay []C, at int) (start, end int, found bool, err error)

// Pattern is a compiled regular expression over characters of type C.
//
// A Pattern is immutable and safe to use concurrently from multiple
// goroutines. Each Match call pairs it with a source; the pattern itself is
// never modified by matching.
//
// Example:
//
//	p := matchas.MustCompile[byte](`\d+`)
//	n := matchas.As[int](p.Match(matchas.Literal("1 2 3")))
//	println(n) // 3
type Pattern[C Char] struct {
	expr   string
	kind   EngineKind
	config Config
	find   findFunc[C]
}

// Compile compiles a regular expression for character type C using
// DefaultConfig.
//
// Byte patterns use coregex syntax (the same as Go's regexp package);
// rune patterns use regexp2 syntax (.NET style, with lookaround).
// A malformed pattern returns a *PatternError.
//
// Example:
//
//	p, err := matchas.Compile[byte](`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile[C Char](expr string) (*Pattern[C], error) {
	return CompileWithConfig[C](expr, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var digits = matchas.MustCompile[byte](`\d+`)
func MustCompile[C Char](expr string) *Pattern[C] {
	p, err := Compile[C](expr)
	if err != nil {
		panic("matchas: Compile(`" + expr + "`): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Example:
//
//	config := matchas.DefaultConfig()
//	config.IgnoreCase = true
//	p, err := matchas.CompileWithConfig[rune](`straße`, config)
func CompileWithConfig[C Char](expr string, config Config) (*Pattern[C], error) {
	kind, err := resolveEngine[C](config, false)
	if err != nil {
		return nil, err
	}

	var find findFunc[C]
	if conv.IsByte[C]() {
		var s engine.Searcher[byte]
		s, err = engine.CompileBytes(kind, expr, config.options())
		find = byteFinder[C](s)
	} else {
		var s engine.Searcher[rune]
		s, err = engine.CompileRunes(kind, expr, config.options())
		find = runeFinder[C](s)
	}
	if err != nil {
		config.Logger.Debug().Err(err).Str("engine", string(kind)).Str("pattern", expr).Msg("pattern rejected")
		return nil, &PatternError{Pattern: expr, Engine: kind, Err: err}
	}

	config.Logger.Debug().Str("engine", string(kind)).Str("pattern", expr).Msg("pattern compiled")
	return &Pattern[C]{expr: expr, kind: kind, config: config, find: find}, nil
}

// CompileLiterals builds a pattern matching any of words literally.
// Regex metacharacters in words have no special meaning.
//
// Byte patterns default to the Aho-Corasick engine; rune patterns use
// regexp2. Empty word lists and empty words return a *PatternError.
//
// Example:
//
//	p, err := matchas.CompileLiterals[byte]([]string{"cat", "dog"}, matchas.DefaultConfig())
//	pets := matchas.As[[]string](p.Match(matchas.Literal("dog, cat, cow")))
//	// pets = ["dog", "cat"]
func CompileLiterals[C Char](words []string, config Config) (*Pattern[C], error) {
	kind, err := resolveEngine[C](config, true)
	if err != nil {
		return nil, err
	}

	var find findFunc[C]
	if conv.IsByte[C]() {
		var s engine.Searcher[byte]
		s, err = engine.LiteralBytes(kind, words, config.options())
		find = byteFinder[C](s)
	} else {
		var s engine.Searcher[rune]
		s, err = engine.LiteralRunes(kind, words, config.options())
		find = runeFinder[C](s)
	}

	expr := strings.Join(words, "|")
	if err != nil {
		return nil, &PatternError{Pattern: expr, Engine: kind, Err: err}
	}

	config.Logger.Debug().Str("engine", string(kind)).Int("literals", len(words)).Msg("literal set compiled")
	return &Pattern[C]{expr: expr, kind: kind, config: config, find: find}, nil
}

// resolveEngine validates config and picks the engine for C.
func resolveEngine[C Char](config Config, literal bool) (EngineKind, error) {
	if err := config.Validate(); err != nil {
		return "", err
	}

	isByte := conv.IsByte[C]()
	kind := config.Engine
	if kind == "" {
		switch {
		case !isByte:
			kind = EngineRegexp2
		case literal:
			kind = EngineAhoCorasick
		default:
			kind = EngineCoregex
		}
	}

	switch {
	case isByte && !kind.Bytes():
		return "", &ConfigError{Field: "Engine", Message: string(kind) + " cannot search byte patterns"}
	case !isByte && !kind.Runes():
		return "", &ConfigError{Field: "Engine", Message: string(kind) + " cannot search rune patterns"}
	case kind == EngineAhoCorasick && !literal:
		return "", &ConfigError{Field: "Engine", Message: "aho-corasick only matches literal sets, use CompileLiterals"}
	case kind == EngineAhoCorasick && config.IgnoreCase:
		return "", &ConfigError{Field: "IgnoreCase", Message: "not supported by aho-corasick"}
	}
	return kind, nil
}

func byteFinder[C Char](s engine.Searcher[byte]) findFunc[C] {
	if s == nil {
		return nil
	}
	return func(hay []C, at int) (int, int, bool, error) {
		return s.FindAt(conv.Bytes(hay), at)
	}
}

func runeFinder[C Char](s engine.Searcher[rune]) findFunc[C] {
	if s == nil {
		return nil
	}
	return func(hay []C, at int) (int, int, bool, error) {
		return s.FindAt(conv.Runes(hay), at)
	}
}

// String returns the source text used to compile the pattern. For literal
// sets it is the words joined by "|".
func (p *Pattern[C]) String() string {
	return p.expr
}

// Engine returns the engine the pattern was compiled with.
func (p *Pattern[C]) Engine() EngineKind {
	return p.kind
}

// Match pairs p with src. It is shorthand for Match(p, src).
func (p *Pattern[C]) Match(src Source[C]) *Matcher[C] {
	return Match(p, src)
}
