package matchas

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/matchas/internal/testutil"
)

// TestCompile tests basic compilation
func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"digit", `\d`, false},
		{"word", `\w+`, false},
		{"alternation", "foo|bar", false},
		{"repetition", "a+", false},
		{"empty", "", false},
		{"invalid", "(", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile[byte](tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Compile[byte]() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && p == nil {
				t.Error("Compile[byte]() returned nil")
			}

			r, err := Compile[rune](tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Compile[rune]() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && r == nil {
				t.Error("Compile[rune]() returned nil")
			}
		})
	}
}

func TestCompileDefaultEngines(t *testing.T) {
	assert.Equal(t, EngineCoregex, MustCompile[byte]("a").Engine())
	assert.Equal(t, EngineCoregex, MustCompile[latin1]("a").Engine())
	assert.Equal(t, EngineRegexp2, MustCompile[rune]("a").Engine())
	assert.Equal(t, EngineRegexp2, MustCompile[codePoint]("a").Engine())
	assert.Equal(t, `\d+`, MustCompile[byte](`\d+`).String())
}

func TestPatternError(t *testing.T) {
	_, err := Compile[byte]("(abc")
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrInvalidPattern))

	var perr *PatternError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "(abc", perr.Pattern)
	assert.Equal(t, EngineCoregex, perr.Engine)
	assert.NotNil(t, errors.Unwrap(err))
	assert.Contains(t, err.Error(), `"(abc"`)
}

// TestMustCompilePanicFormat verifies the panic names the pattern.
func TestMustCompilePanicFormat(t *testing.T) {
	var msg string
	func() {
		defer func() {
			if r := recover(); r != nil {
				msg = r.(string)
			}
		}()
		MustCompile[byte]("[invalid")
	}()

	wantPrefix := "matchas: Compile(`[invalid`): "
	if !strings.HasPrefix(msg, wantPrefix) {
		t.Errorf("MustCompile panic should start with %q, got: %s", wantPrefix, msg)
	}
}

func TestCompileWithConfigEngineChecks(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		field  string
		runes  bool
	}{
		{"regexp2 for bytes", Config{Engine: EngineRegexp2}, "Engine", false},
		{"coregex for runes", Config{Engine: EngineCoregex}, "Engine", true},
		{"binary for runes", Config{Engine: EngineBinary}, "Engine", true},
		{"aho-corasick for a regex", Config{Engine: EngineAhoCorasick}, "Engine", false},
		{"unknown engine", Config{Engine: "pcre"}, "Engine", false},
		{"negative limit", Config{MaxMatches: -1}, "MaxMatches", false},
		{"negative timeout", Config{MatchTimeout: -1}, "MatchTimeout", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.runes {
				_, err = CompileWithConfig[rune]("a", tt.config)
			} else {
				_, err = CompileWithConfig[byte]("a", tt.config)
			}

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr), "got %v", err)
			assert.Equal(t, tt.field, cerr.Field)
		})
	}
}

func TestBinaryEngine(t *testing.T) {
	config := DefaultConfig()
	config.Engine = EngineBinary
	p, err := CompileWithConfig[byte](`.`, config)
	require.NoError(t, err)

	assert.Equal(t, EngineBinary, p.Engine())
	assert.Equal(t, 3, As[int](p.Match(Literal("é!"))), "binary engine counts bytes")
	assert.Equal(t, 2, As[int](MustCompile[rune](`.`).Match(RuneLiteral("é!"))), "rune patterns count code points")
}

func TestCompileLiterals(t *testing.T) {
	words := []string{"cat", "dog", "c.t"}

	byteLits, err := CompileLiterals[byte](words, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, EngineAhoCorasick, byteLits.Engine())
	assert.Equal(t, "cat|dog|c.t", byteLits.String())

	runeLits, err := CompileLiterals[rune](words, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, EngineRegexp2, runeLits.Engine())

	text := "dog, cot, cat, c.t"
	want := []string{"dog", "cat", "c.t"}
	assert.Equal(t, want, As[[]string](byteLits.Match(Literal(text))))
	assert.Equal(t, want, As[[]string](runeLits.Match(RuneLiteral(text))))
}

func TestCompileIgnoreCase(t *testing.T) {
	config := DefaultConfig()
	config.IgnoreCase = true

	for _, engine := range []EngineKind{EngineCoregex, EngineBinary} {
		config.Engine = engine
		p, err := CompileWithConfig[byte](`hello`, config)
		require.NoError(t, err)

		m := p.Match(Literal("say HeLLo, hello"))
		assert.True(t, As[bool](m), engine)
		assert.Equal(t, []string{"HeLLo", "hello"}, As[[]string](m), engine)
	}

	config.Engine = ""
	r, err := CompileWithConfig[rune](`hello`, config)
	require.NoError(t, err)
	assert.Equal(t, Triple{"say ", "HeLLo", ""}, As[Triple](r.Match(RuneLiteral("say HeLLo"))))
}

func TestCompileLiteralsErrors(t *testing.T) {
	_, err := CompileLiterals[byte](nil, DefaultConfig())
	assert.True(t, errors.Is(err, ErrInvalidPattern))

	_, err = CompileLiterals[rune]([]string{"ok", ""}, DefaultConfig())
	assert.True(t, errors.Is(err, ErrInvalidPattern))

	config := DefaultConfig()
	config.IgnoreCase = true
	_, err = CompileLiterals[byte]([]string{"ok"}, config)
	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "IgnoreCase", cerr.Field)

	// The regex engines accept IgnoreCase for literal sets.
	config.Engine = EngineCoregex
	p, err := CompileLiterals[byte]([]string{"ok"}, config)
	require.NoError(t, err)
	assert.Equal(t, "OK", As[string](p.Match(Literal("is it OK?"))))
}

func TestCompileLogging(t *testing.T) {
	logger, lines := testutil.RecordingLogger()
	config := DefaultConfig()
	config.Logger = logger

	_, err := CompileWithConfig[byte](`\d+`, config)
	require.NoError(t, err)
	assert.True(t, lines.Contains("pattern compiled"))
	assert.True(t, lines.Contains(`"engine":"coregex"`))

	_, err = CompileWithConfig[byte](`(`, config)
	require.Error(t, err)
	assert.True(t, lines.Contains("pattern rejected"))
}

func TestPatternSharedAcrossCharTypes(t *testing.T) {
	named := MustCompile[latin1](`b+`)
	assert.Equal(t, "bb", As[string](named.Match(Range([]latin1("abba")))))

	points := MustCompile[codePoint](`界`)
	assert.Equal(t, Triple{"世", "界", ""}, As[Triple](points.Match(Range([]codePoint{'世', '界'}))))
}
