package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coregx/matchas"
)

const shapeAll = "all"

// shapes lists the result shapes in output order.
var shapes = []string{"bool", "count", "string", "list", "triple"}

type options struct {
	shape      string
	runes      bool
	literals   bool
	engine     string
	ignoreCase bool
	timeout    time.Duration
	maxMatches int
	cfgFile    string
	json       bool
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "matchas PATTERN TEXT...",
		Short: "matchas - match a regular expression and print the result in the requested shapes",
		Long: `matchas compiles PATTERN and matches it against every TEXT.

Byte patterns (the default) use coregex syntax and byte offsets. With --runes
the pattern uses regexp2 syntax and matches code points.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, opts.verbose)

			config, err := opts.config(cmd, logger)
			if err != nil {
				return err
			}

			selected, err := selectShapes(opts.shape)
			if err != nil {
				return err
			}

			var reports []report
			if opts.runes {
				reports, err = run[rune](cmd.Context(), opts, config, args[0], args[1:], selected)
			} else {
				reports, err = run[byte](cmd.Context(), opts, config, args[0], args[1:], selected)
			}
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(stdout, reports)
			}
			return writeText(stdout, reports)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.shape, "shape", shapeAll, "Result shape: "+strings.Join(shapes, ", ")+" or all")
	flags.BoolVar(&opts.runes, "runes", false, "Match code points with regexp2 instead of bytes")
	flags.BoolVar(&opts.literals, "literals", false, "Treat PATTERN as a comma-separated list of literal words")
	flags.StringVar(&opts.engine, "engine", "", "Regex engine: coregex, binary, regexp2 or aho-corasick")
	flags.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Match case-insensitively")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Per-search timeout (regexp2 only)")
	flags.IntVar(&opts.maxMatches, "max-matches", 0, "Stop after this many matches (0 = unlimited)")
	flags.StringVar(&opts.cfgFile, "config", "", "YAML configuration file")
	flags.BoolVar(&opts.json, "json", false, "Output results in JSON format")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log compile and search events to stderr")

	return cmd
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

// config loads the config file, if any, and applies the flags that were set
// explicitly on top of it.
func (o *options) config(cmd *cobra.Command, logger zerolog.Logger) (matchas.Config, error) {
	config := matchas.DefaultConfig()
	if o.cfgFile != "" {
		var err error
		config, err = matchas.LoadConfig(o.cfgFile)
		if err != nil {
			return config, errors.Wrap(err, "can't load config")
		}
	}

	flags := cmd.Flags()
	if flags.Changed("engine") {
		config.Engine = matchas.EngineKind(o.engine)
	}
	if flags.Changed("ignore-case") {
		config.IgnoreCase = o.ignoreCase
	}
	if flags.Changed("timeout") {
		config.MatchTimeout = o.timeout
	}
	if flags.Changed("max-matches") {
		config.MaxMatches = o.maxMatches
	}
	config.Logger = logger

	if err := config.Validate(); err != nil {
		return config, errors.WithStack(err)
	}
	return config, nil
}

func selectShapes(shape string) ([]string, error) {
	if shape == shapeAll {
		return shapes, nil
	}
	for _, s := range shapes {
		if s == shape {
			return []string{s}, nil
		}
	}
	return nil, errors.Errorf("unknown shape %q", shape)
}

// report holds the converted results for one text. Shapes that were not
// requested stay nil.
type report struct {
	Text   string          `json:"text"`
	Bool   *bool           `json:"bool,omitempty"`
	Count  *int            `json:"count,omitempty"`
	String *string         `json:"string,omitempty"`
	List   *[]string       `json:"list,omitempty"`
	Triple *matchas.Triple `json:"triple,omitempty"`
}

func run[C matchas.Char](ctx context.Context, opts *options, config matchas.Config, expr string, texts []string, selected []string) ([]report, error) {
	var (
		p   *matchas.Pattern[C]
		err error
	)
	if opts.literals {
		p, err = matchas.CompileLiterals[C](strings.Split(expr, ","), config)
	} else {
		p, err = matchas.CompileWithConfig[C](expr, config)
	}
	if err != nil {
		return nil, errors.Wrap(err, "can't compile pattern")
	}

	srcs := make([]matchas.Source[C], len(texts))
	reports := make([]report, len(texts))
	for i, text := range texts {
		if srcs[i], err = matchas.Adapt[C](text); err != nil {
			return nil, errors.WithStack(err)
		}
		reports[i].Text = text
	}

	for _, shape := range selected {
		switch shape {
		case "bool":
			err = convertInto(ctx, p, srcs, reports, func(r *report, v bool) { r.Bool = &v })
		case "count":
			err = convertInto(ctx, p, srcs, reports, func(r *report, v int) { r.Count = &v })
		case "string":
			err = convertInto(ctx, p, srcs, reports, func(r *report, v string) { r.String = &v })
		case "list":
			err = convertInto(ctx, p, srcs, reports, func(r *report, v []string) { r.List = &v })
		case "triple":
			err = convertInto(ctx, p, srcs, reports, func(r *report, v matchas.Triple) { r.Triple = &v })
		}
		if err != nil {
			return nil, errors.Wrapf(err, "can't convert to %s", shape)
		}
	}
	return reports, nil
}

func convertInto[T any, C matchas.Char](ctx context.Context, p *matchas.Pattern[C], srcs []matchas.Source[C], reports []report, set func(*report, T)) error {
	values, err := matchas.ConvertAll[T](ctx, p, srcs)
	if err != nil {
		return err
	}
	for i, v := range values {
		set(&reports[i], v)
	}
	return nil
}

func writeText(w io.Writer, reports []report) error {
	var b strings.Builder
	for i, r := range reports {
		if len(reports) > 1 {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%q\n", r.Text)
		}
		if r.Bool != nil {
			fmt.Fprintf(&b, "bool %v\n", *r.Bool)
		}
		if r.Count != nil {
			fmt.Fprintf(&b, "count %d\n", *r.Count)
		}
		if r.String != nil {
			fmt.Fprintf(&b, "string %q\n", *r.String)
		}
		if r.List != nil {
			fmt.Fprintf(&b, "list %q\n", *r.List)
		}
		if r.Triple != nil {
			fmt.Fprintf(&b, "triple %q\n", *r.Triple)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSON(w io.Writer, reports []report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(reports), "can't encode results")
}
