package matchas

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ConvertAll converts p matched against every source, concurrently.
//
// The pattern is shared read-only; each source gets its own Session. Results
// are in the order of srcs. The first failure (an unsupported T, an engine
// failure, or ctx being done) cancels the remaining conversions and is
// returned with a nil slice.
//
// Example:
//
//	p := matchas.MustCompile[byte](`\d+`)
//	counts, err := matchas.ConvertAll[int](ctx, p, []matchas.Source[byte]{
//	    matchas.Literal("1 2"),
//	    matchas.Literal("3"),
//	})
//	// counts = [2 1]
func ConvertAll[T any, C Char](ctx context.Context, p *Pattern[C], srcs []Source[C]) ([]T, error) {
	if _, err := lookup[T](); err != nil {
		return nil, err
	}

	results := make([]T, len(srcs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, src := range srcs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := Convert[T](Match(p, src))
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.config.Logger.Debug().Err(err).Int("sources", len(srcs)).Msg("batch conversion failed")
		return nil, err
	}
	return results, nil
}
