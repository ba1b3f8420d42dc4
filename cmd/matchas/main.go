// Command matchas matches a regular expression against text and prints the
// result in one or more shapes.
//
//	matchas '.' test
//	bool true
//	count 4
//	string "t"
//	list ["t" "e" "s" "t"]
//	triple ["" "t" "est"]
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("matchas failed")
		stop()
		os.Exit(1)
	}
}
