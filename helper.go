package flogger

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// parseLevel parses a string log level into a zerolog.Level.
// Returns zerolog.NoLevel and an error if parsing fails.
func parseLevel(level string) (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, err
	}
	return l, nil
}

// nopLogger returns a logger that discards everything, for standalone
// aggregators constructed without a Service.
func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// unwrapChain walks an error's unwrap chain and returns the messages from
// outermost to root. It guards against excessive depth and repeated
// messages to avoid cycles.
func unwrapChain(err error) []string {
	const maxDepth = 50
	var chain []string
	seen := map[string]bool{}

	for err != nil && len(chain) < maxDepth {
		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		err = errors.Unwrap(err)
	}
	return chain
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}
