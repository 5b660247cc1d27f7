package cmd

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rubiojr/quotescan/quote"
	"github.com/rubiojr/quotescan/scanner"
	"github.com/urfave/cli/v3"
)

var errEmptyDelim = errors.New("empty delimiter")

// scanConfig is the scanner setup shared by split and find.
type scanConfig struct {
	key     scanner.Key
	rule    quote.Rule
	verbose bool
}

func scanConfigFrom(cmd *cli.Command) (scanConfig, error) {
	key, err := parseKey(cmd.String("delim"), cmd.Bool("string"))
	if err != nil {
		return scanConfig{}, err
	}
	rule, err := parseRule(cmd.StringSlice("quote"), cmd.StringSlice("inner"))
	if err != nil {
		return scanConfig{}, err
	}
	return scanConfig{key: key, rule: rule, verbose: cmd.Bool("verbose")}, nil
}

func parseKey(delim string, whole bool) (scanner.Key, error) {
	if delim == "" {
		return scanner.Key{}, errEmptyDelim
	}
	if whole {
		return scanner.AnyString(delim), nil
	}
	return scanner.AnyOf([]rune(delim)...), nil
}

// parsePairs splits two-character pair values into left and right quotes.
func parsePairs(values []string) (lefts, rights []rune, err error) {
	for _, s := range values {
		if utf8.RuneCountInString(s) != 2 {
			return nil, nil, fmt.Errorf("invalid quote pair %q: want exactly two characters", s)
		}
		rs := []rune(s)
		lefts = append(lefts, rs[0])
		rights = append(rights, rs[1])
	}
	return lefts, rights, nil
}

func ruleFromValues(values []string) (quote.Rule, error) {
	lefts, rights, err := parsePairs(values)
	if err != nil {
		return quote.Rule{}, err
	}
	return quote.FromSets(lefts, rights)
}

// parseRule builds a single rule from --quote, or a two-layer rule when
// --inner pairs are given as well.
func parseRule(quotes, inner []string) (quote.Rule, error) {
	primary, err := ruleFromValues(quotes)
	if err != nil {
		return quote.Rule{}, err
	}
	if len(inner) == 0 {
		return primary, nil
	}
	secondary, err := ruleFromValues(inner)
	if err != nil {
		return quote.Rule{}, err
	}
	rule, err := quote.Layered(primary, secondary)
	if err != nil {
		return quote.Rule{}, fmt.Errorf("layering quotes: %w", err)
	}
	return rule, nil
}
