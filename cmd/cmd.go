package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Execute runs the quotescan CLI with the given version string.
func Execute(version string) {
	cmd := newCommand(version, os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the streams the actions read from and write to, so the
// command tree can be driven from tests.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newCommand(version string, in io.Reader, out, errOut io.Writer) *cli.Command {
	a := &app{in: in, out: out, errOut: errOut}
	return &cli.Command{
		Name:                   "quotescan",
		Usage:                  "Split and search text while skipping quoted and bracketed regions",
		Version:                version,
		UseShortOptionHandling: true,
		Reader:                 in,
		Writer:                 out,
		ErrWriter:              errOut,
		Commands: []*cli.Command{
			{
				Name:      "split",
				Usage:     "Print the segments between unquoted delimiters",
				ArgsUsage: "[file...]",
				Flags: append(scanFlags(),
					&cli.BoolFlag{
						Name:    "trim",
						Aliases: []string{"t"},
						Usage:   "Strip whitespace around each segment",
					},
					&cli.BoolFlag{
						Name:    "keep-delim",
						Aliases: []string{"k"},
						Usage:   "Keep the delimiter at the end of each segment",
					},
					&cli.BoolFlag{
						Name:    "lines",
						Aliases: []string{"l"},
						Usage:   "Split every line on its own and print its segments tab-separated",
					},
					&cli.IntFlag{
						Name:    "jobs",
						Aliases: []string{"j"},
						Usage:   "Lines split in parallel with --lines",
						Value:   1,
						Sources: cli.EnvVars("QUOTESCAN_JOBS"),
					},
					&cli.BoolFlag{
						Name:    "no-color",
						Aliases: []string{"C"},
						Usage:   "Disable ANSI color output",
					},
				),
				Action: a.splitAction,
			},
			{
				Name:      "find",
				Usage:     "Print offset, length and key index of every unquoted delimiter",
				ArgsUsage: "[file...]",
				Flags:     scanFlags(),
				Action:    a.findAction,
			},
		},
	}
}

// scanFlags are shared by every command that runs the scanner.
func scanFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "delim",
			Aliases: []string{"d"},
			Usage:   "Delimiter characters; any of them ends a segment",
			Value:   ",",
			Sources: cli.EnvVars("QUOTESCAN_DELIM"),
		},
		&cli.BoolFlag{
			Name:    "string",
			Aliases: []string{"s"},
			Usage:   "Treat --delim as a single multi-character delimiter",
		},
		&cli.StringSliceFlag{
			Name:    "quote",
			Aliases: []string{"q"},
			Usage:   "Quote pair as two characters, e.g. '\"\"' or '()' (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:    "inner",
			Aliases: []string{"i"},
			Usage:   "Pair only recognised outside --quote regions (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Print a summary per input to stderr",
		},
	}
}

// colorEnabled reports whether ANSI color should be written to a.out.
// Color requires a terminal, no --no-color flag and NO_COLOR unset.
func (a *app) colorEnabled(noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := a.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// input is one named source of text.
type input struct {
	name string
	text string
}

// readInputs loads every named file, or stdin when there are none.
// "-" also names stdin.
func (a *app) readInputs(args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	inputs := make([]input, 0, len(args))
	for _, name := range args {
		var data []byte
		var err error
		if name == "-" {
			data, err = io.ReadAll(a.in)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		inputs = append(inputs, input{name: name, text: string(data)})
	}
	return inputs, nil
}
