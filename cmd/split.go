package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rubiojr/quotescan/reader"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const (
	colorSegment = "\033[36m"
	colorReset   = "\033[0m"
)

func (a *app) splitAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := scanConfigFrom(cmd)
	if err != nil {
		return err
	}
	opts := reader.Field
	if cmd.Bool("keep-delim") {
		opts = reader.StopAfterKey | reader.ReadToEnd
	}
	if cmd.Bool("trim") {
		opts |= reader.Trim
	}
	jobs := cmd.Int("jobs")
	if jobs < 1 {
		jobs = 1
	}

	inputs, err := a.readInputs(cmd.Args().Slice())
	if err != nil {
		return err
	}
	color := a.colorEnabled(cmd.Bool("no-color"))

	for _, in := range inputs {
		var rows [][]string
		if cmd.Bool("lines") {
			rows, err = splitLines(in.text, cfg, opts, jobs)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
		} else {
			rows = [][]string{segments(reader.New(trimLineEnd(in.text)), cfg, opts)}
		}

		total := 0
		for _, row := range rows {
			total += len(row)
			if cmd.Bool("lines") {
				writeRow(a.out, row, "\t", color)
			} else {
				writeRow(a.out, row, "\n", color)
			}
		}
		if cfg.verbose {
			fmt.Fprintf(a.errOut, "%s: %d segments, %d bytes\n", in.name, total, len(in.text))
		}
	}
	return nil
}

// trimLineEnd drops one trailing line terminator so a final newline does
// not turn into an extra segment.
func trimLineEnd(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r") {
		return s[:len(s)-1]
	}
	return s
}

// segments collects the text of every segment of r.
func segments(r *reader.Reader, cfg scanConfig, opts reader.Options) []string {
	var out []string
	for seg := range r.All(cfg.key, cfg.rule, opts) {
		out = append(out, seg.String())
	}
	return out
}

// splitLines splits each line of text independently, up to jobs lines at
// a time. Every worker gets its own Reader over the shared text.
func splitLines(text string, cfg scanConfig, opts reader.Options, jobs int) ([][]string, error) {
	var lines []*reader.Reader
	r := reader.New(text)
	for line, ok := r.ReadLine(); ok; line, ok = r.ReadLine() {
		lines = append(lines, line)
	}

	rows := make([][]string, len(lines))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, line := range lines {
		g.Go(func() error {
			rows[i] = segments(line, cfg, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func writeRow(w io.Writer, row []string, sep string, color bool) {
	if color {
		colored := make([]string, len(row))
		for i, s := range row {
			colored[i] = colorSegment + s + colorReset
		}
		row = colored
	}
	if sep == "\n" {
		for _, s := range row {
			fmt.Fprintln(w, s)
		}
		return
	}
	fmt.Fprintln(w, strings.Join(row, sep))
}
