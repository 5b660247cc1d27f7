package cmd

import (
	"context"
	"fmt"

	"github.com/rubiojr/quotescan/scanner"
	"github.com/rubiojr/quotescan/span"
	"github.com/urfave/cli/v3"
)

func (a *app) findAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := scanConfigFrom(cmd)
	if err != nil {
		return err
	}
	inputs, err := a.readInputs(cmd.Args().Slice())
	if err != nil {
		return err
	}
	for _, in := range inputs {
		prefix := ""
		if len(inputs) > 1 {
			prefix = in.name + ":"
		}
		n := 0
		for h := range scanner.Hits(span.New(in.text), cfg.key, cfg.rule) {
			fmt.Fprintf(a.out, "%s%d\t%d\t%d\n", prefix, h.Index, h.Len, h.Which)
			n++
		}
		if cfg.verbose {
			fmt.Fprintf(a.errOut, "%s: %d hits\n", in.name, n)
		}
	}
	return nil
}
