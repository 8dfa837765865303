package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/scott-cotton/cli"

	"property-extender/property"
)

type showConfig struct {
	*cli.Command
}

// ShowCommand returns the show subcommand.
func ShowCommand() *cli.Command {
	cfg := &showConfig{}
	return cli.NewCommandAt(&cfg.Command, "show").
		WithSynopsis("show <file> - List the properties of a file").
		WithRun(cfg.run)
}

func (cfg *showConfig) run(cc *cli.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show requires one file", cli.ErrUsage)
	}

	set, err := loadSet(args[0])
	if err != nil {
		return err
	}

	return showSet(cc.Out, set)
}

func showSet(w io.Writer, set *property.Set) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, p := range set.Properties() {
		kind, detail := "value", fmt.Sprintf("%v", p.Value())
		if expr, ok := p.Value().(*property.Expression); ok {
			kind, detail = "expr", expr.String()
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", nameLabel(p.Name()), kind, p.Type(), detail)
	}

	return tw.Flush()
}
