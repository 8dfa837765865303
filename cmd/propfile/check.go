package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"property-extender/property"
)

type checkConfig struct {
	*cli.Command
	Quiet bool `cli:"name=quiet aliases=q desc='only report files with errors'"`
}

// CheckCommand returns the check subcommand.
func CheckCommand() *cli.Command {
	cfg := &checkConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "check").
		WithSynopsis("check [--quiet] <file>... - Load files and report errors").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *checkConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}

	if failed := checkFiles(cc.Out, args, cfg.Quiet); failed > 0 {
		return cli.ExitCodeErr(1)
	}

	return nil
}

// checkFiles reports each file on w and returns the number that failed.
func checkFiles(w io.Writer, files []string, quiet bool) int {
	failed := 0

	for _, file := range files {
		set, err := loadSet(file)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s %s\n%v\n", errorLabel("FAIL"), file, err)
			continue
		}

		if !quiet {
			fmt.Fprintf(w, "%s %s (%d properties)\n", okLabel("ok"), file, set.Len())
		}
	}

	return failed
}

func loadSet(file string) (*property.Set, error) {
	f, err := property.LoadFile(file)
	if err != nil {
		return nil, err
	}

	return f.Set()
}
