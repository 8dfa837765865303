package main

import (
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

const usageText = `propfile - inspect property files

Usage:
  propfile check <file>...     Load files and report errors
  propfile show <file>         List the properties of a file
  propfile eval <file>         Resolve a file against a JSON object on stdin

Examples:
  propfile check props/*.yaml
  propfile show props/person.yaml
  echo '{"Name":"moe"}' | propfile eval props/person.yaml`

var (
	okLabel    = color.New(color.FgGreen).SprintFunc()
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	nameLabel  = color.New(color.FgCyan).SprintFunc()
)

// Root returns the root command for propfile.
func Root() *cli.Command {
	return cli.NewCommand("propfile").
		WithSynopsis("propfile - inspect property files").
		WithDescription(usageText).
		WithSubs(
			CheckCommand(),
			ShowCommand(),
			EvalCommand(),
		)
}
