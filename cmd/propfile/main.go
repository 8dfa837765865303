// Package main provides the propfile CLI.
//
// propfile works with YAML property files, the declarative form of the
// extra properties handed to extend and view:
//   - check that files load and every expression compiles
//   - show the properties a file declares
//   - eval a file against a JSON object read from stdin
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), Root())
}
