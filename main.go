// Package main is the entry point for nerdlist.
package main

import (
	"github.com/nerdlist/nerdlist/cmd"
	"github.com/nerdlist/nerdlist/config"
	"github.com/nerdlist/nerdlist/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
