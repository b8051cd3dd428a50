package cmd

import (
	"github.com/urfave/cli"

	"github.com/rfoley/glimmer/pkg/log"
)

var logger = log.New("glimmer")

// setupLogging adjusts verbosity from the global -v/-q flags
func setupLogging(ctx *cli.Context) {
	switch {
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("q"):
		log.SetLevel(log.Warning)
	default:
		log.SetLevel(log.Info)
	}
}
