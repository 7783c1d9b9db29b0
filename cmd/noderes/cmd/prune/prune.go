package prune

import (
	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/noderes/noderes/cmd/noderes/display"
	"github.com/noderes/noderes/cmd/noderes/flags"
	"github.com/noderes/noderes/cmd/noderes/setup"
	"github.com/noderes/noderes/config"
)

var Cmd = cli.Command{
	Name:   "prune",
	Usage:  "Remove extraneous packages via a plain install",
	Action: Run,
	Flags:  flags.WithGlobalFlags(nil),
}

var _ cli.ActionFunc = Run

func Run(ctx *cli.Context) error {
	err := setup.Setup(ctx)
	if err != nil {
		return err
	}

	defer display.StopSpinner()
	display.ShowSpinner("Pruning extraneous packages")

	err = config.YarnTool().Prune(config.Dir())
	if err != nil {
		return err
	}

	log.Info("Prune succeeded")
	return nil
}
