package run

import (
	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/noderes/noderes/cmd/noderes/flags"
	"github.com/noderes/noderes/cmd/noderes/setup"
	"github.com/noderes/noderes/config"
	"github.com/noderes/noderes/errors"
)

var Cmd = cli.Command{
	Name:      "run",
	Usage:     "Run the named package scripts concurrently",
	ArgsUsage: "SCRIPT [SCRIPT...]",
	Action:    Run,
	Flags:     flags.WithGlobalFlags(nil),
}

var _ cli.ActionFunc = Run

func Run(ctx *cli.Context) error {
	err := setup.Setup(ctx)
	if err != nil {
		return err
	}

	scripts := ctx.Args()
	if len(scripts) == 0 {
		return &errors.Error{
			Type:            errors.User,
			Message:         "no scripts named",
			Troubleshooting: "Name at least one script from the manifest's scripts section, e.g. `noderes run build`.",
		}
	}

	err = config.YarnTool().RunScripts(config.Dir(), scripts)
	if err != nil {
		return err
	}

	log.Infof("Ran %d script(s)", len(scripts))
	return nil
}
