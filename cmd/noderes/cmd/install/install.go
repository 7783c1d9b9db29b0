package install

import (
	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/noderes/noderes/cmd/noderes/display"
	"github.com/noderes/noderes/cmd/noderes/flags"
	"github.com/noderes/noderes/cmd/noderes/setup"
	"github.com/noderes/noderes/config"
	"github.com/noderes/noderes/errors"
)

var Cmd = cli.Command{
	Name:   "install",
	Usage:  "Install production dependencies, enforcing the lockfile",
	Action: Run,
	Flags: flags.WithGlobalFlags([]cli.Flag{
		flags.NoFrozenLockfile,
	}),
}

var _ cli.ActionFunc = Run

func Run(ctx *cli.Context) error {
	err := setup.Setup(ctx)
	if err != nil {
		return err
	}

	defer display.StopSpinner()
	display.ShowSpinner("Installing dependencies")

	tool := config.YarnTool()
	err = tool.Install(config.Dir())
	if err != nil {
		return &errors.Error{
			Cause:           err,
			Type:            errors.Exec,
			Troubleshooting: "Ensure that `" + tool.Cmd + " install` succeeds in the project directory. If the lockfile is out of date, re-run with --no-frozen-lockfile.",
		}
	}

	log.Info("Installation succeeded")
	return nil
}
