package list

import (
	"github.com/urfave/cli"

	"github.com/noderes/noderes/cmd/noderes/display"
	"github.com/noderes/noderes/cmd/noderes/flags"
	"github.com/noderes/noderes/cmd/noderes/setup"
	"github.com/noderes/noderes/config"
	"github.com/noderes/noderes/errors"
)

var Cmd = cli.Command{
	Name:   "list",
	Usage:  "Print the normalized production dependency map as JSON",
	Action: Run,
	Flags: flags.WithGlobalFlags([]cli.Flag{
		flags.Depth,
	}),
}

var _ cli.ActionFunc = Run

func Run(ctx *cli.Context) error {
	err := setup.Setup(ctx)
	if err != nil {
		return err
	}

	tool := config.YarnTool()
	result, err := tool.List(config.Dir(), config.Depth())
	if err != nil {
		return &errors.Error{
			Cause:           err,
			Type:            errors.Exec,
			Troubleshooting: "Ensure that `" + tool.Cmd + " list --json --production` succeeds in the project directory, and that dependencies have been installed.",
		}
	}

	_, err = display.JSON(result)
	return err
}
