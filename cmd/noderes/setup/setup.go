// Package setup implements initialization for all application packages.
package setup

import (
	"github.com/urfave/cli"

	"github.com/noderes/noderes/cmd/noderes/display"
	"github.com/noderes/noderes/config"
)

// Setup initializes configuration and logging from the CLI context.
func Setup(ctx *cli.Context) error {
	err := config.SetContext(ctx)
	if err != nil {
		return err
	}

	display.SetInteractive(config.Interactive())
	display.SetDebug(config.Debug())

	return nil
}
