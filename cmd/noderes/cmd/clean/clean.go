package clean

import (
	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/noderes/noderes/cmd/noderes/flags"
	"github.com/noderes/noderes/cmd/noderes/setup"
	"github.com/noderes/noderes/config"
	"github.com/noderes/noderes/errors"
	"github.com/noderes/noderes/files"
)

var Cmd = cli.Command{
	Name:   "clean",
	Usage:  "Remove the installed node_modules tree",
	Action: Run,
	Flags:  flags.WithGlobalFlags(nil),
}

var _ cli.ActionFunc = Run

func Run(ctx *cli.Context) error {
	err := setup.Setup(ctx)
	if err != nil {
		return err
	}

	exists, err := files.ExistsFolder(config.Dir(), "node_modules")
	if err != nil {
		return err
	}
	if !exists {
		log.Warn("No node_modules to remove")
		return nil
	}

	err = files.Rm(config.Dir(), "node_modules")
	if err != nil {
		return errors.Wrap(err, "could not remove node_modules")
	}

	log.Info("Removed node_modules")
	return nil
}
