// Package app constructs the noderes CLI application.
package app

import (
	"github.com/urfave/cli"

	"github.com/noderes/noderes/cmd/noderes/cmd/clean"
	"github.com/noderes/noderes/cmd/noderes/cmd/install"
	"github.com/noderes/noderes/cmd/noderes/cmd/list"
	"github.com/noderes/noderes/cmd/noderes/cmd/prune"
	"github.com/noderes/noderes/cmd/noderes/cmd/rebase"
	runc "github.com/noderes/noderes/cmd/noderes/cmd/run"
	"github.com/noderes/noderes/cmd/noderes/version"
)

func New() *cli.App {
	return &cli.App{
		Name:                 "noderes",
		Usage:                "Normalize yarn dependency trees for packaging and rebase relocated lockfiles",
		Version:              version.String(),
		EnableBashCompletion: true,
		Commands: []cli.Command{
			list.Cmd,
			install.Cmd,
			prune.Cmd,
			runc.Cmd,
			rebase.Cmd,
			clean.Cmd,
		},
	}
}
