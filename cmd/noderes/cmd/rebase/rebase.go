package rebase

import (
	"path/filepath"

	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/noderes/noderes/buildtools/yarn"
	"github.com/noderes/noderes/cmd/noderes/flags"
	"github.com/noderes/noderes/cmd/noderes/setup"
	"github.com/noderes/noderes/config"
	"github.com/noderes/noderes/errors"
	"github.com/noderes/noderes/files"
)

var Cmd = cli.Command{
	Name:      "rebase",
	Usage:     "Rewrite relative file: references in a lockfile for a relocated package root",
	ArgsUsage: "[LOCKFILE]",
	Action:    Run,
	Flags: flags.WithGlobalFlags([]cli.Flag{
		flags.Root,
	}),
}

var _ cli.ActionFunc = Run

func Run(ctx *cli.Context) error {
	err := setup.Setup(ctx)
	if err != nil {
		return err
	}

	rootPath := ctx.String(flags.RootFlagName)
	if rootPath == "" {
		return &errors.Error{
			Type:            errors.User,
			Message:         "no relocation root given",
			Troubleshooting: "Pass the path prefix the package is relocated under, e.g. `noderes rebase --root packages/root`.",
		}
	}

	lockfilePath := ctx.Args().First()
	if lockfilePath == "" {
		lockfilePath = filepath.Join(config.Dir(), "yarn.lock")
	}

	content, err := files.Read(lockfilePath)
	if err != nil {
		return errors.Wrapf(err, "could not read lockfile %s", lockfilePath)
	}

	rebased := yarn.RebaseLockfile(content, rootPath)
	err = files.Write(rebased, lockfilePath)
	if err != nil {
		return errors.Wrapf(err, "could not write lockfile %s", lockfilePath)
	}

	log.WithField("lockfile", lockfilePath).Infof("Rebased under %s", rootPath)
	return nil
}
