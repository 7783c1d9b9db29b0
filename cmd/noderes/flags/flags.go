// Package flags defines flag sets shared between commands.
package flags

import "github.com/urfave/cli"

func WithGlobalFlags(f []cli.Flag) []cli.Flag {
	return append(f, Global...)
}

var (
	Global         = []cli.Flag{Config, NoAnsi, Debug, Dir}
	ConfigFlagName = "config"
	Config         = cli.StringFlag{Name: "c, config", Usage: "path to config file (default: '.noderes.{yml,yaml,toml}')"}
	NoAnsiFlagName = "no-ansi"
	NoAnsi         = cli.BoolFlag{Name: NoAnsiFlagName, Usage: "do not use interactive mode (ANSI codes)"}
	DebugFlagName  = "debug"
	Debug          = cli.BoolFlag{Name: DebugFlagName, Usage: "print debug information to stderr"}
	DirFlagName    = "dir"
	Dir            = cli.StringFlag{Name: "d, dir", Usage: "the project directory to operate in (default: '.')"}
)

var (
	DepthFlagName            = "depth"
	Depth                    = cli.IntFlag{Name: DepthFlagName, Usage: "maximum tree depth to request from yarn list (default: unlimited)", Value: -1}
	NoFrozenLockfileFlagName = "no-frozen-lockfile"
	NoFrozenLockfile         = cli.BoolFlag{Name: NoFrozenLockfileFlagName, Usage: "do not enforce the lockfile during install"}
	RootFlagName             = "root"
	Root                     = cli.StringFlag{Name: "r, root", Usage: "path prefix the package is relocated under"}
)
