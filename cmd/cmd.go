// Package cmd is the command line entry point.
package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	botcmd "github.com/kestrel-sys/danktracker/cmd/bot"
	"github.com/kestrel-sys/danktracker/cmd/migrate"
	"github.com/kestrel-sys/danktracker/common"
)

var app = &cli.App{
	Name:    "danktracker",
	Usage:   "Dank Memer gift and share tracking bot",
	Version: common.Version,

	Commands: []*cli.Command{
		botcmd.Command,
		migrate.Command,
	},
}

func Run() error {
	return app.Run(os.Args)
}
