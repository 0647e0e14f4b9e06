package migrate

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kestrel-sys/danktracker/common"
	"github.com/kestrel-sys/danktracker/db"
)

var Command = &cli.Command{
	Name:   "migrate",
	Usage:  "Run migrations manually",
	Action: run,
}

func run(c *cli.Context) error {
	postgres := os.Getenv("DATABASE_URL")
	if postgres == "" {
		return cli.Exit("No database url set, set DATABASE_URL.", 1)
	}

	err := db.RunMigrations(postgres)
	if err != nil {
		common.Log.Fatalf("Running migrations: %v", err)
	}

	common.Log.Info("Successfully ran migrations!")
	return nil
}
