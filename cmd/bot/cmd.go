// Package bot wires everything together and runs the bot.
package bot

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	wsutil "github.com/diamondburned/arikawa/v3/utils/ws"
	"github.com/getsentry/sentry-go"
	"github.com/starshine-sys/bcr"
	"github.com/urfave/cli/v2"

	"github.com/kestrel-sys/danktracker/bot"
	"github.com/kestrel-sys/danktracker/commands"
	"github.com/kestrel-sys/danktracker/common"
	"github.com/kestrel-sys/danktracker/db"
	"github.com/kestrel-sys/danktracker/db/stats"
	"github.com/kestrel-sys/danktracker/events"
)

var Command = &cli.Command{
	Name:   "bot",
	Usage:  "Run the bot",
	Action: run,
}

func run(c *cli.Context) error {
	ws := common.Log.Named("ws")
	wsutil.WSDebug = ws.Debug
	wsutil.WSError = func(err error) {
		ws.Error(err)
	}

	intents := gateway.IntentGuilds | gateway.IntentGuildMembers | gateway.IntentGuildMessages

	sf, _ := discord.ParseSnowflake(os.Getenv("OWNER"))

	r, err := bcr.NewWithIntents(
		os.Getenv("TOKEN"),
		[]discord.UserID{discord.UserID(sf)},
		strings.Split(os.Getenv("PREFIXES"), ","),
		intents,
	)
	if err != nil {
		return errors.Wrap(err, "creating router")
	}
	r.EmbedColor = bcr.ColourPurple

	// sentry, if enabled
	var hub *sentry.Hub
	if os.Getenv("SENTRY_URL") != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:     os.Getenv("SENTRY_URL"),
			Release: common.Version,
		})
		if err != nil {
			return errors.Wrap(err, "initialising sentry")
		}
		hub = sentry.CurrentHub()
	}

	database, err := db.New(os.Getenv("DATABASE_URL"), os.Getenv("REDIS"), hub)
	if err != nil {
		return errors.Wrap(err, "opening database connection")
	}
	common.Log.Infof("Opened database connection.")

	if os.Getenv("INFLUX_URL") != "" {
		database.Stats = stats.New(
			os.Getenv("INFLUX_URL"),
			os.Getenv("INFLUX_TOKEN"),
			os.Getenv("INFLUX_ORG"),
			os.Getenv("INFLUX_DB"),
		)
		common.Log.Infof("Submitting metrics to InfluxDB.")
	}

	b := bot.New(r, database)

	commands.Init(b)
	events.Init(b)

	ctx, cancel := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer cancel()

	if err := r.ShardManager.Open(ctx); err != nil {
		return errors.Wrap(err, "connecting to discord")
	}

	defer func() {
		database.Pool.Close()
		common.Log.Info("Closed database connection.")
		if err := r.ShardManager.Close(); err != nil {
			common.Log.Errorf("Closing gateway connection: %v", err)
		} else {
			common.Log.Info("Disconnected from Discord.")
		}
	}()

	common.Log.Info("Connected to Discord. Press Ctrl-C or send an interrupt signal to stop.")

	s, _ := r.StateFromGuildID(0)
	botUser, _ := s.Me()
	common.Log.Infof("User: %v#%v (%v)", botUser.Username, botUser.Discriminator, botUser.ID)
	r.Bot = botUser
	// normally creating a Context would do this, but as we set the user above, that doesn't work
	r.Prefixes = append(r.Prefixes, "<@"+r.Bot.ID.String()+">", "<@!"+r.Bot.ID.String()+">")

	<-ctx.Done()
	common.Log.Infof("Interrupt signal received. Shutting down...")
	return nil
}
