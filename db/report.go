package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/getsentry/sentry-go"
	"github.com/starshine-sys/bcr"

	"github.com/kestrel-sys/danktracker/common"
)

// ErrorContext is the context for an error
type ErrorContext struct {
	Event   string
	Command string

	UserID  discord.UserID
	GuildID discord.GuildID
}

// Report reports an error to sentry, if configured.
func (db *DB) Report(ctx ErrorContext, err error) *sentry.EventID {
	common.Log.Errorf("Error in %v: %v", ctx.Event+ctx.Command, err)

	if db.Hub == nil {
		return nil
	}

	hub := db.Hub.Clone()

	data := map[string]interface{}{}

	if ctx.Event != "" {
		data["event"] = ctx.Event
	}

	if ctx.Command != "" {
		data["command"] = ctx.Command
	}

	if ctx.GuildID.IsValid() {
		data["guild"] = ctx.GuildID
	}

	hub.ConfigureScope(func(scope *sentry.Scope) {
		if ctx.UserID.IsValid() {
			scope.SetUser(sentry.User{ID: ctx.UserID.String()})
			data["user"] = ctx.UserID
		}
	})

	hub.AddBreadcrumb(&sentry.Breadcrumb{
		Data:      data,
		Level:     sentry.LevelError,
		Timestamp: time.Now().UTC(),
	}, nil)

	return hub.CaptureException(err)
}

// ReportCtx reports an error and sends the event ID to the context channel, if possible.
func (db *DB) ReportCtx(ctx *bcr.Context, e error) (err error) {
	var guildID discord.GuildID
	if ctx.Guild != nil {
		guildID = ctx.Guild.ID
	}

	id := db.Report(ErrorContext{
		Command: strings.Join(ctx.FullCommandPath, " "),
		UserID:  ctx.Author.ID,
		GuildID: guildID,
	}, e)

	if id == nil {
		_, err = ctx.Send("Internal error occurred.")
		return
	}

	_, err = ctx.Send(fmt.Sprintf("Error code: ``%v``", bcr.EscapeBackticks(string(*id))), discord.Embed{
		Title:       "Internal error occurred",
		Description: "An internal error has occurred. If this issue persists, please contact the bot developer with the error code above.",
		Color:       bcr.ColourRed,
		Footer: &discord.EmbedFooter{
			Text: string(*id),
		},
		Timestamp: discord.NowTimestamp(),
	})
	return
}
