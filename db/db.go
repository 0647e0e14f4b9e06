package db

import (
	"context"
	"database/sql"
	"embed"

	"emperror.dev/errors"
	"github.com/Masterminds/squirrel"
	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/mediocregopher/radix/v4"

	"github.com/kestrel-sys/danktracker/common"
	"github.com/kestrel-sys/danktracker/db/stats"

	migrate "github.com/rubenv/sql-migrate"

	// pgx driver for migrations
	_ "github.com/jackc/pgx/v4/stdlib"
)

// sq is a squirrel builder for postgres
var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type DB struct {
	*pgxpool.Pool

	// Redis holds the alias index; may be nil, in which case cached-alias
	// lookups always miss.
	Redis radix.Client

	Hub   *sentry.Hub
	Stats *stats.Client
}

func New(postgres, redis string, hub *sentry.Hub) (*DB, error) {
	err := RunMigrations(postgres)
	if err != nil {
		return nil, errors.Wrap(err, "running migrations")
	}

	pool, err := pgxpool.Connect(context.Background(), postgres)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to postgres")
	}

	db := &DB{
		Pool: pool,
		Hub:  hub,
	}

	if redis != "" {
		db.Redis, err = (&radix.PoolConfig{}).New(context.Background(), "tcp", redis)
		if err != nil {
			return nil, errors.Wrap(err, "connecting to redis")
		}
	}

	return db, nil
}

//go:embed migrations
var fs embed.FS

// RunMigrations runs all of the migrations in migrations/.
func RunMigrations(postgres string) (err error) {
	db, err := sql.Open("pgx", postgres)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}

	// we close this because we end up using pgx's native driver for all other queries.
	defer db.Close()

	err = db.Ping()
	if err != nil {
		return errors.Wrap(err, "pinging database")
	}

	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "migrations",
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return errors.Wrap(err, "running migrations")
	}

	if n != 0 {
		common.Log.Debugf("Performed %v migrations!", n)
	}
	return nil
}
