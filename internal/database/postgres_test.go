package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restoreGlobals() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// stubMigrationDeps 讓 newMigrator 一路成功，只由 migrator 決定結果
func stubMigrationDeps(m migrateInstance) {
	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) { return m, nil }
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return nil, errors.New("bad") }
	_, err := NewPgxPool(context.Background(), "url")
	require.Error(t, err)

	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return &pgxpool.Pool{}, nil }
	db, err := NewPgxPool(context.Background(), "url")
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = true
	}
	require.True(t, names["000001_create_users.up.sql"])
	require.True(t, names["000002_create_user_sessions.up.sql"])
	require.True(t, names["000002_create_user_sessions.down.sql"])
}

func TestNewMigratorErrors(t *testing.T) {
	for _, fn := range []func(string) error{RunMigrations, RollbackAll} {
		restoreGlobals()
		sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
		require.Error(t, fn("url"))

		stubMigrationDeps(fakeMigrator{})
		postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
		require.Error(t, fn("url"))

		stubMigrationDeps(fakeMigrator{})
		iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") }
		require.Error(t, fn("url"))

		stubMigrationDeps(fakeMigrator{})
		migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
			return nil, errors.New("mig")
		}
		require.Error(t, fn("url"))
	}
	restoreGlobals()
}

func TestRunMigrations(t *testing.T) {
	t.Cleanup(restoreGlobals)

	stubMigrationDeps(fakeMigrator{upErr: errors.New("u")})
	require.Error(t, RunMigrations("url"))

	stubMigrationDeps(fakeMigrator{upErr: migrate.ErrNoChange})
	require.NoError(t, RunMigrations("url"))

	stubMigrationDeps(fakeMigrator{})
	require.NoError(t, RunMigrations("url"))
}

func TestRollbackAll(t *testing.T) {
	t.Cleanup(restoreGlobals)

	stubMigrationDeps(fakeMigrator{downErr: errors.New("d")})
	require.Error(t, RollbackAll("url"))

	stubMigrationDeps(fakeMigrator{downErr: migrate.ErrNoChange})
	require.NoError(t, RollbackAll("url"))
}
