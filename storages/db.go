package storages

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/reusee/pal/logs"
	_ "modernc.org/sqlite"
)

type DB = *sql.DB

// DBPath locates the chat database. Overridable in a fork, for example by
// tests.
type DBPath string

func (Module) DBPath() DBPath {
	configDir, err := os.UserConfigDir()
	if err != nil {
		panic(err)
	}
	dir := filepath.Join(configDir, "pal")
	if err := os.MkdirAll(dir, 0755); err != nil {
		panic(err)
	}
	return DBPath(filepath.Join(dir, "chats.db"))
}

func (Module) DB(
	path DBPath,
	logger logs.Logger,
) DB {
	db, err := sql.Open("sqlite", string(path))
	if err != nil {
		panic(err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec(`
		create table if not exists chats (
			id text primary key,
			title text not null,
			created_at integer not null,
			body text not null
		)
	`); err != nil {
		panic(err)
	}
	logger.Debug("chat database", "path", path)
	return db
}
