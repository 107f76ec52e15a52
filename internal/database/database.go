package database

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Connect opens a SQLite database using the provided DSN.
func Connect(dsn string) *sqlx.DB {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(1)
	// Concurrent sales serialize on the single connection; a writer that
	// still hits a locked database waits instead of failing.
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		log.Fatalf("failed to set busy_timeout: %v", err)
	}
	return db
}
