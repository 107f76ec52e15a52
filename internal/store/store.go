// Package store is the data access layer: products, stock, transactions and
// notes over SQLite. The aggregation engine never touches SQL; it consumes
// the row sets returned here.
package store

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrUnavailable wraps every backend read/write failure. Callers do not retry
// or recover; the HTTP layer maps it to a 503.
var ErrUnavailable = errors.New("storage unavailable")

// ErrNotFound signals a row addressed by ID that does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
