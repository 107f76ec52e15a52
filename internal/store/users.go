package store

import (
	"context"
	"database/sql"
	"errors"

	"brewdash/m/domain"
)

// ErrConflict signals a uniqueness violation (duplicate email).
var ErrConflict = errors.New("already exists")

func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash, role string) (int64, error) {
	var id int64
	err := s.db.QueryRowxContext(ctx, `INSERT INTO users (username, email, password, role) VALUES ($1, $2, $3, $4) RETURNING id`,
		username, email, passwordHash, role).Scan(&id)
	if err != nil {
		// The only constraint on users is the unique email.
		return 0, ErrConflict
	}
	return id, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, `SELECT id, username, email, password, role FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, unavailable(err)
	}
	return &user, nil
}

func (s *Store) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE users SET password = $1 WHERE id = $2`, passwordHash, userID); err != nil {
		return unavailable(err)
	}
	return nil
}
