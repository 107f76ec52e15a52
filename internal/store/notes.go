package store

import (
	"context"

	"github.com/google/uuid"

	"brewdash/m/domain"
)

func (s *Store) CreateNote(ctx context.Context, n *domain.Note) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO notes (id, category, title, content) VALUES ($1, $2, $3, $4)`,
		n.ID, n.Category, n.Title, n.Content); err != nil {
		return unavailable(err)
	}
	return nil
}

// Notes lists notes newest first, optionally restricted to one category.
func (s *Store) Notes(ctx context.Context, category string) ([]domain.Note, error) {
	var notes []domain.Note
	var err error
	if category == "" {
		err = s.db.SelectContext(ctx, &notes, `SELECT id, category, title, content, created_at, updated_at FROM notes ORDER BY created_at DESC`)
	} else {
		err = s.db.SelectContext(ctx, &notes, `SELECT id, category, title, content, created_at, updated_at FROM notes WHERE category = $1 ORDER BY created_at DESC`, category)
	}
	if err != nil {
		return nil, unavailable(err)
	}
	return notes, nil
}

func (s *Store) UpdateNote(ctx context.Context, n *domain.Note) error {
	res, err := s.db.ExecContext(ctx, `UPDATE notes SET category = $1, title = $2, content = $3, updated_at = CURRENT_TIMESTAMP WHERE id = $4`,
		n.Category, n.Title, n.Content, n.ID)
	if err != nil {
		return unavailable(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return unavailable(err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteNote(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return unavailable(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return unavailable(err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
