package store

import (
	"context"
	"database/sql"
	"errors"

	"agenda/internal/model"
)

// SQLiteStore keeps items in the agenda_items table. Rows are returned in
// rowid order, which is insertion order since upserts keep the rowid.
type SQLiteStore struct {
	DB *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db}
}

func (s *SQLiteStore) Save(ctx context.Context, item model.AgendaItem) error {
	if !item.HasID() {
		return errMissingID
	}
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO agenda_items (id, title, author, day, time)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, author=excluded.author, day=excluded.day, time=excluded.time`,
		item.ID, item.Title, item.Author, item.Day, item.Time,
	)
	return err
}

func (s *SQLiteStore) FindAll(ctx context.Context) ([]model.AgendaItem, error) {
	return s.query(ctx,
		`SELECT id, title, author, day, time FROM agenda_items ORDER BY rowid`)
}

func (s *SQLiteStore) FindByDay(ctx context.Context, day string) ([]model.AgendaItem, error) {
	return s.query(ctx,
		`SELECT id, title, author, day, time FROM agenda_items WHERE day = ? ORDER BY rowid`, day)
}

func (s *SQLiteStore) FindByID(ctx context.Context, id string) (model.AgendaItem, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT id, title, author, day, time FROM agenda_items WHERE id = ?`, id)

	var it model.AgendaItem
	if err := row.Scan(&it.ID, &it.Title, &it.Author, &it.Day, &it.Time); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AgendaItem{}, ErrNotFound
		}
		return model.AgendaItem{}, err
	}
	return it, nil
}

func (s *SQLiteStore) DropAll(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM agenda_items`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.DB.Close()
}

func (s *SQLiteStore) query(ctx context.Context, q string, args ...any) ([]model.AgendaItem, error) {
	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.AgendaItem{}
	for rows.Next() {
		var it model.AgendaItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Author, &it.Day, &it.Time); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
