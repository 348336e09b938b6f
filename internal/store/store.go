// Package store provides agenda item persistence behind a small document-style
// interface, with memory, SQLite and MongoDB backends.
package store

import (
	"context"
	"errors"
	"fmt"

	"agenda/internal/model"
	"agenda/internal/shared"
)

// ErrNotFound is returned by FindByID when no item has the requested id.
var ErrNotFound = errors.New("agenda item not found")

// Store is a collection of agenda items keyed by id.
type Store interface {
	// Save inserts the item, or fully replaces the stored item with the same id.
	// The item must already carry an id.
	Save(ctx context.Context, item model.AgendaItem) error

	// FindAll returns every stored item in storage order.
	FindAll(ctx context.Context) ([]model.AgendaItem, error)

	// FindByDay returns the items whose Day equals day exactly.
	FindByDay(ctx context.Context, day string) ([]model.AgendaItem, error)

	// FindByID returns ErrNotFound when id is absent.
	FindByID(ctx context.Context, id string) (model.AgendaItem, error)

	// DropAll removes every item. Dropping an empty collection is not an error.
	DropAll(ctx context.Context) error

	Close() error
}

// Open builds the backend selected by cfg.Store.
func Open(ctx context.Context, cfg *shared.ServerConfig) (Store, error) {
	switch cfg.Store {
	case shared.StoreMemory:
		return NewMemoryStore(), nil
	case shared.StoreMongo:
		return NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case shared.StoreSQLite:
		db, err := OpenDB(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open db %s: %w", cfg.DBPath, err)
		}
		if err := RunMigrations(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		return NewSQLiteStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

var errMissingID = errors.New("agenda item has no id")
