package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"agenda/internal/model"
	"agenda/internal/store"
)

// ErrValidation is returned by Create for items it refuses to persist.
var ErrValidation = errors.New("invalid agenda item")

// rejectedTitle makes Create fail for any title containing it. It exists to
// exercise the error path end to end.
const rejectedTitle = "fail"

// Service is the agenda use-case layer. It holds no state of its own.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) ListAll(ctx context.Context) ([]model.AgendaItem, error) {
	return s.store.FindAll(ctx)
}

func (s *Service) ListByDay(ctx context.Context, day string) ([]model.AgendaItem, error) {
	return s.store.FindByDay(ctx, day)
}

// GetByID returns an error matching store.ErrNotFound if id is unknown.
func (s *Service) GetByID(ctx context.Context, id string) (model.AgendaItem, error) {
	return s.store.FindByID(ctx, id)
}

// Create validates item, assigns an id if it has none, and saves it. An item
// whose id already exists replaces the stored one. The saved item is returned.
func (s *Service) Create(ctx context.Context, item model.AgendaItem) (model.AgendaItem, error) {
	if strings.Contains(item.Title, rejectedTitle) {
		return model.AgendaItem{}, fmt.Errorf("%w: title %q contains %q", ErrValidation, item.Title, rejectedTitle)
	}
	if !item.HasID() {
		item.ID = uuid.NewString()
	}
	if err := s.store.Save(ctx, item); err != nil {
		return model.AgendaItem{}, err
	}
	return item, nil
}

func (s *Service) DeleteAll(ctx context.Context) error {
	return s.store.DropAll(ctx)
}
