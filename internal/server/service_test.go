package server

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"

	"agenda/internal/model"
	"agenda/internal/store"
)

// brokenStore fails every call with err.
type brokenStore struct {
	store.MemoryStore
	err error
}

func (b *brokenStore) Save(context.Context, model.AgendaItem) error { return b.err }
func (b *brokenStore) FindAll(context.Context) ([]model.AgendaItem, error) {
	return nil, b.err
}
func (b *brokenStore) DropAll(context.Context) error { return b.err }

func TestCreateThenGet(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore())

	saved, err := svc.Create(ctx, model.NewAgendaItemWithFields("Intro to X", "Jane", "Monday", "10:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uuid.Parse(saved.ID); err != nil {
		t.Errorf("expected uuid id, got %q", saved.ID)
	}

	got, err := svc.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != saved {
		t.Errorf("expected %+v, got %+v", saved, got)
	}
}

func TestCreateKeepsExistingID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore())

	item := model.NewAgendaItem()
	item.Title = "Keynote"
	saved, err := svc.Create(ctx, item)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if saved.ID != item.ID {
		t.Errorf("expected id %q to be kept, got %q", item.ID, saved.ID)
	}
}

func TestCreateRejectsFailTitle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore())

	for _, title := range []string{"fail", "failing talk", "how to fail fast"} {
		_, err := svc.Create(ctx, model.NewAgendaItemWithFields(title, "Joe", "Monday", "09:00"))
		if !errors.Is(err, ErrValidation) {
			t.Errorf("title %q: expected ErrValidation, got %v", title, err)
		}
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected nothing persisted, got %d items", len(all))
	}

	// the check is case-sensitive
	if _, err := svc.Create(ctx, model.NewAgendaItemWithFields("FAIL safe", "Joe", "Monday", "09:00")); err != nil {
		t.Errorf("uppercase title should be accepted: %v", err)
	}
}

func TestListByDay(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore())

	a, _ := svc.Create(ctx, model.NewAgendaItemWithFields("Intro to X", "Jane", "Monday", "10:00"))
	b, _ := svc.Create(ctx, model.NewAgendaItemWithFields("Closing", "Joe", "Monday", "17:00"))
	svc.Create(ctx, model.NewAgendaItemWithFields("Workshop", "Ann", "Wednesday", "13:00"))

	monday, err := svc.ListByDay(ctx, "Monday")
	if err != nil {
		t.Fatalf("list by day: %v", err)
	}
	if len(monday) != 2 {
		t.Fatalf("expected 2 items, got %d", len(monday))
	}
	ids := map[string]bool{monday[0].ID: true, monday[1].ID: true}
	if !ids[a.ID] || !ids[b.ID] {
		t.Errorf("expected items %s and %s, got %+v", a.ID, b.ID, monday)
	}

	tuesday, err := svc.ListByDay(ctx, "Tuesday")
	if err != nil {
		t.Fatalf("list by day: %v", err)
	}
	if len(tuesday) != 0 {
		t.Errorf("expected no items, got %+v", tuesday)
	}
}

func TestDeleteAllTwice(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore())
	svc.Create(ctx, model.NewAgendaItemWithFields("Intro to X", "Jane", "Monday", "10:00"))

	if err := svc.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if err := svc.DeleteAll(ctx); err != nil {
		t.Fatalf("second delete all: %v", err)
	}
	all, _ := svc.ListAll(ctx)
	if len(all) != 0 {
		t.Errorf("expected empty, got %d", len(all))
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStorageErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	svc := NewService(&brokenStore{err: boom})

	if _, err := svc.Create(ctx, model.NewAgendaItemWithFields("ok", "a", "d", "t")); err != boom {
		t.Errorf("create: expected %v unchanged, got %v", boom, err)
	}
	if _, err := svc.ListAll(ctx); err != boom {
		t.Errorf("list: expected %v unchanged, got %v", boom, err)
	}
	if err := svc.DeleteAll(ctx); err != boom {
		t.Errorf("delete all: expected %v unchanged, got %v", boom, err)
	}
}

func TestConcurrentCreatesOnSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := store.OpenDB(filepath.Join(t.TempDir(), "agenda.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := store.RunMigrations(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	s := store.NewSQLiteStore(db)
	t.Cleanup(func() { s.Close() })
	svc := NewService(s)

	const n = 200
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		fails []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Create(ctx, model.NewAgendaItemWithFields(fmt.Sprintf("talk %d", i), "Jane", "Monday", "10:00"))
			if err != nil {
				mu.Lock()
				fails = append(fails, err)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if len(fails) > 0 {
		t.Fatalf("%d of %d creates failed, first: %v", len(fails), n, fails[0])
	}
	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != n {
		t.Errorf("expected %d items, got %d", n, len(all))
	}
}
