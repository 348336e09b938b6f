package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"agenda/internal/model"
)

// runStoreContract exercises behavior every backend must share. s must be empty.
func runStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("save and find by id", func(t *testing.T) {
		it := model.NewAgendaItem()
		it.Title, it.Author, it.Day, it.Time = "Intro to X", "Jane", "Monday", "10:00"
		if err := s.Save(ctx, it); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := s.FindByID(ctx, it.ID)
		if err != nil {
			t.Fatalf("find by id: %v", err)
		}
		if got != it {
			t.Errorf("expected %+v, got %+v", it, got)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := s.FindByID(ctx, "does-not-exist")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("save without id", func(t *testing.T) {
		err := s.Save(ctx, model.NewAgendaItemWithFields("t", "a", "d", "h"))
		if err == nil {
			t.Error("expected error saving item without id")
		}
	})

	t.Run("find by day", func(t *testing.T) {
		if err := s.DropAll(ctx); err != nil {
			t.Fatalf("drop: %v", err)
		}
		a := model.NewAgendaItem()
		a.Title, a.Day = "Intro to X", "Monday"
		b := model.NewAgendaItem()
		b.Title, b.Day = "Closing", "Monday"
		c := model.NewAgendaItem()
		c.Title, c.Day = "Keynote", "monday"
		for _, it := range []model.AgendaItem{a, b, c} {
			if err := s.Save(ctx, it); err != nil {
				t.Fatalf("save: %v", err)
			}
		}

		monday, err := s.FindByDay(ctx, "Monday")
		if err != nil {
			t.Fatalf("find by day: %v", err)
		}
		if len(monday) != 2 {
			t.Fatalf("expected 2 items on Monday, got %d", len(monday))
		}
		for _, it := range monday {
			if it.Day != "Monday" {
				t.Errorf("unexpected day %q", it.Day)
			}
		}

		tuesday, err := s.FindByDay(ctx, "Tuesday")
		if err != nil {
			t.Fatalf("find by day: %v", err)
		}
		if tuesday == nil || len(tuesday) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", tuesday)
		}
	})

	t.Run("save replaces existing id", func(t *testing.T) {
		it := model.NewAgendaItem()
		it.Title = "Draft"
		if err := s.Save(ctx, it); err != nil {
			t.Fatalf("save: %v", err)
		}
		it.Title = "Final"
		if err := s.Save(ctx, it); err != nil {
			t.Fatalf("save again: %v", err)
		}
		got, err := s.FindByID(ctx, it.ID)
		if err != nil {
			t.Fatalf("find by id: %v", err)
		}
		if got.Title != "Final" {
			t.Errorf("expected replaced title, got %q", got.Title)
		}

		all, _ := s.FindAll(ctx)
		n := 0
		for _, x := range all {
			if x.ID == it.ID {
				n++
			}
		}
		if n != 1 {
			t.Errorf("expected exactly one stored copy, got %d", n)
		}
	})

	t.Run("concurrent saves", func(t *testing.T) {
		if err := s.DropAll(ctx); err != nil {
			t.Fatalf("drop: %v", err)
		}
		const n = 100
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				it := model.NewAgendaItem()
				it.Title = fmt.Sprintf("talk %d", i)
				it.Day = "Monday"
				errs <- s.Save(ctx, it)
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Errorf("save: %v", err)
			}
		}

		all, err := s.FindAll(ctx)
		if err != nil {
			t.Fatalf("find all: %v", err)
		}
		if len(all) != n {
			t.Errorf("expected %d items, got %d", n, len(all))
		}
	})

	t.Run("drop all is idempotent", func(t *testing.T) {
		if err := s.DropAll(ctx); err != nil {
			t.Fatalf("drop: %v", err)
		}
		if err := s.DropAll(ctx); err != nil {
			t.Fatalf("second drop: %v", err)
		}
		all, err := s.FindAll(ctx)
		if err != nil {
			t.Fatalf("find all: %v", err)
		}
		if all == nil || len(all) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", all)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestMemoryStoreKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var ids []string
	for _, title := range []string{"first", "second", "third"} {
		it := model.NewAgendaItem()
		it.Title = title
		ids = append(ids, it.ID)
		s.Save(ctx, it)
	}
	// replacing must not move the item
	first, _ := s.FindByID(ctx, ids[0])
	first.Title = "first, revised"
	s.Save(ctx, first)

	all, _ := s.FindAll(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 items, got %d", len(all))
	}
	for i, it := range all {
		if it.ID != ids[i] {
			t.Errorf("position %d: expected %s, got %s", i, ids[i], it.ID)
		}
	}
}
