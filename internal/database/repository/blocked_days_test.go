package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jask/calpick/core"
	"github.com/jask/calpick/internal/database"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "calpick-test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func day(t *testing.T, s string) core.Date {
	t.Helper()
	d, err := core.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestBlockedDayRepoAddListRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewBlockedDayRepo(testDB(t))

	first, err := repo.Add(ctx, day(t, "2024-03-07"), "maintenance")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.ID == "" || first.Day != day(t, "2024-03-07") || first.Reason != "maintenance" {
		t.Fatalf("unexpected row %+v", first)
	}
	if _, err := repo.Add(ctx, day(t, "2024-03-01"), ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Day != day(t, "2024-03-01") || list[1].Day != day(t, "2024-03-07") {
		t.Fatalf("unexpected list %+v", list)
	}

	if err := repo.Remove(ctx, day(t, "2024-03-07")); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := repo.Get(ctx, day(t, "2024-03-07")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after remove err = %v, want ErrNotFound", err)
	}
	if err := repo.Remove(ctx, day(t, "2024-03-07")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Remove err = %v, want ErrNotFound", err)
	}
}

func TestBlockedDayRepoAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewBlockedDayRepo(testDB(t))

	a, err := repo.Add(ctx, day(t, "2024-03-07"), "first")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	b, err := repo.Add(ctx, day(t, "2024-03-07"), "second")
	if err != nil {
		t.Fatalf("Add again: %v", err)
	}
	if a.ID != b.ID || b.Reason != "second" {
		t.Fatalf("expected reason update on same row, got %+v then %+v", a, b)
	}
	list, _ := repo.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected one row, got %d", len(list))
	}
}

func TestBlockedDayRepoRejectsZeroDay(t *testing.T) {
	repo := NewBlockedDayRepo(testDB(t))
	if _, err := repo.Add(context.Background(), core.Date{}, ""); err == nil {
		t.Fatalf("expected error for zero day")
	}
}
