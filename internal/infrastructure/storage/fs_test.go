package storage

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"svw.info/sudokugen/internal/domain"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:        "abc",
		Seed:      42,
		BaseSize:  2,
		Board:     "12...43........1",
		Solution:  "1234243131424213",
		Unique:    true,
		CreatedAt: 1700000000,
		Name:      "fixture",
	}
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx, "abc")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("Load = %+v, want %+v", got, p)
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load = %v, want ErrNotFound", err)
	}
}

func TestSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("Save accepted a puzzle without an ID")
	}
}

func TestList(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		if err := s.Save(ctx, &domain.Puzzle{ID: id, BaseSize: 3}); err != nil {
			t.Fatalf("Save(%s): %v", id, err)
		}
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(metas))
	}
	seen := map[string]bool{}
	for _, m := range metas {
		seen[m.ID] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Fatalf("List = %+v", metas)
	}
}

func TestListMissingDir(t *testing.T) {
	s := NewFS(filepath.Join(t.TempDir(), "does-not-exist"))
	metas, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 0 {
		t.Fatalf("List = %+v on a missing directory", metas)
	}
}
