package usecase

import (
	"context"
	"testing"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

type memStore struct {
	saved []*domain.Puzzle
}

func (m *memStore) Save(ctx context.Context, p *domain.Puzzle) error {
	m.saved = append(m.saved, p)
	return nil
}

func (m *memStore) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	for _, p := range m.saved {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, context.Canceled
}

func (m *memStore) List(ctx context.Context) ([]domain.PuzzleMeta, error) { return nil, nil }

var _ ports.Storage = (*memStore)(nil)

func TestUnconfiguredDependencies(t *testing.T) {
	u := NewService(nil, nil, nil, nil, nil)
	ctx := context.Background()
	b := board.New(3)

	if _, err := u.Solve(ctx, b); err == nil {
		t.Fatal("Solve without a solver should fail")
	}
	if _, _, err := u.Generate(ctx, 1, 3); err == nil {
		t.Fatal("Generate without a generator should fail")
	}
	if _, _, err := u.Validate(ctx, b); err == nil {
		t.Fatal("Validate without a validator should fail")
	}
	if _, _, err := u.Hint(ctx, b); err == nil {
		t.Fatal("Hint without a hinter should fail")
	}
	if err := u.Save(ctx, &domain.Puzzle{}); err == nil {
		t.Fatal("Save without storage should fail")
	}
}

func TestSaveAssignsID(t *testing.T) {
	store := &memStore{}
	u := NewService(nil, nil, nil, nil, store)

	p := &domain.Puzzle{BaseSize: 3}
	if err := u.Save(context.Background(), p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if p.ID == "" {
		t.Fatal("Save left the ID empty")
	}
	if len(store.saved) != 1 || store.saved[0] != p {
		t.Fatalf("stored %+v", store.saved)
	}
}
