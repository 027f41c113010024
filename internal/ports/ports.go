// Package ports defines the interfaces the outer layers consume.
package ports

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a board in place.
type Solver interface {
	Solve(ctx context.Context, b *board.Board) (Stats, error)
}

// Generator creates new minimal puzzles from a seed.
type Generator interface {
	Generate(ctx context.Context, seed int64, baseSize int) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (line/col/square).
type Validator interface {
	Validate(ctx context.Context, b *board.Board) (ok bool, conflicts []board.CellLoc, err error)
}

// Hinter returns the next forced move, if one exists.
type Hinter interface {
	Hint(ctx context.Context, b *board.Board) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
