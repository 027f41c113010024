package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// PuzzleGenerator adapts Generate to the ports.Generator contract.
type PuzzleGenerator struct{}

func NewPuzzleGenerator() *PuzzleGenerator { return &PuzzleGenerator{} }

// Generate creates a puzzle from the seed and wraps it in its persisted form.
func (g *PuzzleGenerator) Generate(ctx context.Context, seed int64, baseSize int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	p := Generate(baseSize, rng)

	out := &domain.Puzzle{
		Seed:      seed,
		BaseSize:  baseSize,
		Board:     p.Board().Compact(),
		Solution:  p.Solution().Compact(),
		Unique:    p.IsSolutionUnique(),
		CreatedAt: time.Now().UnixNano(),
	}
	return out, ports.Stats{Nodes: p.Nodes(), Duration: time.Since(start)}, nil
}
