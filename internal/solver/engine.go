package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/ports"
)

// Engine adapts the solver to the ports.Solver contract. A solve has no
// suspension points, so the context is only consulted before the search
// starts.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

func (e *Engine) Solve(ctx context.Context, b *board.Board) (ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return ports.Stats{}, err
	}
	s := New(b)
	err := s.Solve()
	return ports.Stats{Nodes: s.Nodes(), Duration: time.Since(start)}, err
}
