// Package hint suggests the next forced move on a board.
package hint

import (
	"context"
	"fmt"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/solver"
)

// Singles hints naked and hidden singles, naked first, straight off the
// solver's candidate view.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, b *board.Board) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}

	s := solver.New(b.Clone())
	if singles := s.NakedSingles(); len(singles) > 0 {
		return toHint(singles[0], solver.StrategyNakedSingle), true, nil
	}
	if singles := s.HiddenSingles(); len(singles) > 0 {
		return toHint(singles[0], solver.StrategyHiddenSingle), true, nil
	}
	return domain.Hint{}, false, nil
}

func toHint(single solver.Single, strategy solver.Strategy) domain.Hint {
	msg := fmt.Sprintf("Single: only %d fits here", single.Value)
	if strategy == solver.StrategyHiddenSingle {
		msg = fmt.Sprintf("Hidden single: only place for %d in its unit", single.Value)
	}
	return domain.Hint{
		Message:  msg,
		Cell:     domain.CellCoord{Line: single.Cell.Line(), Col: single.Cell.Col()},
		Value:    single.Value,
		Strategy: strategy.String(),
	}
}
