// Package validator performs fast duplicate checks over a board's units.
package validator

import (
	"context"

	"svw.info/sudokugen/internal/board"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans every line, column and square with a bitmask and reports
// cells whose value already appeared earlier in the unit.
func (v *FastValidator) Validate(ctx context.Context, b *board.Board) (bool, []board.CellLoc, error) {
	conf := make([]board.CellLoc, 0, 8)
	side := b.Side()
	base := b.BaseSize()

	scan := func(cells []board.CellLoc) {
		var mask uint32
		for _, c := range cells {
			val := b.Get(c)
			if val == board.Empty {
				continue
			}
			bit := uint32(1) << val
			if mask&bit != 0 {
				conf = append(conf, c)
			}
			mask |= bit
		}
	}

	for i := 0; i < side; i++ {
		scan(board.At(i, 0, base).IterLine())
		scan(board.At(0, i, base).IterCol())
		scan(board.At((i/base)*base, (i%base)*base, base).IterSquare())
	}
	return len(conf) == 0, conf, nil
}

// IsSolved reports whether the board is completely filled and conflict-free.
func (v *FastValidator) IsSolved(ctx context.Context, b *board.Board) bool {
	if b.FilledCount() != b.Side()*b.Side() {
		return false
	}
	ok, _, _ := v.Validate(ctx, b)
	return ok
}
