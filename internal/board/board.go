// Package board holds the grid primitives the solver and generator build on:
// cell locations with line/column/square geometry, and the board itself with
// get/set/unset access, unit iteration, parsing and formatting.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// MaxBaseSize caps the supported board sizes. Values for a board of base
// size b range over 1..=b², and the candidate bitsets upstream hold them in
// a uint32, so 5 (a 25×25 board) is the ceiling.
const MaxBaseSize = 5

// Empty is the value of an unset cell.
const Empty uint8 = 0

// CellLoc identifies one cell on a board of a given base size. It is a plain
// value: the flat index plus enough geometry to derive line, column and
// square without touching the board.
type CellLoc struct {
	idx      int
	baseSize int
}

// NewCellLoc builds a location from a flat index.
func NewCellLoc(idx, baseSize int) CellLoc {
	return CellLoc{idx: idx, baseSize: baseSize}
}

// At builds a location from line and column coordinates.
func At(line, col, baseSize int) CellLoc {
	return CellLoc{idx: line*baseSize*baseSize + col, baseSize: baseSize}
}

// Index returns the flat index of the cell, in 0..baseSize⁴.
func (c CellLoc) Index() int { return c.idx }

// BaseSize returns the base size of the board this location belongs to.
func (c CellLoc) BaseSize() int { return c.baseSize }

// Line returns the line number of the cell.
func (c CellLoc) Line() int { return c.idx / (c.baseSize * c.baseSize) }

// Col returns the column number of the cell.
func (c CellLoc) Col() int { return c.idx % (c.baseSize * c.baseSize) }

// Square returns the square (sub-block) number of the cell. Squares are
// numbered left to right, top to bottom.
func (c CellLoc) Square() int {
	return (c.Line()/c.baseSize)*c.baseSize + c.Col()/c.baseSize
}

func (c CellLoc) String() string {
	return fmt.Sprintf("(%d, %d)", c.Line(), c.Col())
}

// IterLine returns every cell sharing this cell's line, in column order.
func (c CellLoc) IterLine() []CellLoc {
	side := c.baseSize * c.baseSize
	start := c.Line() * side
	cells := make([]CellLoc, side)
	for i := 0; i < side; i++ {
		cells[i] = CellLoc{idx: start + i, baseSize: c.baseSize}
	}
	return cells
}

// IterCol returns every cell sharing this cell's column, in line order.
func (c CellLoc) IterCol() []CellLoc {
	side := c.baseSize * c.baseSize
	col := c.Col()
	cells := make([]CellLoc, side)
	for i := 0; i < side; i++ {
		cells[i] = CellLoc{idx: i*side + col, baseSize: c.baseSize}
	}
	return cells
}

// IterSquare returns every cell sharing this cell's square, in index order.
func (c CellLoc) IterSquare() []CellLoc {
	side := c.baseSize * c.baseSize
	sqLine := (c.Line() / c.baseSize) * c.baseSize
	sqCol := (c.Col() / c.baseSize) * c.baseSize
	cells := make([]CellLoc, 0, side)
	for l := sqLine; l < sqLine+c.baseSize; l++ {
		for col := sqCol; col < sqCol+c.baseSize; col++ {
			cells = append(cells, CellLoc{idx: l*side + col, baseSize: c.baseSize})
		}
	}
	return cells
}

// Peers returns the cells of the line, column and square of this cell,
// concatenated in that order. The cell itself appears in each unit and
// square cells overlap the line and column; callers that mutate per peer
// must tolerate repeats.
func (c CellLoc) Peers() []CellLoc {
	peers := c.IterLine()
	peers = append(peers, c.IterCol()...)
	peers = append(peers, c.IterSquare()...)
	return peers
}

// PossibleValues returns the values not yet present in this cell's line,
// column or square. The second return is false when the cell is already
// filled, in which case no set is computed.
func (c CellLoc) PossibleValues(b *Board) ([]uint8, bool) {
	if b.Get(c) != Empty {
		return nil, false
	}

	side := uint8(c.baseSize * c.baseSize)
	seen := make([]bool, side+1)
	for _, peer := range c.Peers() {
		if v := b.Get(peer); v != Empty {
			seen[v] = true
		}
	}

	values := make([]uint8, 0, side)
	for v := uint8(1); v <= side; v++ {
		if !seen[v] {
			values = append(values, v)
		}
	}
	return values, true
}

// Board is a square sudoku grid with base_size×base_size squares. Cells are
// stored flat in line-major order; 0 means empty.
type Board struct {
	baseSize int
	cells    []uint8
}

// New returns an empty board. Base sizes outside 2..MaxBaseSize panic: the
// board contract treats an unrepresentable geometry as caller misuse, not a
// recoverable condition.
func New(baseSize int) *Board {
	if baseSize < 2 || baseSize > MaxBaseSize {
		panic(fmt.Sprintf("board: unsupported base size %d", baseSize))
	}
	n := baseSize * baseSize
	return &Board{
		baseSize: baseSize,
		cells:    make([]uint8, n*n),
	}
}

// BaseSize returns the base size (3 for a standard 9×9 board).
func (b *Board) BaseSize() int { return b.baseSize }

// Side returns the side length, base size squared.
func (b *Board) Side() int { return b.baseSize * b.baseSize }

// Get returns the value at the cell, or Empty.
func (b *Board) Get(c CellLoc) uint8 { return b.cells[c.idx] }

// GetAt returns the value at (line, col), or Empty.
func (b *Board) GetAt(line, col int) uint8 {
	return b.cells[line*b.Side()+col]
}

// Set writes a value and returns whatever the cell held before.
func (b *Board) Set(c CellLoc, value uint8) uint8 {
	prev := b.cells[c.idx]
	b.cells[c.idx] = value
	return prev
}

// Unset clears the cell and returns whatever it held before.
func (b *Board) Unset(c CellLoc) uint8 {
	prev := b.cells[c.idx]
	b.cells[c.idx] = Empty
	return prev
}

// CellAt returns the location for (line, col).
func (b *Board) CellAt(line, col int) CellLoc {
	return At(line, col, b.baseSize)
}

// IterCells returns every cell location in flat index order.
func (b *Board) IterCells() []CellLoc {
	cells := make([]CellLoc, len(b.cells))
	for i := range b.cells {
		cells[i] = CellLoc{idx: i, baseSize: b.baseSize}
	}
	return cells
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]uint8, len(b.cells))
	copy(cells, b.cells)
	return &Board{baseSize: b.baseSize, cells: cells}
}

// Equal reports whether both boards have the same base size and identical
// values at every index.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.baseSize != other.baseSize {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// FilledCount returns how many cells hold a value.
func (b *Board) FilledCount() int {
	n := 0
	for _, v := range b.cells {
		if v != Empty {
			n++
		}
	}
	return n
}

// ErrBadBoardString reports an unparseable board description.
var ErrBadBoardString = errors.New("board: malformed board string")

// Parse reads a board from its string form. Cells are single digits with '.'
// (or '0' or '_') for empty; whitespace and the '|' and '-' ruling used in
// pretty-printed boards are ignored. The cell count must be a fourth power.
func Parse(s string) (*Board, error) {
	var cells []uint8
	for _, r := range s {
		switch {
		case r == '.' || r == '_' || r == '0':
			cells = append(cells, Empty)
		case r >= '1' && r <= '9':
			cells = append(cells, uint8(r-'0'))
		case r == ' ' || r == '\n' || r == '\t' || r == '\r' || r == '|' || r == '-':
			// ruling and layout, skip
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrBadBoardString, r)
		}
	}

	baseSize := 0
	for bs := 2; bs <= MaxBaseSize; bs++ {
		if bs*bs*bs*bs == len(cells) {
			baseSize = bs
			break
		}
	}
	if baseSize == 0 {
		return nil, fmt.Errorf("%w: %d cells is not a square board", ErrBadBoardString, len(cells))
	}

	side := uint8(baseSize * baseSize)
	for _, v := range cells {
		if v > side {
			return nil, fmt.Errorf("%w: value %d does not fit a board of side %d", ErrBadBoardString, v, side)
		}
	}

	b := New(baseSize)
	copy(b.cells, cells)
	return b, nil
}

// MustParse is Parse for fixtures; it panics on malformed input.
func MustParse(s string) *Board {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// String renders the board one line per row with '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	side := b.Side()
	for l := 0; l < side; l++ {
		for c := 0; c < side; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v := b.GetAt(l, c); v != Empty {
				fmt.Fprintf(&sb, "%d", v)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compact renders the board as a single dot-notation line, the same form
// Parse accepts.
func (b *Board) Compact() string {
	var sb strings.Builder
	for _, v := range b.cells {
		if v != Empty {
			fmt.Fprintf(&sb, "%d", v)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
