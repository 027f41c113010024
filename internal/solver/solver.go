// Package solver implements the incremental constraint-propagation search:
// a candidate cache with reversible mutation, and a strategy-ordered loop of
// naked singles, hidden singles and least-candidate guessing with
// chronological backtracking restricted to guess points.
package solver

import (
	"math/rand"
	"sort"

	"svw.info/sudokugen/internal/board"
)

// Strategy names how a move was found.
type Strategy uint8

const (
	StrategyNakedSingle Strategy = iota
	StrategyHiddenSingle
	StrategyGuess
)

func (s Strategy) String() string {
	switch s {
	case StrategyNakedSingle:
		return "naked-single"
	case StrategyHiddenSingle:
		return "hidden-single"
	default:
		return "guess"
	}
}

// UnsolvableError reports that the board admits no valid completion. It is
// the only error kind the solver surfaces.
type UnsolvableError struct{}

func (UnsolvableError) Error() string { return "the board has no solution" }

// ErrUnsolvable is the value returned for unsolvable boards; match it with
// errors.Is.
var ErrUnsolvable error = UnsolvableError{}

// Move is one committed assignment in the move log, with the undo token
// needed to reverse its cache effects exactly.
type Move struct {
	Strategy Strategy
	Cell     board.CellLoc
	Value    uint8
	undo     *undoToken
}

// Alternatives returns the other values that were still possible at the cell
// when this move was committed, in ascending order.
func (m Move) Alternatives() []uint8 {
	return m.undo.alternatives(m.Value)
}

// Single is a forced move detected by a singles scan.
type Single struct {
	Cell  board.CellLoc
	Value uint8
}

// Solver drives the search over one board. The board, the candidate cache
// and the move log live in a single owning struct; all mutation goes through
// its methods. The zero rng means deterministic mode.
type Solver struct {
	board   *board.Board
	cache   *candidateCache
	moveLog []Move
	rng     *rand.Rand
	nodes   int
}

// New builds a deterministic solver over the board. The board is mutated in
// place by Solve.
func New(b *board.Board) *Solver {
	return &Solver{
		board: b,
		cache: newCandidateCache(b),
	}
}

// NewRandom builds a solver whose guesses are randomized through the given
// rng. Generation threads a seeded rng here so puzzles are reproducible.
func NewRandom(b *board.Board, rng *rand.Rand) *Solver {
	s := New(b)
	s.rng = rng
	return s
}

// Solve solves the board in place, deterministically.
func Solve(b *board.Board) error {
	return New(b).Solve()
}

// Moves returns the committed move log, oldest first.
func (s *Solver) Moves() []Move { return s.moveLog }

// Nodes returns how many assignments the search committed, including ones
// later undone.
func (s *Solver) Nodes() int { return s.nodes }

// Solve runs the search to completion. It returns ErrUnsolvable when the
// board is contradictory on entry or when backtracking exhausts the move
// log; on success the board holds a complete valid assignment.
func (s *Solver) Solve() error {
	if hasDuplicateGivens(s.board) {
		return ErrUnsolvable
	}

	contradiction := false
	s.cache.possibleValues.forEach(func(_ board.CellLoc, values valueSet) {
		if values.isEmpty() {
			contradiction = true
		}
	})
	if contradiction {
		return ErrUnsolvable
	}

	for !s.cache.possibleValues.isEmpty() {
		if err := s.solveIteration(); err != nil {
			return err
		}
	}
	return nil
}

// NakedSingles returns every open cell with exactly one candidate, in cell
// index order.
func (s *Solver) NakedSingles() []Single {
	var singles []Single
	s.cache.possibleValues.forEach(func(cell board.CellLoc, values valueSet) {
		if value, ok := values.single(); ok {
			singles = append(singles, Single{Cell: cell, Value: value})
		}
	})
	return singles
}

// HiddenSingles returns every (unit, value) pair with exactly one candidate
// cell, deduplicated and sorted by cell index then value.
func (s *Solver) HiddenSingles() []Single {
	seen := make(map[Single]struct{})
	s.cache.iterCandidates(func(_ cellBlock, value uint8, cells *cellSet) {
		if cells.len() != 1 {
			return
		}
		seen[Single{Cell: cells.members()[0], Value: value}] = struct{}{}
	})

	singles := make([]Single, 0, len(seen))
	for single := range seen {
		singles = append(singles, single)
	}
	sort.Slice(singles, func(i, j int) bool {
		if singles[i].Cell.Index() != singles[j].Cell.Index() {
			return singles[i].Cell.Index() < singles[j].Cell.Index()
		}
		return singles[i].Value < singles[j].Value
	})
	return singles
}

// guess picks the open cell with the fewest candidates. Deterministic mode
// takes the lowest cell index and its lowest value; random mode picks
// uniformly among the minimal-candidate cells and uniformly among that
// cell's values.
func (s *Solver) guess() (board.CellLoc, uint8) {
	best := -1
	var minimal []board.CellLoc
	s.cache.possibleValues.forEach(func(cell board.CellLoc, values valueSet) {
		n := values.count()
		switch {
		case best == -1 || n < best:
			best = n
			minimal = minimal[:0]
			minimal = append(minimal, cell)
		case n == best:
			minimal = append(minimal, cell)
		}
	})
	if best == -1 {
		panic("solver: guess called with no open cells")
	}

	cell := minimal[0]
	if s.rng != nil {
		cell = minimal[s.rng.Intn(len(minimal))]
	}

	values, _ := s.cache.possibleValues.get(cell)
	if s.rng != nil {
		return cell, values.pick(s.rng)
	}
	return cell, values.values()[0]
}

// solveIteration advances the search one round: commit all naked singles, or
// else all hidden singles, or else one guess. Any contradiction flips the
// round into backtracking; the cache already rolled back the failing move
// and the rest of the batch is simply dropped.
func (s *Solver) solveIteration() error {
	if singles := s.NakedSingles(); len(singles) > 0 {
		for _, single := range singles {
			if err := s.registerMove(StrategyNakedSingle, single.Cell, single.Value); err != nil {
				return s.backtrack()
			}
		}
		return nil
	}

	if singles := s.HiddenSingles(); len(singles) > 0 {
		for _, single := range singles {
			if err := s.registerMove(StrategyHiddenSingle, single.Cell, single.Value); err != nil {
				return s.backtrack()
			}
		}
		return nil
	}

	cell, value := s.guess()
	if err := s.registerMove(StrategyGuess, cell, value); err != nil {
		return s.backtrack()
	}
	return nil
}

// registerMove commits one assignment: cache first, then the grid, then the
// log. A cache contradiction leaves everything untouched.
func (s *Solver) registerMove(strategy Strategy, cell board.CellLoc, value uint8) error {
	s.nodes++
	token, err := s.cache.setValue(value, cell)
	if err != nil {
		return err
	}
	s.board.Set(cell, value)
	s.moveLog = append(s.moveLog, Move{Strategy: strategy, Cell: cell, Value: value, undo: token})
	return nil
}

func (s *Solver) undoMove(mov Move) {
	s.board.Unset(mov.Cell)
	s.cache.undo(mov.undo)
}

// backtrack unwinds the move log. Forced moves are undone and skipped; at
// each undone guess the tried value is retired and the remaining candidates
// are attempted in order. The first one that commits resumes the search;
// when a guess point is exhausted its cell's candidates are rebuilt from the
// grid's ground truth and unwinding continues. An empty log means the board
// is unsolvable.
func (s *Solver) backtrack() error {
	for len(s.moveLog) > 0 {
		mov := s.moveLog[len(s.moveLog)-1]
		s.moveLog = s.moveLog[:len(s.moveLog)-1]
		s.undoMove(mov)

		if mov.Strategy != StrategyGuess {
			continue
		}

		if values, ok := s.cache.possibleValues.get(mov.Cell); ok && !values.isEmpty() {
			s.cache.removeCandidate(mov.Value, mov.Cell)

			remaining, _ := s.cache.possibleValues.get(mov.Cell)
			resumed := false
			for _, next := range remaining.values() {
				if err := s.registerMove(StrategyGuess, mov.Cell, next); err == nil {
					resumed = true
					break
				}
			}
			if resumed {
				return nil
			}
		}

		// Guess point exhausted: the cell returns to the pool of open
		// cells with its full legal range from the current grid.
		values, _ := mov.Cell.PossibleValues(s.board)
		s.cache.resetCandidates(mov.Cell, values)
	}

	return ErrUnsolvable
}

// hasDuplicateGivens reports whether any unit already holds the same value
// twice. The candidate views alone cannot see this on larger boards: peers
// of duplicated givens may still have candidates left.
func hasDuplicateGivens(b *board.Board) bool {
	side := b.Side()
	base := b.BaseSize()

	conflict := func(cells []board.CellLoc) bool {
		var mask uint32
		for _, c := range cells {
			v := b.Get(c)
			if v == board.Empty {
				continue
			}
			bit := uint32(1) << v
			if mask&bit != 0 {
				return true
			}
			mask |= bit
		}
		return false
	}

	for i := 0; i < side; i++ {
		if conflict(board.At(i, 0, base).IterLine()) {
			return true
		}
		if conflict(board.At(0, i, base).IterCol()) {
			return true
		}
		if conflict(board.At((i/base)*base, (i%base)*base, base).IterSquare()) {
			return true
		}
	}
	return false
}
