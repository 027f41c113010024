package solver

import (
	"fmt"

	"svw.info/sudokugen/internal/board"
)

// blockKind distinguishes the three unit families a cell belongs to.
type blockKind uint8

const (
	lineBlock blockKind = iota
	colBlock
	squareBlock
)

func (k blockKind) String() string {
	switch k {
	case lineBlock:
		return "line"
	case colBlock:
		return "col"
	default:
		return "square"
	}
}

// cellBlock names one concrete unit (line 4, col 0, square 7, ...).
type cellBlock struct {
	kind  blockKind
	index int
}

func (b cellBlock) withValue(v uint8) blockValue { return blockValue{block: b, value: v} }

// blockValue keys a candidate bucket: the cells where value can still go
// within this unit.
type blockValue struct {
	block cellBlock
	value uint8
}

func blocksOf(c board.CellLoc) [3]cellBlock {
	return [3]cellBlock{
		{kind: lineBlock, index: c.Line()},
		{kind: colBlock, index: c.Col()},
		{kind: squareBlock, index: c.Square()},
	}
}

// noCandidatesError is the cache-internal contradiction: assigning a value
// would leave some peer with no candidates. It never escapes the solver; the
// search loop converts it into backtracking or UnsolvableError.
type noCandidatesError struct {
	cell board.CellLoc
}

func (e noCandidatesError) Error() string {
	return fmt.Sprintf("no candidates left after assigning cell %v", e.cell)
}

// candidateMove records one cell dropped from one candidate bucket, enough
// to reinsert it on undo.
type candidateMove struct {
	value uint8
	cell  board.CellLoc
	block cellBlock
}

// pencilMark records one value removed from one cell's possible set.
type pencilMark struct {
	cell  board.CellLoc
	value uint8
}

// undoToken captures everything one setValue changed, in the order needed to
// restore the cache exactly. Tokens are consumed by undo and must not be
// replayed.
type undoToken struct {
	cell       board.CellLoc
	options    valueSet
	hadOptions bool
	moves      []candidateMove
	affected   []pencilMark
}

// alternatives returns the values that were possible at the cell when the
// move was made, minus the value that was chosen.
func (t *undoToken) alternatives(chosen uint8) []uint8 {
	if !t.hadOptions {
		return nil
	}
	rest := t.options
	rest.remove(chosen)
	return rest.values()
}

// candidateCache tracks, for a board mid-solve, which values each empty cell
// can still take and which cells each (unit, value) pair can still land on.
// The two views stay mutually consistent at every point between completed
// moves; setValue is the only operation allowed to break that invariant, and
// it either commits whole or rolls itself back.
type candidateCache struct {
	possibleValues *indexedMap[valueSet]
	candidateCells map[blockValue]*cellSet
}

func newCandidateCache(b *board.Board) *candidateCache {
	base := b.BaseSize()
	cc := &candidateCache{
		possibleValues: newIndexedMap[valueSet](base * base * base * base),
		candidateCells: make(map[blockValue]*cellSet, base*base*base*base*3),
	}

	for _, cell := range b.IterCells() {
		if values, ok := cell.PossibleValues(b); ok {
			cc.possibleValues.insert(cell, valueSetOf(values))
		}
	}

	cc.possibleValues.forEach(func(cell board.CellLoc, values valueSet) {
		for _, value := range values.values() {
			cc.addCandidate(value, cell)
		}
	})

	return cc
}

// setValue commits an assignment to the cache: the cell stops being open,
// the value's buckets in the cell's units dissolve, and every peer loses the
// value as a candidate. On a contradiction (a peer left with no candidates)
// the cache undoes all of it and reports the error; the board itself is
// never touched here — the solver writes the grid only after the cache
// commits.
func (cc *candidateCache) setValue(value uint8, cell board.CellLoc) (*undoToken, error) {
	options, hadOptions := cc.possibleValues.remove(cell)
	token := &undoToken{cell: cell, options: options, hadOptions: hadOptions}

	for _, blk := range blocksOf(cell) {
		// The value is getting placed in this unit, so its bucket is no
		// longer meaningful; record every member for undo.
		if bucket, ok := cc.candidateCells[blk.withValue(value)]; ok {
			delete(cc.candidateCells, blk.withValue(value))
			for _, member := range bucket.members() {
				token.moves = append(token.moves, candidateMove{value: value, cell: member, block: blk})
			}
		}

		// The cell itself stops being a candidate for its other values.
		if hadOptions {
			for _, other := range options.values() {
				if other == value {
					continue
				}
				if bucket, ok := cc.candidateCells[blk.withValue(other)]; ok && bucket.remove(cell) {
					token.moves = append(token.moves, candidateMove{value: other, cell: cell, block: blk})
				}
			}
		}
	}

	for _, peer := range cell.Peers() {
		values, ok := cc.possibleValues.get(peer)
		if !ok {
			continue
		}

		if values.remove(value) {
			cc.possibleValues.insert(peer, values)
			token.affected = append(token.affected, pencilMark{cell: peer, value: value})

			for _, blk := range blocksOf(peer) {
				if bucket, ok := cc.candidateCells[blk.withValue(value)]; ok && bucket.remove(peer) {
					token.moves = append(token.moves, candidateMove{value: value, cell: peer, block: blk})
				}
			}

			if values.isEmpty() {
				cc.undo(token)
				return nil, noCandidatesError{cell: cell}
			}
		}
	}

	return token, nil
}

// undo restores the cache to its state before the setValue that produced the
// token.
func (cc *candidateCache) undo(token *undoToken) {
	if token.hadOptions {
		cc.possibleValues.insert(token.cell, token.options)
	}

	for _, mark := range token.affected {
		values, _ := cc.possibleValues.get(mark.cell)
		values.add(mark.value)
		cc.possibleValues.insert(mark.cell, values)
	}

	for _, mov := range token.moves {
		key := mov.block.withValue(mov.value)
		bucket, ok := cc.candidateCells[key]
		if !ok {
			bucket = &cellSet{}
			cc.candidateCells[key] = bucket
		}
		bucket.insert(mov.cell)
	}
}

// removeCandidate permanently drops a value from a cell's candidates, both
// views at once. Backtracking uses it to retire an exhausted guess value.
func (cc *candidateCache) removeCandidate(value uint8, cell board.CellLoc) {
	values, ok := cc.possibleValues.get(cell)
	if !ok || !values.remove(value) {
		return
	}
	cc.possibleValues.insert(cell, values)
	for _, blk := range blocksOf(cell) {
		if bucket, ok := cc.candidateCells[blk.withValue(value)]; ok {
			bucket.remove(cell)
		}
	}
}

// resetCandidates reinstalls a fresh candidate set for a cell whose grid
// value was cleared by backtracking, rebuilding its bucket memberships.
func (cc *candidateCache) resetCandidates(cell board.CellLoc, values []uint8) {
	for _, value := range values {
		cc.addCandidate(value, cell)
	}
	cc.possibleValues.insert(cell, valueSetOf(values))
}

func (cc *candidateCache) addCandidate(value uint8, cell board.CellLoc) {
	for _, blk := range blocksOf(cell) {
		key := blk.withValue(value)
		bucket, ok := cc.candidateCells[key]
		if !ok {
			bucket = &cellSet{}
			cc.candidateCells[key] = bucket
		}
		bucket.insert(cell)
	}
}

// iterCandidates visits every (unit, value, cells) bucket. Visit order is
// unspecified; callers needing determinism sort what they collect.
func (cc *candidateCache) iterCandidates(fn func(blk cellBlock, value uint8, cells *cellSet)) {
	for key, bucket := range cc.candidateCells {
		fn(key.block, key.value, bucket)
	}
}

func (cc *candidateCache) clone() *candidateCache {
	c := &candidateCache{
		possibleValues: cc.possibleValues.clone(),
		candidateCells: make(map[blockValue]*cellSet, len(cc.candidateCells)),
	}
	for key, bucket := range cc.candidateCells {
		c.candidateCells[key] = bucket.clone()
	}
	return c
}

func (cc *candidateCache) equal(other *candidateCache) bool {
	if !cc.possibleValues.equal(other.possibleValues) {
		return false
	}
	if len(cc.candidateCells) != len(other.candidateCells) {
		return false
	}
	for key, bucket := range cc.candidateCells {
		otherBucket, ok := other.candidateCells[key]
		if !ok || !bucket.equal(otherBucket) {
			return false
		}
	}
	return true
}
