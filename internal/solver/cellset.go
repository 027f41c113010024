package solver

import (
	"sort"

	"svw.info/sudokugen/internal/board"
)

// cellSet is an ordered set of cell locations, kept sorted by flat index.
// Candidate buckets hold at most side² cells, so a sorted slice beats a map
// here and gives the stable iteration the hidden-single scan relies on.
type cellSet struct {
	cells []board.CellLoc
}

func (s *cellSet) search(c board.CellLoc) int {
	return sort.Search(len(s.cells), func(i int) bool {
		return s.cells[i].Index() >= c.Index()
	})
}

// insert adds a cell, reporting whether the set changed.
func (s *cellSet) insert(c board.CellLoc) bool {
	i := s.search(c)
	if i < len(s.cells) && s.cells[i].Index() == c.Index() {
		return false
	}
	s.cells = append(s.cells, board.CellLoc{})
	copy(s.cells[i+1:], s.cells[i:])
	s.cells[i] = c
	return true
}

// remove drops a cell, reporting whether the set changed.
func (s *cellSet) remove(c board.CellLoc) bool {
	i := s.search(c)
	if i >= len(s.cells) || s.cells[i].Index() != c.Index() {
		return false
	}
	s.cells = append(s.cells[:i], s.cells[i+1:]...)
	return true
}

func (s *cellSet) contains(c board.CellLoc) bool {
	i := s.search(c)
	return i < len(s.cells) && s.cells[i].Index() == c.Index()
}

func (s *cellSet) len() int { return len(s.cells) }

// members returns the cells in index order. The slice aliases the set.
func (s *cellSet) members() []board.CellLoc { return s.cells }

func (s *cellSet) clone() *cellSet {
	c := make([]board.CellLoc, len(s.cells))
	copy(c, s.cells)
	return &cellSet{cells: c}
}

func (s *cellSet) equal(other *cellSet) bool {
	if len(s.cells) != len(other.cells) {
		return false
	}
	for i, c := range s.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}
