package solver

import "svw.info/sudokugen/internal/board"

// indexedMap is an arena-style map keyed by a cell's flat index: values live
// in a dense array sized for the whole board, with presence tracked apart
// from the zero value. Region computations hit this on every move, so it
// avoids hashing entirely; iteration runs in flat index order, which is what
// makes deterministic solves stable.
type indexedMap[V comparable] struct {
	keys    []board.CellLoc
	present []bool
	values  []V
	count   int
}

func newIndexedMap[V comparable](size int) *indexedMap[V] {
	return &indexedMap[V]{
		keys:    make([]board.CellLoc, size),
		present: make([]bool, size),
		values:  make([]V, size),
	}
}

// insert stores a value under the key, returning the previous value if the
// key was present. Indices outside the arena are a caller bug.
func (m *indexedMap[V]) insert(key board.CellLoc, value V) (V, bool) {
	idx := key.Index()
	var prev V
	had := m.present[idx]
	if had {
		prev = m.values[idx]
	} else {
		m.count++
	}
	m.keys[idx] = key
	m.present[idx] = true
	m.values[idx] = value
	return prev, had
}

// remove drops the key, returning the value it held.
func (m *indexedMap[V]) remove(key board.CellLoc) (V, bool) {
	idx := key.Index()
	var zero V
	if !m.present[idx] {
		return zero, false
	}
	v := m.values[idx]
	m.values[idx] = zero
	m.present[idx] = false
	m.count--
	return v, true
}

func (m *indexedMap[V]) get(key board.CellLoc) (V, bool) {
	idx := key.Index()
	if !m.present[idx] {
		var zero V
		return zero, false
	}
	return m.values[idx], true
}

func (m *indexedMap[V]) isEmpty() bool { return m.count == 0 }

func (m *indexedMap[V]) len() int { return m.count }

// forEach visits every present entry in flat index order.
func (m *indexedMap[V]) forEach(fn func(board.CellLoc, V)) {
	for idx, ok := range m.present {
		if ok {
			fn(m.keys[idx], m.values[idx])
		}
	}
}

func (m *indexedMap[V]) clone() *indexedMap[V] {
	c := newIndexedMap[V](len(m.values))
	copy(c.keys, m.keys)
	copy(c.present, m.present)
	copy(c.values, m.values)
	c.count = m.count
	return c
}

func (m *indexedMap[V]) equal(other *indexedMap[V]) bool {
	if len(m.values) != len(other.values) || m.count != other.count {
		return false
	}
	for idx := range m.values {
		if m.present[idx] != other.present[idx] {
			return false
		}
		if m.present[idx] && m.values[idx] != other.values[idx] {
			return false
		}
	}
	return true
}
