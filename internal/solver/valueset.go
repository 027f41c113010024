package solver

import (
	"math/bits"
	"math/rand"
)

// valueSet is the set of candidate values for one cell, one bit per value.
// Values range 1..=side² and side is capped at 25 (board.MaxBaseSize), so a
// uint32 always fits. Iteration order is ascending value order, which keeps
// deterministic solves reproducible.
type valueSet uint32

func valueSetOf(values []uint8) valueSet {
	var vs valueSet
	for _, v := range values {
		vs |= 1 << v
	}
	return vs
}

func (vs valueSet) has(v uint8) bool { return vs&(1<<v) != 0 }

// add inserts a value, reporting whether the set changed.
func (vs *valueSet) add(v uint8) bool {
	if vs.has(v) {
		return false
	}
	*vs |= 1 << v
	return true
}

// remove drops a value, reporting whether the set changed.
func (vs *valueSet) remove(v uint8) bool {
	if !vs.has(v) {
		return false
	}
	*vs &^= 1 << v
	return true
}

func (vs valueSet) count() int { return bits.OnesCount32(uint32(vs)) }

func (vs valueSet) isEmpty() bool { return vs == 0 }

// single returns the sole member of a one-element set.
func (vs valueSet) single() (uint8, bool) {
	if vs.count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros32(uint32(vs))), true
}

// values returns the members in ascending order.
func (vs valueSet) values() []uint8 {
	out := make([]uint8, 0, vs.count())
	for rest := uint32(vs); rest != 0; rest &= rest - 1 {
		out = append(out, uint8(bits.TrailingZeros32(rest)))
	}
	return out
}

// pick returns a uniformly random member. The set must not be empty.
func (vs valueSet) pick(rng *rand.Rand) uint8 {
	members := vs.values()
	return members[rng.Intn(len(members))]
}
