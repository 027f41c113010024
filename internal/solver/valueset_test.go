package solver

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestValueSetAddRemove(t *testing.T) {
	var vs valueSet
	if !vs.isEmpty() {
		t.Fatal("zero set should be empty")
	}
	if !vs.add(3) {
		t.Fatal("add of a new value should report a change")
	}
	if vs.add(3) {
		t.Fatal("add of a present value should report no change")
	}
	if !vs.has(3) || vs.count() != 1 {
		t.Fatalf("set after add = %v", vs.values())
	}
	if !vs.remove(3) {
		t.Fatal("remove of a present value should report a change")
	}
	if vs.remove(3) {
		t.Fatal("remove of a missing value should report no change")
	}
	if !vs.isEmpty() {
		t.Fatalf("set after remove = %v", vs.values())
	}
}

func TestValueSetValuesAscending(t *testing.T) {
	vs := valueSetOf([]uint8{9, 2, 5, 1})
	if got := vs.values(); !reflect.DeepEqual(got, []uint8{1, 2, 5, 9}) {
		t.Fatalf("values() = %v, want ascending order", got)
	}
}

func TestValueSetSingle(t *testing.T) {
	vs := valueSetOf([]uint8{7})
	v, ok := vs.single()
	if !ok || v != 7 {
		t.Fatalf("single() = %d, %v", v, ok)
	}
	vs.add(2)
	if _, ok := vs.single(); ok {
		t.Fatal("single() on a two-element set")
	}
}

func TestValueSetPick(t *testing.T) {
	vs := valueSetOf([]uint8{2, 4, 6})
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		if v := vs.pick(rng); !vs.has(v) {
			t.Fatalf("pick returned %d, not a member", v)
		}
	}
}
