package validator

import (
	"context"
	"strings"
	"testing"

	"svw.info/sudokugen/internal/board"
)

const solved = "572491386318726495469583172921348567754962813683157249146275938237819654895634721"

func TestValidateCleanBoard(t *testing.T) {
	ok, conflicts, err := New().Validate(context.Background(), board.MustParse(solved))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !ok || len(conflicts) != 0 {
		t.Fatalf("ok=%v conflicts=%v on a solved board", ok, conflicts)
	}
}

func TestValidateReportsConflicts(t *testing.T) {
	b := board.MustParse("55" + strings.Repeat(".", 79))
	ok, conflicts, err := New().Validate(context.Background(), b)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if ok || len(conflicts) == 0 {
		t.Fatalf("ok=%v conflicts=%v on a duplicated given", ok, conflicts)
	}
	for _, c := range conflicts {
		if c != board.At(0, 1, 3) {
			t.Fatalf("conflict at %v, want (0, 1)", c)
		}
	}
}

func TestIsSolved(t *testing.T) {
	ctx := context.Background()
	v := New()

	full := board.MustParse(solved)
	if !v.IsSolved(ctx, full) {
		t.Fatal("IsSolved = false on a solved board")
	}

	full.Unset(board.At(4, 4, 3))
	if v.IsSolved(ctx, full) {
		t.Fatal("IsSolved = true with an open cell")
	}
}
