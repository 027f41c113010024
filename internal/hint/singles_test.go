package hint

import (
	"context"
	"strings"
	"testing"

	"svw.info/sudokugen/internal/board"
)

func TestHintNakedSingle(t *testing.T) {
	b := board.MustParse(
		"12345678.\n" +
			"2........\n" +
			"3........\n" +
			"4........\n" +
			"5........\n" +
			"6........\n" +
			"7.....246\n" +
			"8.....975\n" +
			"......13.")

	h, ok, err := NewSingles().Hint(context.Background(), b)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if !ok {
		t.Fatal("no hint on a board with naked singles")
	}
	if h.Cell.Line != 0 || h.Cell.Col != 8 || h.Value != 9 {
		t.Fatalf("hint = %+v, want 9 at (0, 8)", h)
	}
	if h.Strategy != "naked-single" {
		t.Fatalf("strategy = %q", h.Strategy)
	}
	if b.Get(board.At(0, 8, 3)) != board.Empty {
		t.Fatal("Hint mutated the board")
	}
}

func TestHintHiddenSingle(t *testing.T) {
	b := board.MustParse(
		".........\n" +
			"9........\n" +
			"...9.....\n" +
			".........\n" +
			"......9..\n" +
			".........\n" +
			".......9.\n" +
			".........\n" +
			".........")

	h, ok, err := NewSingles().Hint(context.Background(), b)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if !ok {
		t.Fatal("no hint on a board with a hidden single")
	}
	if h.Cell.Line != 0 || h.Cell.Col != 8 || h.Value != 9 {
		t.Fatalf("hint = %+v, want 9 at (0, 8)", h)
	}
	if h.Strategy != "hidden-single" {
		t.Fatalf("strategy = %q", h.Strategy)
	}
	if !strings.HasPrefix(h.Message, "Hidden single") {
		t.Fatalf("message = %q", h.Message)
	}
}

func TestHintNoSingles(t *testing.T) {
	_, ok, err := NewSingles().Hint(context.Background(), board.New(3))
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if ok {
		t.Fatal("hint found on an empty board")
	}
}
