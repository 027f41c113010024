package board

import (
	"strings"
	"testing"
)

func TestSquareNumbers(t *testing.T) {
	cases := []struct {
		idx, baseSize, want int
	}{
		{0, 2, 0},
		{6, 2, 1},
		{14, 2, 3},
		{0, 3, 0},
		{5, 3, 1},
		{80, 3, 8},
		{40, 3, 4},
	}
	for _, tc := range cases {
		if got := NewCellLoc(tc.idx, tc.baseSize).Square(); got != tc.want {
			t.Errorf("cell %d (base %d): square = %d, want %d", tc.idx, tc.baseSize, got, tc.want)
		}
	}
}

func TestIterCells(t *testing.T) {
	b := New(3)
	cells := b.IterCells()
	if len(cells) != 81 {
		t.Fatalf("IterCells returned %d cells, want 81", len(cells))
	}
	for i, c := range cells {
		if c.Index() != i {
			t.Fatalf("cell %d has index %d", i, c.Index())
		}
	}
}

func TestIterSquare(t *testing.T) {
	c := NewCellLoc(0, 3)
	want := []int{0, 1, 2, 9, 10, 11, 18, 19, 20}
	got := c.IterSquare()
	if len(got) != len(want) {
		t.Fatalf("IterSquare returned %d cells, want %d", len(got), len(want))
	}
	for i, cell := range got {
		if cell.Index() != want[i] {
			t.Errorf("IterSquare[%d] = %d, want %d", i, cell.Index(), want[i])
		}
	}
}

func TestIterLineAndCol(t *testing.T) {
	c := At(4, 7, 3)
	line := c.IterLine()
	col := c.IterCol()
	if len(line) != 9 || len(col) != 9 {
		t.Fatalf("unit sizes: line=%d col=%d, want 9", len(line), len(col))
	}
	for _, cell := range line {
		if cell.Line() != 4 {
			t.Errorf("IterLine yielded cell on line %d", cell.Line())
		}
	}
	for _, cell := range col {
		if cell.Col() != 7 {
			t.Errorf("IterCol yielded cell on column %d", cell.Col())
		}
	}
}

func TestSetUnsetReturnPrevious(t *testing.T) {
	b := New(3)
	c := b.CellAt(0, 0)
	if prev := b.Set(c, 3); prev != Empty {
		t.Fatalf("Set on empty cell returned %d", prev)
	}
	if prev := b.Set(c, 5); prev != 3 {
		t.Fatalf("Set returned %d, want 3", prev)
	}
	if prev := b.Unset(c); prev != 5 {
		t.Fatalf("Unset returned %d, want 5", prev)
	}
	if b.Get(c) != Empty {
		t.Fatal("cell still set after Unset")
	}
}

func TestPossibleValuesOnFilledCell(t *testing.T) {
	b := New(3)
	b.Set(b.CellAt(0, 0), 1)
	if _, ok := b.CellAt(0, 0).PossibleValues(b); ok {
		t.Fatal("filled cell reported possible values")
	}
}

func TestPossibleValues(t *testing.T) {
	b := New(3)
	b.Set(b.CellAt(0, 1), 2)
	b.Set(b.CellAt(0, 2), 3)
	b.Set(b.CellAt(1, 0), 4)
	b.Set(b.CellAt(2, 2), 5)

	values, ok := b.CellAt(0, 0).PossibleValues(b)
	if !ok {
		t.Fatal("empty cell reported no possible values")
	}
	want := []uint8{1, 6, 7, 8, 9}
	if len(values) != len(want) {
		t.Fatalf("possible values = %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("possible values = %v, want %v", values, want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	in := ".724..3........49.........2921...5.7..4.6...3......2...4..7.....3..196....5..4.21"
	b, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := b.Compact(); got != in {
		t.Fatalf("round trip mismatch:\n got %s\nwant %s", got, in)
	}
}

func TestParseEmptySixteenCells(t *testing.T) {
	b, err := Parse("................")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !b.Equal(New(2)) {
		t.Fatal("16 dots should parse as an empty 4×4 board")
	}
}

func TestParsePrettyLayout(t *testing.T) {
	pretty := `
	. . . | 4 . . | 8 7 .
	4 . 3 | . . . | . . .
	2 . . | . . 3 | . . 9
	---------------------
	. . 6 | 2 . . | . . 7
	. . . | 9 . 6 | . . .
	3 . 9 | . 8 . | . . .
	---------------------
	. . . | . . . | . 4 .
	8 7 2 | 5 . . | . . .
	. . . | 7 2 . | 6 . .
	`
	compact := "...4..87.4.3......2....3..9..62....7...9.6...3.9.8...........4.8725........72.6.."
	b, err := Parse(pretty)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !b.Equal(MustParse(compact)) {
		t.Fatal("pretty layout parsed differently from compact form")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("12x4............"); err == nil {
		t.Fatal("expected error for invalid character")
	}
	if _, err := Parse("123"); err == nil {
		t.Fatal("expected error for non-square cell count")
	}
}

func TestParseRejectsOutOfRangeValue(t *testing.T) {
	// 9 exceeds the side of a 4×4 board but is legal on a 9×9 one.
	if _, err := Parse("9..............."); err == nil {
		t.Fatal("expected error for a value above the board side")
	}
	if _, err := Parse("9" + strings.Repeat(".", 80)); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
}

func TestEquality(t *testing.T) {
	a := MustParse("1...............")
	b := MustParse("1...............")
	c := MustParse("2...............")
	if !a.Equal(b) {
		t.Fatal("identical boards not equal")
	}
	if a.Equal(c) {
		t.Fatal("different boards compare equal")
	}
	if a.Equal(New(3)) {
		t.Fatal("boards of different sizes compare equal")
	}
}

func TestClone(t *testing.T) {
	a := MustParse("1...............")
	b := a.Clone()
	b.Set(b.CellAt(0, 1), 2)
	if a.GetAt(0, 1) != Empty {
		t.Fatal("mutating a clone changed the original")
	}
}
