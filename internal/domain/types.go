// Package domain holds the serializable types shared by the ports, storage
// and HTTP layers.
package domain

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Hint describes a forced move the caller could play next.
type Hint struct {
	Message  string    `json:"message,omitempty"`
	Cell     CellCoord `json:"cell"`
	Value    uint8     `json:"value"`
	Strategy string    `json:"strategy,omitempty"`
}

// Puzzle is a persisted generated puzzle with metadata. Board and Solution
// use the compact dot notation.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	BaseSize  int    `json:"baseSize"`
	Board     string `json:"board"`
	Solution  string `json:"solution"`
	Unique    bool   `json:"unique"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	BaseSize  int    `json:"baseSize"`
	CreatedAt int64  `json:"createdAt"`
}
