package model

import (
	"encoding/json"
	"fmt"
)

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) Notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// Piece is a board occupant. The zero value is an empty square.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

func (p Piece) IsEmpty() bool {
	return p.Type == ""
}

// MarshalJSON renders empty squares as null so clients see the same
// shape as a pointer grid.
func (p Piece) MarshalJSON() ([]byte, error) {
	if p.IsEmpty() {
		return []byte("null"), nil
	}
	type alias Piece
	return json.Marshal(alias(p))
}

func (p *Piece) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Piece{}
		return nil
	}
	type alias Piece
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = Piece(a)
	return nil
}

// Square addresses a board cell. Row 0 is Black's back rank (rank 8),
// row 7 is White's (rank 1).
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Notation returns the algebraic square name, e.g. e4.
func (s Square) Notation() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, 8-s.Row)
}

// SquareFromNotation parses an algebraic square name.
func SquareFromNotation(s string) (Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, false
	}
	return Square{Row: 8 - int(s[1]-'0'), Col: int(s[0] - 'a')}, true
}

// Board is an 8x8 grid of squares. It is a value type: assignment
// produces an independent deep copy, which concurrent simulation
// relies on.
type Board [8][8]Piece

func InBounds(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

func (b *Board) At(row, col int) Piece {
	return b[row][col]
}

func (b *Board) Set(row, col int, p Piece) {
	b[row][col] = p
}

// FindKing locates the given side's King. ok is false when the King
// has been captured.
func (b *Board) FindKing(c Color) (Square, bool) {
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			p := b[r][col]
			if p.Type == King && p.Color == c {
				return Square{Row: r, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// NewBoard sets up the standard starting position.
func NewBoard() Board {
	var b Board
	back := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, pt := range back {
		b[0][col] = Piece{Type: pt, Color: Black}
		b[7][col] = Piece{Type: pt, Color: White}
	}
	for col := 0; col < 8; col++ {
		b[1][col] = Piece{Type: Pawn, Color: Black}
		b[6][col] = Piece{Type: Pawn, Color: White}
	}
	return b
}
