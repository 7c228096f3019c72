package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a from/to coordinate pair. Promotion is implicit: pawns
// reaching the last rank become Queens unless an explicit promotion
// piece is supplied at commit time.
type Move struct {
	FromRow int `json:"fromRow"`
	FromCol int `json:"fromCol"`
	ToRow   int `json:"toRow"`
	ToCol   int `json:"toCol"`
}

func (m Move) From() Square {
	return Square{Row: m.FromRow, Col: m.FromCol}
}

func (m Move) To() Square {
	return Square{Row: m.ToRow, Col: m.ToCol}
}

// InBounds reports whether all four coordinates are on the board.
func (m Move) InBounds() bool {
	return InBounds(m.FromRow, m.FromCol) && InBounds(m.ToRow, m.ToCol)
}

// Key is the textual move record appended to game history and used by
// the repetition window: "fromRow,fromCol,toRow,toCol".
func (m Move) Key() string {
	return fmt.Sprintf("%d,%d,%d,%d", m.FromRow, m.FromCol, m.ToRow, m.ToCol)
}

// Reverse returns the move with source and destination swapped.
func (m Move) Reverse() Move {
	return Move{FromRow: m.ToRow, FromCol: m.ToCol, ToRow: m.FromRow, ToCol: m.FromCol}
}

// Algebraic returns the coordinate form consumed by the opening book
// and UCI engines, e.g. e2e4.
func (m Move) Algebraic() string {
	return m.From().Notation() + m.To().Notation()
}

func (m Move) String() string {
	return m.Algebraic()
}

// MoveFromKey parses the textual move record form.
func MoveFromKey(key string) (Move, bool) {
	parts := strings.Split(key, ",")
	if len(parts) != 4 {
		return Move{}, false
	}
	var coords [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 7 {
			return Move{}, false
		}
		coords[i] = n
	}
	return Move{FromRow: coords[0], FromCol: coords[1], ToRow: coords[2], ToCol: coords[3]}, true
}

// MoveFromAlgebraic parses coordinate algebraic, e.g. e2e4 or e7e8q.
// A trailing promotion letter is accepted and ignored here; promotion
// choice travels separately.
func MoveFromAlgebraic(s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, false
	}
	from, ok := SquareFromNotation(s[:2])
	if !ok {
		return Move{}, false
	}
	to, ok := SquareFromNotation(s[2:4])
	if !ok {
		return Move{}, false
	}
	return Move{FromRow: from.Row, FromCol: from.Col, ToRow: to.Row, ToCol: to.Col}, true
}

// WSMove is the move payload received over a websocket connection.
type WSMove struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

func (w WSMove) Move() Move {
	return Move{FromRow: w.From.Row, FromCol: w.From.Col, ToRow: w.To.Row, ToCol: w.To.Col}
}
