package engine

import (
	"github.com/premkumardevadason/chess-go/internal/model"
)

// IsSquareUnderAttack reports whether any piece of the attacking color
// could capture on sq right now. Pawn pushes do not attack; only the
// diagonal step counts.
func IsSquareUnderAttack(b *model.Board, sq model.Square, by model.Color) bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.At(r, c)
			if p.IsEmpty() || p.Color != by {
				continue
			}
			if CanPieceAttack(b, model.Square{Row: r, Col: c}, sq) {
				return true
			}
		}
	}
	return false
}

// FindAttackers returns the squares of every piece of the attacking
// color bearing on sq.
func FindAttackers(b *model.Board, sq model.Square, by model.Color) []model.Square {
	var attackers []model.Square
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.At(r, c)
			if p.IsEmpty() || p.Color != by {
				continue
			}
			from := model.Square{Row: r, Col: c}
			if CanPieceAttack(b, from, sq) {
				attackers = append(attackers, from)
			}
		}
	}
	return attackers
}

// CanPieceAttack reports whether the piece on from bears on to: movement
// geometry plus a clear path, ignoring the occupant of the target
// square. For pawns this is the capture geometry, not the push.
func CanPieceAttack(b *model.Board, from, to model.Square) bool {
	piece := b.At(from.Row, from.Col)
	if piece.IsEmpty() {
		return false
	}
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	if dr == 0 && dc == 0 {
		return false
	}
	m := model.Move{FromRow: from.Row, FromCol: from.Col, ToRow: to.Row, ToCol: to.Col}

	switch piece.Type {
	case model.Pawn:
		return dr == pawnDir(piece.Color) && abs(dc) == 1
	case model.Knight:
		return (abs(dr) == 2 && abs(dc) == 1) || (abs(dr) == 1 && abs(dc) == 2)
	case model.King:
		return abs(dr) <= 1 && abs(dc) <= 1
	case model.Rook:
		return (dr == 0 || dc == 0) && pathClear(b, m)
	case model.Bishop:
		return abs(dr) == abs(dc) && pathClear(b, m)
	case model.Queen:
		return (dr == 0 || dc == 0 || abs(dr) == abs(dc)) && pathClear(b, m)
	}
	return false
}
