// Package tactics holds the threat heuristics behind the arbitration
// cascade: piece values, threatened-piece enumeration, the critical
// defender patterns, the Queen blunder screen and forced defensive
// move search.
package tactics

import (
	"github.com/premkumardevadason/chess-go/internal/model"
)

// KingValue is a sentinel: the King never trades.
const KingValue = 100000

// PieceValue returns the material value used by every heuristic.
func PieceValue(pt model.PieceType) int {
	switch pt {
	case model.Pawn:
		return 100
	case model.Knight, model.Bishop:
		return 300
	case model.Rook:
		return 500
	case model.Queen:
		return 900
	case model.King:
		return KingValue
	}
	return 0
}

// CapturedValue is the value of the piece a move would take.
func CapturedValue(b *model.Board, m model.Move) int {
	dest := b.At(m.ToRow, m.ToCol)
	if dest.IsEmpty() {
		return 0
	}
	return PieceValue(dest.Type)
}
