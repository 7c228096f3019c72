package engine

import (
	"github.com/premkumardevadason/chess-go/internal/model"
)

// IsKingInCheck reports whether the given side's King is attacked. A
// board with no King for that side reports false; the game is already
// decided elsewhere.
func IsKingInCheck(b *model.Board, side model.Color) bool {
	king, ok := b.FindKing(side)
	if !ok {
		return false
	}
	return IsSquareUnderAttack(b, king, side.Opponent())
}

// wouldLeaveKingInCheck simulates the move on a private copy of the
// board and tests the mover's own King. This is the authoritative
// king-safety predicate behind IsValidMove, GenerateLegalMoves and
// IsPiecePinned.
func wouldLeaveKingInCheck(b *model.Board, m model.Move) bool {
	piece := b.At(m.FromRow, m.FromCol)
	if piece.IsEmpty() {
		return false
	}
	sim := *b
	sim[m.ToRow][m.ToCol] = piece
	sim[m.FromRow][m.FromCol] = model.Piece{}
	return IsKingInCheck(&sim, piece.Color)
}

// IsPiecePinned reports whether lifting the piece off sq would expose
// its own King. This forbids every move of the piece, not only moves
// off the pin line; the heuristics layer accepts that over-restriction
// and the king-safety simulation stays the authoritative gate.
func IsPiecePinned(b *model.Board, sq model.Square) bool {
	piece := b.At(sq.Row, sq.Col)
	if piece.IsEmpty() || piece.Type == model.King {
		return false
	}
	if IsKingInCheck(b, piece.Color) {
		return false
	}
	sim := *b
	sim[sq.Row][sq.Col] = model.Piece{}
	return IsKingInCheck(&sim, piece.Color)
}

// IsCheckmate: in check with no legal move.
func IsCheckmate(pos *model.Position, side model.Color) bool {
	if !IsKingInCheck(&pos.Board, side) {
		return false
	}
	return len(GenerateLegalMoves(pos, side)) == 0
}

// IsStalemate: not in check with no legal move.
func IsStalemate(pos *model.Position, side model.Color) bool {
	if IsKingInCheck(&pos.Board, side) {
		return false
	}
	return len(GenerateLegalMoves(pos, side)) == 0
}
