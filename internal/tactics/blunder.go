package tactics

import (
	"github.com/premkumardevadason/chess-go/internal/engine"
	"github.com/premkumardevadason/chess-go/internal/model"
)

// IsBlunderSacrifice screens Queen moves only: a move blunders the
// Queen when it captures nothing worth 300 or more, parks her on an
// attacked square and does not deliver checkmate. Every other piece
// may sacrifice freely; that is a feature of the playing style, not an
// oversight.
func IsBlunderSacrifice(pos *model.Position, m model.Move) bool {
	if !m.InBounds() {
		return false
	}
	piece := pos.Board.At(m.FromRow, m.FromCol)
	if piece.Type != model.Queen {
		return false
	}
	if CapturedValue(&pos.Board, m) >= 300 {
		return false
	}

	sim := pos.Clone()
	sim.Turn = piece.Color
	sim.Apply(m, "")

	if !engine.IsSquareUnderAttack(&sim.Board, m.To(), piece.Color.Opponent()) {
		return false
	}
	// Mating sacrifices are always allowed.
	if engine.IsCheckmate(sim, piece.Color.Opponent()) {
		return false
	}
	return true
}

// QueenSafetyVeto is the arbitration gate's stricter screen: reject a
// Queen move landing on an attacked square unless the capture is worth
// 700 or more, or the Queen is pinned anyway and grabs at least 300 on
// the way out.
func QueenSafetyVeto(pos *model.Position, m model.Move) bool {
	if !m.InBounds() {
		return false
	}
	piece := pos.Board.At(m.FromRow, m.FromCol)
	if piece.Type != model.Queen {
		return false
	}
	captured := CapturedValue(&pos.Board, m)

	sim := pos.Board
	sim[m.ToRow][m.ToCol] = piece
	sim[m.FromRow][m.FromCol] = model.Piece{}
	if !engine.IsSquareUnderAttack(&sim, m.To(), piece.Color.Opponent()) {
		return false
	}
	if captured >= 700 {
		return false
	}
	if engine.IsPiecePinned(&pos.Board, m.From()) && captured >= 300 {
		return false
	}
	return true
}

// HangsPiece reports whether the move leaves the moved piece on a
// square the enemy attacks and the mover does not defend. The gate
// logs this without rejecting.
func HangsPiece(b *model.Board, m model.Move) bool {
	piece := b.At(m.FromRow, m.FromCol)
	if piece.IsEmpty() {
		return false
	}
	sim := *b
	sim[m.ToRow][m.ToCol] = piece
	sim[m.FromRow][m.FromCol] = model.Piece{}
	to := m.To()
	if !engine.IsSquareUnderAttack(&sim, to, piece.Color.Opponent()) {
		return false
	}
	return !engine.IsSquareUnderAttack(&sim, to, piece.Color)
}

// SafeNonBlunderMoves is the last-resort candidate filter: legal moves
// that neither blunder the Queen nor throw a 300+ piece onto an
// undefended attacked square.
func SafeNonBlunderMoves(pos *model.Position, legal []model.Move) []model.Move {
	var safe []model.Move
	for _, m := range legal {
		if IsBlunderSacrifice(pos, m) {
			continue
		}
		piece := pos.Board.At(m.FromRow, m.FromCol)
		if PieceValue(piece.Type) >= 300 && piece.Type != model.King && HangsPiece(&pos.Board, m) {
			continue
		}
		safe = append(safe, m)
	}
	return safe
}
