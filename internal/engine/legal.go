package engine

import (
	"github.com/premkumardevadason/chess-go/internal/model"
)

// IsValidMove is the full legality gate for a single move: bounds,
// source occupancy, turn ownership, movement geometry and path, and
// the king-safety simulation. It returns false for bad input rather
// than panicking.
func IsValidMove(pos *model.Position, m model.Move) bool {
	if !m.InBounds() {
		return false
	}
	piece := pos.Board.At(m.FromRow, m.FromCol)
	if piece.IsEmpty() || piece.Color != pos.Turn {
		return false
	}
	if isCastlingMove(pos, m) {
		return castleAllowed(pos, piece.Color, m.ToCol > m.FromCol)
	}
	if !isPseudoLegal(&pos.Board, m) {
		return false
	}
	return !wouldLeaveKingInCheck(&pos.Board, m)
}

// GenerateLegalMoves returns every move of the given side that
// survives the king-safety simulation, castling included.
func GenerateLegalMoves(pos *model.Position, side model.Color) []model.Move {
	var legal []model.Move
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := pos.Board.At(r, c)
			if p.IsEmpty() || p.Color != side {
				continue
			}
			for _, m := range pseudoMovesFrom(&pos.Board, model.Square{Row: r, Col: c}) {
				if !wouldLeaveKingInCheck(&pos.Board, m) {
					legal = append(legal, m)
				}
			}
		}
	}
	legal = append(legal, castleMoves(pos, side)...)
	return legal
}

// LegalMovesFrom returns the legal moves of the piece on a single
// square, for move-hint queries.
func LegalMovesFrom(pos *model.Position, from model.Square) []model.Move {
	piece := pos.Board.At(from.Row, from.Col)
	if piece.IsEmpty() {
		return nil
	}
	var legal []model.Move
	for _, m := range pseudoMovesFrom(&pos.Board, from) {
		if !wouldLeaveKingInCheck(&pos.Board, m) {
			legal = append(legal, m)
		}
	}
	if piece.Type == model.King {
		for _, m := range castleMoves(pos, piece.Color) {
			if m.From() == from {
				legal = append(legal, m)
			}
		}
	}
	return legal
}

// isCastlingMove recognizes the two-file King jump shape.
func isCastlingMove(pos *model.Position, m model.Move) bool {
	piece := pos.Board.At(m.FromRow, m.FromCol)
	return piece.Type == model.King && m.FromRow == m.ToRow && abs(m.ToCol-m.FromCol) == 2
}

func homeRow(c model.Color) int {
	if c == model.White {
		return 7
	}
	return 0
}

// castleAllowed checks every castling condition: King and the matching
// rook unmoved, empty squares between them, King not in check and not
// crossing or landing on an attacked square.
func castleAllowed(pos *model.Position, side model.Color, kingside bool) bool {
	row := homeRow(side)
	king := pos.Board.At(row, 4)
	if king.Type != model.King || king.Color != side {
		return false
	}

	cr := pos.Castling
	kingMoved := cr.WhiteKingMoved
	rookMoved := cr.WhiteQueensideRookMoved
	if kingside {
		rookMoved = cr.WhiteKingsideRookMoved
	}
	if side == model.Black {
		kingMoved = cr.BlackKingMoved
		rookMoved = cr.BlackQueensideRookMoved
		if kingside {
			rookMoved = cr.BlackKingsideRookMoved
		}
	}
	if kingMoved || rookMoved {
		return false
	}

	rookCol := 0
	emptyCols := []int{1, 2, 3}
	passCols := []int{4, 3, 2}
	if kingside {
		rookCol = 7
		emptyCols = []int{5, 6}
		passCols = []int{4, 5, 6}
	}
	rook := pos.Board.At(row, rookCol)
	if rook.Type != model.Rook || rook.Color != side {
		return false
	}
	for _, c := range emptyCols {
		if !pos.Board.At(row, c).IsEmpty() {
			return false
		}
	}
	enemy := side.Opponent()
	for _, c := range passCols {
		if IsSquareUnderAttack(&pos.Board, model.Square{Row: row, Col: c}, enemy) {
			return false
		}
	}
	return true
}

func castleMoves(pos *model.Position, side model.Color) []model.Move {
	row := homeRow(side)
	var moves []model.Move
	if castleAllowed(pos, side, true) {
		moves = append(moves, model.Move{FromRow: row, FromCol: 4, ToRow: row, ToCol: 6})
	}
	if castleAllowed(pos, side, false) {
		moves = append(moves, model.Move{FromRow: row, FromCol: 4, ToRow: row, ToCol: 2})
	}
	return moves
}
