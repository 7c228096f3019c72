// Package engine implements move legality for the arbitration core:
// pseudo-legal movement geometry, path occupancy, attack detection,
// check, checkmate and stalemate, and king-safety filtering. All
// queries take the side to examine explicitly and never mutate the
// caller's position; simulation runs on private board copies.
package engine

import (
	"github.com/premkumardevadason/chess-go/internal/model"
)

var (
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	royalDirs  = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	knightOffsets = [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// pawnDir is the row delta a pawn of the given color advances by.
func pawnDir(c model.Color) int {
	if c == model.White {
		return -1
	}
	return 1
}

func pawnStartRow(c model.Color) int {
	if c == model.White {
		return 6
	}
	return 1
}

// isPseudoLegal checks movement geometry and path occupancy only:
// no king safety, no turn ownership. Castling is not covered here;
// it is generated and validated separately because it needs the
// castling flags.
func isPseudoLegal(b *model.Board, m model.Move) bool {
	if !m.InBounds() {
		return false
	}
	piece := b.At(m.FromRow, m.FromCol)
	if piece.IsEmpty() {
		return false
	}
	dest := b.At(m.ToRow, m.ToCol)
	if !dest.IsEmpty() && dest.Color == piece.Color {
		return false
	}
	if m.FromRow == m.ToRow && m.FromCol == m.ToCol {
		return false
	}

	dr := m.ToRow - m.FromRow
	dc := m.ToCol - m.FromCol

	switch piece.Type {
	case model.Pawn:
		return pawnMoveOK(b, m, piece.Color)
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

func pawnMoveOK(b *model.Board, m model.Move, c model.Color) bool {
	dir := pawnDir(c)
	dr := m.ToRow - m.FromRow
	dc := m.ToCol - m.FromCol
	dest := b.At(m.ToRow, m.ToCol)

	// Straight pushes need empty squares.
	if dc == 0 {
		if !dest.IsEmpty() {
			return false
		}
		if dr == dir {
			return true
		}
		if dr == 2*dir && m.FromRow == pawnStartRow(c) {
			return b.At(m.FromRow+dir, m.FromCol).IsEmpty()
		}
		return false
	}

	// Diagonal step captures only.
	if abs(dc) == 1 && dr == dir {
		return !dest.IsEmpty() && dest.Color != c
	}
	return false
}

// pathClear reports whether the squares strictly between the move's
// endpoints are empty. Callers guarantee the move lies on a rank,
// file or diagonal.
func pathClear(b *model.Board, m model.Move) bool {
	dr := sign(m.ToRow - m.FromRow)
	dc := sign(m.ToCol - m.FromCol)
	r, c := m.FromRow+dr, m.FromCol+dc
	for r != m.ToRow || c != m.ToCol {
		if !b.At(r, c).IsEmpty() {
			return false
		}
		r += dr
		c += dc
	}
	return true
}

// pseudoMovesFrom generates all pseudo-legal moves for the piece on
// sq. Sliding pieces stop at the first occupied square, including it
// as a capture when it holds an enemy piece.
func pseudoMovesFrom(b *model.Board, sq model.Square) []model.Move {
	piece := b.At(sq.Row, sq.Col)
	if piece.IsEmpty() {
		return nil
	}
	var moves []model.Move
	switch piece.Type {
	case model.Pawn:
		moves = appendPawnMoves(moves, b, sq, piece.Color)
	case model.Knight:
		moves = appendStepMoves(moves, b, sq, piece.Color, knightOffsets[:])
	case model.King:
		moves = appendStepMoves(moves, b, sq, piece.Color, royalDirs[:])
	case model.Rook:
		moves = appendSlidingMoves(moves, b, sq, piece.Color, rookDirs[:])
	case model.Bishop:
		moves = appendSlidingMoves(moves, b, sq, piece.Color, bishopDirs[:])
	case model.Queen:
		moves = appendSlidingMoves(moves, b, sq, piece.Color, royalDirs[:])
	}
	return moves
}

func appendPawnMoves(moves []model.Move, b *model.Board, sq model.Square, c model.Color) []model.Move {
	dir := pawnDir(c)

	one := sq.Row + dir
	if model.InBounds(one, sq.Col) && b.At(one, sq.Col).IsEmpty() {
		moves = append(moves, model.Move{FromRow: sq.Row, FromCol: sq.Col, ToRow: one, ToCol: sq.Col})
		two := sq.Row + 2*dir
		if sq.Row == pawnStartRow(c) && b.At(two, sq.Col).IsEmpty() {
			moves = append(moves, model.Move{FromRow: sq.Row, FromCol: sq.Col, ToRow: two, ToCol: sq.Col})
		}
	}
	for _, dc := range [2]int{-1, 1} {
		r, col := sq.Row+dir, sq.Col+dc
		if !model.InBounds(r, col) {
			continue
		}
		dest := b.At(r, col)
		if !dest.IsEmpty() && dest.Color != c {
			moves = append(moves, model.Move{FromRow: sq.Row, FromCol: sq.Col, ToRow: r, ToCol: col})
		}
	}
	return moves
}

func appendStepMoves(moves []model.Move, b *model.Board, sq model.Square, c model.Color, offsets [][2]int) []model.Move {
	for _, d := range offsets {
		r, col := sq.Row+d[0], sq.Col+d[1]
		if !model.InBounds(r, col) {
			continue
		}
		dest := b.At(r, col)
		if dest.IsEmpty() || dest.Color != c {
			moves = append(moves, model.Move{FromRow: sq.Row, FromCol: sq.Col, ToRow: r, ToCol: col})
		}
	}
	return moves
}

func appendSlidingMoves(moves []model.Move, b *model.Board, sq model.Square, c model.Color, dirs [][2]int) []model.Move {
	for _, d := range dirs {
		r, col := sq.Row+d[0], sq.Col+d[1]
		for model.InBounds(r, col) {
			dest := b.At(r, col)
			if dest.IsEmpty() {
				moves = append(moves, model.Move{FromRow: sq.Row, FromCol: sq.Col, ToRow: r, ToCol: col})
				r += d[0]
				col += d[1]
				continue
			}
			if dest.Color != c {
				moves = append(moves, model.Move{FromRow: sq.Row, FromCol: sq.Col, ToRow: r, ToCol: col})
			}
			break
		}
	}
	return moves
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
