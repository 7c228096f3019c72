package model

// CastlingRights tracks which castling-relevant pieces have moved.
// Flags are monotonic: commits only ever set them true. Snapshot
// restore is the single exception.
type CastlingRights struct {
	WhiteKingMoved          bool `json:"whiteKingMoved"`
	WhiteKingsideRookMoved  bool `json:"whiteKingsideRookMoved"`
	WhiteQueensideRookMoved bool `json:"whiteQueensideRookMoved"`
	BlackKingMoved          bool `json:"blackKingMoved"`
	BlackKingsideRookMoved  bool `json:"blackKingsideRookMoved"`
	BlackQueensideRookMoved bool `json:"blackQueensideRookMoved"`
}

// Position is the full game position: board contents, side to move and
// castling flags. It contains no reference types, so a plain value
// copy is an independent snapshot safe to hand to concurrent callers.
type Position struct {
	Board    Board          `json:"board"`
	Turn     Color          `json:"turn"`
	Castling CastlingRights `json:"castling"`
}

// NewPosition returns the standard starting position with White to move.
func NewPosition() *Position {
	return &Position{Board: NewBoard(), Turn: White}
}

// Clone returns an independent copy.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// Apply commits a move: relocates the piece, performs the castling
// rook jump and pawn promotion side effects, updates castling flags
// and flips the side to move. No legality is enforced here. The
// captured piece (possibly empty) is returned. promotion selects the
// piece for an under-promotion; empty means auto-Queen.
func (p *Position) Apply(m Move, promotion PieceType) Piece {
	piece := p.Board[m.FromRow][m.FromCol]
	captured := p.Board[m.ToRow][m.ToCol]

	p.Board[m.ToRow][m.ToCol] = piece
	p.Board[m.FromRow][m.FromCol] = Piece{}

	// Castling: a King moving two files drags the rook over.
	if piece.Type == King && abs(m.ToCol-m.FromCol) == 2 {
		row := m.FromRow
		if m.ToCol > m.FromCol {
			p.Board[row][5] = p.Board[row][7]
			p.Board[row][7] = Piece{}
		} else {
			p.Board[row][3] = p.Board[row][0]
			p.Board[row][0] = Piece{}
		}
	}

	// Promotion: pawns on the last rank become Queens unless the
	// caller chose otherwise.
	if piece.Type == Pawn {
		lastRank := 0
		if piece.Color == Black {
			lastRank = 7
		}
		if m.ToRow == lastRank {
			pt := promotion
			if pt == "" || pt == Pawn || pt == King {
				pt = Queen
			}
			p.Board[m.ToRow][m.ToCol] = Piece{Type: pt, Color: piece.Color}
		}
	}

	p.updateCastlingFlags(piece, m)
	p.Turn = p.Turn.Opponent()
	return captured
}

func (p *Position) updateCastlingFlags(piece Piece, m Move) {
	switch {
	case piece.Type == King && piece.Color == White:
		p.Castling.WhiteKingMoved = true
	case piece.Type == King && piece.Color == Black:
		p.Castling.BlackKingMoved = true
	case piece.Type == Rook && piece.Color == White:
		if m.FromRow == 7 && m.FromCol == 0 {
			p.Castling.WhiteQueensideRookMoved = true
		}
		if m.FromRow == 7 && m.FromCol == 7 {
			p.Castling.WhiteKingsideRookMoved = true
		}
	case piece.Type == Rook && piece.Color == Black:
		if m.FromRow == 0 && m.FromCol == 0 {
			p.Castling.BlackQueensideRookMoved = true
		}
		if m.FromRow == 0 && m.FromCol == 7 {
			p.Castling.BlackKingsideRookMoved = true
		}
	}
	// A rook captured on its home square loses its flag too.
	switch {
	case m.ToRow == 7 && m.ToCol == 0:
		p.Castling.WhiteQueensideRookMoved = true
	case m.ToRow == 7 && m.ToCol == 7:
		p.Castling.WhiteKingsideRookMoved = true
	case m.ToRow == 0 && m.ToCol == 0:
		p.Castling.BlackQueensideRookMoved = true
	case m.ToRow == 0 && m.ToCol == 7:
		p.Castling.BlackKingsideRookMoved = true
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Snapshot is the deep copy captured before every committed move.
type Snapshot struct {
	Board    Board          `json:"board"`
	Turn     Color          `json:"turn"`
	Castling CastlingRights `json:"castling"`
	History  []string       `json:"history"`
}

// MakeSnapshot captures the position plus the move-history list.
func MakeSnapshot(p *Position, history []string) Snapshot {
	h := make([]string, len(history))
	copy(h, history)
	return Snapshot{Board: p.Board, Turn: p.Turn, Castling: p.Castling, History: h}
}

// Restore writes the snapshot back into the position and returns the
// history list it carried.
func (s Snapshot) Restore(p *Position) []string {
	p.Board = s.Board
	p.Turn = s.Turn
	p.Castling = s.Castling
	h := make([]string, len(s.History))
	copy(h, s.History)
	return h
}
