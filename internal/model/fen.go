package model

import (
	"fmt"
	"strings"
)

var fenPieces = map[PieceType]byte{
	King:   'k',
	Queen:  'q',
	Rook:   'r',
	Bishop: 'b',
	Knight: 'n',
	Pawn:   'p',
}

var fenTypes = map[byte]PieceType{
	'k': King,
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
	'p': Pawn,
}

// PlacementFEN returns the piece-placement field only, the key format
// of the opening book.
func (b *Board) PlacementFEN() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for c := 0; c < 8; c++ {
			p := b[r][c]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			ch := fenPieces[p.Type]
			if p.Color == White {
				ch -= 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r < 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN returns a full six-field FEN string. Castling availability is
// derived from the moved flags; there is no en passant tracking, so
// that field is always "-". fullmove is computed from plyCount.
func (p *Position) FEN(plyCount int) string {
	castle := ""
	if !p.Castling.WhiteKingMoved {
		if !p.Castling.WhiteKingsideRookMoved {
			castle += "K"
		}
		if !p.Castling.WhiteQueensideRookMoved {
			castle += "Q"
		}
	}
	if !p.Castling.BlackKingMoved {
		if !p.Castling.BlackKingsideRookMoved {
			castle += "k"
		}
		if !p.Castling.BlackQueensideRookMoved {
			castle += "q"
		}
	}
	if castle == "" {
		castle = "-"
	}
	turn := "w"
	if p.Turn == Black {
		turn = "b"
	}
	return fmt.Sprintf("%s %s %s - 0 %d", p.Board.PlacementFEN(), turn, castle, plyCount/2+1)
}

// PositionFromFEN parses the placement and side-to-move fields of a
// FEN string. Castling flags are derived from the castling field when
// present, otherwise from piece placement.
func PositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty FEN")
	}
	var b Board
	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("FEN placement needs 8 ranks, got %d", len(rows))
	}
	for r, row := range rows {
		c := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			if c > 7 {
				return nil, fmt.Errorf("rank %d overflows", 8-r)
			}
			lower := ch | 0x20
			pt, ok := fenTypes[lower]
			if !ok {
				return nil, fmt.Errorf("bad FEN piece %q", ch)
			}
			color := Black
			if ch >= 'A' && ch <= 'Z' {
				color = White
			}
			b[r][c] = Piece{Type: pt, Color: color}
			c++
		}
		if c != 8 {
			return nil, fmt.Errorf("rank %d has %d files", 8-r, c)
		}
	}

	pos := &Position{Board: b, Turn: White}
	if len(fields) > 1 && fields[1] == "b" {
		pos.Turn = Black
	}

	castle := "-"
	if len(fields) > 2 {
		castle = fields[2]
	}
	pos.Castling = CastlingRights{
		WhiteKingsideRookMoved:  !strings.Contains(castle, "K"),
		WhiteQueensideRookMoved: !strings.Contains(castle, "Q"),
		BlackKingsideRookMoved:  !strings.Contains(castle, "k"),
		BlackQueensideRookMoved: !strings.Contains(castle, "q"),
	}
	pos.Castling.WhiteKingMoved = pos.Castling.WhiteKingsideRookMoved && pos.Castling.WhiteQueensideRookMoved
	pos.Castling.BlackKingMoved = pos.Castling.BlackKingsideRookMoved && pos.Castling.BlackQueensideRookMoved
	return pos, nil
}
