package tactics

import (
	"github.com/premkumardevadason/chess-go/internal/engine"
	"github.com/premkumardevadason/chess-go/internal/model"
)

// IsCriticalDefender reports whether the move would pull a piece off a
// square that currently holds off a short-range mate pattern: the
// knight guarding against the Scholar's Mate battery, a piece whose
// removal opens a back-rank mate, or one holding off a smothered mate.
// Flagged moves are withheld from the strategy candidate pool unless
// nothing else remains.
func IsCriticalDefender(b *model.Board, m model.Move) bool {
	if !m.InBounds() {
		return false
	}
	piece := b.At(m.FromRow, m.FromCol)
	if piece.IsEmpty() {
		return false
	}

	if scholarsGuardMove(b, m, piece) {
		return true
	}

	// Lift the piece off and test whether its King is left in a mate
	// it cannot step out of.
	sim := *b
	sim[m.FromRow][m.FromCol] = model.Piece{}
	king, ok := sim.FindKing(piece.Color)
	if !ok {
		return false
	}
	if backRankMateLive(&sim, king, piece.Color) {
		return true
	}
	if smotheredMateLive(&sim, king, piece.Color) {
		return true
	}
	return kingShortMated(&sim, king, piece.Color)
}

// scholarsGuardMove: the knight on its f-file guard square may not
// move while the enemy Queen-and-Bishop battery aims at the weak pawn
// square next to the King (f7 against Black, f2 against White).
func scholarsGuardMove(b *model.Board, m model.Move, piece model.Piece) bool {
	if piece.Type != model.Knight {
		return false
	}
	if piece.Color == model.Black {
		if m.FromRow != 2 || m.FromCol != 5 {
			return false
		}
		queen := b.At(5, 5)
		bishop := b.At(4, 2)
		return queen.Type == model.Queen && queen.Color == model.White &&
			bishop.Type == model.Bishop && bishop.Color == model.White
	}
	if m.FromRow != 5 || m.FromCol != 5 {
		return false
	}
	queen := b.At(2, 5)
	bishop := b.At(3, 2)
	return queen.Type == model.Queen && queen.Color == model.Black &&
		bishop.Type == model.Bishop && bishop.Color == model.Black
}

// backRankMateLive: the King sits on its home rank under Rook or Queen
// attack along that rank with no forward escape square.
func backRankMateLive(b *model.Board, king model.Square, side model.Color) bool {
	home := 7
	forward := -1
	if side == model.Black {
		home = 0
		forward = 1
	}
	if king.Row != home {
		return false
	}
	enemy := side.Opponent()

	attacked := false
	for _, from := range engine.FindAttackers(b, king, enemy) {
		p := b.At(from.Row, from.Col)
		if (p.Type == model.Rook || p.Type == model.Queen) && from.Row == home {
			attacked = true
			break
		}
	}
	if !attacked {
		return false
	}

	for dc := -1; dc <= 1; dc++ {
		r, c := king.Row+forward, king.Col+dc
		if !model.InBounds(r, c) {
			continue
		}
		occ := b.At(r, c)
		if !occ.IsEmpty() && occ.Color == side {
			continue
		}
		if !engine.IsSquareUnderAttack(b, model.Square{Row: r, Col: c}, enemy) {
			return false
		}
	}
	return true
}

// smotheredMateLive: every neighbor square is off-board or held by the
// King's own pieces, and an enemy knight attacks the King.
func smotheredMateLive(b *model.Board, king model.Square, side model.Color) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := king.Row+dr, king.Col+dc
			if !model.InBounds(r, c) {
				continue
			}
			occ := b.At(r, c)
			if occ.IsEmpty() || occ.Color != side {
				return false
			}
		}
	}
	for _, from := range engine.FindAttackers(b, king, side.Opponent()) {
		if b.At(from.Row, from.Col).Type == model.Knight {
			return true
		}
	}
	return false
}

// kingShortMated: the King is attacked and none of its neighbor
// squares offers a safe step. This deliberately ignores captures and
// interpositions; it asks whether the King itself is out of moves,
// which is what makes a defender critical.
func kingShortMated(b *model.Board, king model.Square, side model.Color) bool {
	enemy := side.Opponent()
	if !engine.IsSquareUnderAttack(b, king, enemy) {
		return false
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := king.Row+dr, king.Col+dc
			if !model.InBounds(r, c) {
				continue
			}
			occ := b.At(r, c)
			if !occ.IsEmpty() && occ.Color == side {
				continue
			}
			sim := *b
			sim[r][c] = sim[king.Row][king.Col]
			sim[king.Row][king.Col] = model.Piece{}
			if !engine.IsSquareUnderAttack(&sim, model.Square{Row: r, Col: c}, enemy) {
				return false
			}
		}
	}
	return true
}

// FilterCriticalDefenders drops moves that would abandon a critical
// defense. When that would leave nothing, the unfiltered set is
// returned; a bad move beats no move.
func FilterCriticalDefenders(b *model.Board, moves []model.Move) []model.Move {
	filtered := make([]model.Move, 0, len(moves))
	for _, m := range moves {
		if !IsCriticalDefender(b, m) {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == 0 {
		return moves
	}
	return filtered
}

// ForcedDefensiveMove hunts for a response to a direct attack on the
// piece at threatened. Search order: capture the attacker with the
// threatened piece itself, capture it with anything else on a holding
// trade, relocate the threatened piece to a safe square that does not
// expose the Queen, interpose on a sliding attack line. Pinned pieces
// sit the search out. Returns nil when no defense exists.
func ForcedDefensiveMove(pos *model.Position, threatened model.Square, legal []model.Move) *model.Move {
	b := &pos.Board
	victim := b.At(threatened.Row, threatened.Col)
	if victim.IsEmpty() {
		return nil
	}
	side := victim.Color
	attackers := engine.FindAttackers(b, threatened, side.Opponent())
	if len(attackers) == 0 {
		return nil
	}

	// Capture with the threatened piece itself.
	for _, atk := range attackers {
		for _, m := range legal {
			if m.From() != threatened || m.To() != atk {
				continue
			}
			if engine.IsPiecePinned(b, m.From()) {
				continue
			}
			atkValue := PieceValue(b.At(atk.Row, atk.Col).Type)
			if safeAfter(b, m, side) || atkValue >= 300 {
				mm := m
				return &mm
			}
		}
	}

	// Capture with any other piece on a holding trade.
	victimValue := PieceValue(victim.Type)
	for _, atk := range attackers {
		atkValue := PieceValue(b.At(atk.Row, atk.Col).Type)
		for _, m := range legal {
			if m.To() != atk || m.From() == threatened {
				continue
			}
			if engine.IsPiecePinned(b, m.From()) {
				continue
			}
			capturer := PieceValue(b.At(m.FromRow, m.FromCol).Type)
			if atkValue >= capturer || victimValue > capturer {
				mm := m
				return &mm
			}
		}
	}

	// Relocate out of the attack.
	for _, m := range legal {
		if m.From() != threatened {
			continue
		}
		if engine.IsPiecePinned(b, m.From()) {
			continue
		}
		if safeAfter(b, m, side) && !exposesQueen(b, m, side) {
			mm := m
			return &mm
		}
	}

	// Interpose against sliding attackers.
	for _, atk := range attackers {
		pt := b.At(atk.Row, atk.Col).Type
		if pt != model.Rook && pt != model.Bishop && pt != model.Queen {
			continue
		}
		for _, between := range squaresBetween(atk, threatened) {
			for _, m := range legal {
				if m.To() != between || m.From() == threatened {
					continue
				}
				if b.At(m.FromRow, m.FromCol).Type == model.King {
					continue
				}
				if engine.IsPiecePinned(b, m.From()) {
					continue
				}
				mm := m
				return &mm
			}
		}
	}
	return nil
}

// exposesQueen reports whether the move leaves the mover's Queen newly
// under attack.
func exposesQueen(b *model.Board, m model.Move, side model.Color) bool {
	queenBefore, before := findQueen(b, side)
	sim := *b
	sim[m.ToRow][m.ToCol] = sim[m.FromRow][m.FromCol]
	sim[m.FromRow][m.FromCol] = model.Piece{}
	queen, ok := findQueen(&sim, side)
	if !ok {
		return false
	}
	if before && engine.IsSquareUnderAttack(b, queenBefore, side.Opponent()) {
		return false // already exposed, not this move's doing
	}
	return engine.IsSquareUnderAttack(&sim, queen, side.Opponent())
}

func findQueen(b *model.Board, side model.Color) (model.Square, bool) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.At(r, c)
			if p.Type == model.Queen && p.Color == side {
				return model.Square{Row: r, Col: c}, true
			}
		}
	}
	return model.Square{}, false
}

// squaresBetween returns the squares strictly between two squares on a
// shared rank, file or diagonal, nearest-to-from first.
func squaresBetween(from, to model.Square) []model.Square {
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return nil
	}
	stepR := sign(dr)
	stepC := sign(dc)
	var between []model.Square
	r, c := from.Row+stepR, from.Col+stepC
	for r != to.Row || c != to.Col {
		between = append(between, model.Square{Row: r, Col: c})
		r += stepR
		c += stepC
	}
	return between
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
