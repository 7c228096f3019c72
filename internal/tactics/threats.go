package tactics

import (
	"sort"

	"github.com/premkumardevadason/chess-go/internal/engine"
	"github.com/premkumardevadason/chess-go/internal/model"
)

// ThreatenedPieces returns the squares of the given side's Queen,
// Rooks, Bishops and Knights currently under enemy attack, most
// valuable first. Pawns and the King are not reported; checks are the
// check-response path's business.
func ThreatenedPieces(b *model.Board, side model.Color) []model.Square {
	enemy := side.Opponent()
	var threatened []model.Square
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.At(r, c)
			if p.IsEmpty() || p.Color != side {
				continue
			}
			if p.Type == model.Pawn || p.Type == model.King {
				continue
			}
			sq := model.Square{Row: r, Col: c}
			if engine.IsSquareUnderAttack(b, sq, enemy) {
				threatened = append(threatened, sq)
			}
		}
	}
	sort.SliceStable(threatened, func(i, j int) bool {
		vi := PieceValue(b.At(threatened[i].Row, threatened[i].Col).Type)
		vj := PieceValue(b.At(threatened[j].Row, threatened[j].Col).Type)
		return vi > vj
	})
	return threatened
}

// piecesThreatenedBy lists the defending side's pieces the attacker on
// from currently bears on.
func piecesThreatenedBy(b *model.Board, from model.Square, side model.Color) []model.Square {
	var hit []model.Square
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.At(r, c)
			if p.IsEmpty() || p.Color != side {
				continue
			}
			to := model.Square{Row: r, Col: c}
			if engine.CanPieceAttack(b, from, to) {
				hit = append(hit, to)
			}
		}
	}
	return hit
}

// FindForkDefense scans enemy pieces for forks against the given side:
// one attacker bearing on two or more pieces worth at least 600
// combined. The response is capturing the forking piece when the
// trade holds up, otherwise moving the most valuable target to a safe
// square. Returns nil when no fork warrants a response.
func FindForkDefense(pos *model.Position, side model.Color, legal []model.Move) *model.Move {
	b := &pos.Board
	enemy := side.Opponent()

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.At(r, c)
			if p.IsEmpty() || p.Color != enemy {
				continue
			}
			forker := model.Square{Row: r, Col: c}
			targets := piecesThreatenedBy(b, forker, side)
			if len(targets) < 2 {
				continue
			}
			total := 0
			for _, t := range targets {
				total += PieceValue(b.At(t.Row, t.Col).Type)
			}
			if total < 600 {
				continue
			}

			if m := captureMoveOn(b, forker, legal, side); m != nil {
				return m
			}
			if m := escapeMostValuable(pos, targets, legal, side); m != nil {
				return m
			}
		}
	}
	return nil
}

// captureMoveOn finds a legal capture of the piece on target that does
// not lose material outright: the capturer is worth no more than the
// target, or the landing square is safe.
func captureMoveOn(b *model.Board, target model.Square, legal []model.Move, side model.Color) *model.Move {
	targetValue := PieceValue(b.At(target.Row, target.Col).Type)
	for _, m := range legal {
		if m.To() != target {
			continue
		}
		if engine.IsPiecePinned(b, m.From()) {
			continue
		}
		capturer := PieceValue(b.At(m.FromRow, m.FromCol).Type)
		if capturer <= targetValue || safeAfter(b, m, side) {
			mm := m
			return &mm
		}
	}
	return nil
}

func escapeMostValuable(pos *model.Position, targets []model.Square, legal []model.Move, side model.Color) *model.Move {
	b := &pos.Board
	sort.SliceStable(targets, func(i, j int) bool {
		return PieceValue(b.At(targets[i].Row, targets[i].Col).Type) >
			PieceValue(b.At(targets[j].Row, targets[j].Col).Type)
	})
	for _, t := range targets {
		for _, m := range legal {
			if m.From() != t {
				continue
			}
			if engine.IsPiecePinned(b, m.From()) {
				continue
			}
			if safeAfter(b, m, side) {
				mm := m
				return &mm
			}
		}
	}
	return nil
}

// safeAfter simulates the move on a private copy and reports whether
// the destination square is free of enemy attack afterwards.
func safeAfter(b *model.Board, m model.Move, side model.Color) bool {
	sim := *b
	sim[m.ToRow][m.ToCol] = sim[m.FromRow][m.FromCol]
	sim[m.FromRow][m.FromCol] = model.Piece{}
	return !engine.IsSquareUnderAttack(&sim, m.To(), side.Opponent())
}
