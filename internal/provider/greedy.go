package provider

import (
	"github.com/premkumardevadason/chess-go/internal/model"
	"github.com/premkumardevadason/chess-go/internal/tactics"
)

// Greedy chases the largest immediate capture that does not hang the
// capturing piece. Ties, including quiet positions where nothing
// scores, are broken at random.
type Greedy struct {
	rng *lockedRand
}

func NewGreedy() *Greedy {
	return &Greedy{rng: newLockedRand()}
}

func (g *Greedy) Name() string { return "greedy" }

func (g *Greedy) SelectMove(pos *model.Position, legal []model.Move) *model.Move {
	if len(legal) == 0 {
		return nil
	}
	best := []model.Move{legal[0]}
	bestScore := g.score(pos, legal[0])
	for _, m := range legal[1:] {
		switch score := g.score(pos, m); {
		case score > bestScore:
			bestScore = score
			best = append(best[:0], m)
		case score == bestScore:
			best = append(best, m)
		}
	}
	m := best[g.rng.Intn(len(best))]
	return &m
}

// score is the captured value, minus the mover's own value when the
// move leaves it hanging.
func (g *Greedy) score(pos *model.Position, m model.Move) int {
	score := tactics.CapturedValue(&pos.Board, m)
	if tactics.HangsPiece(&pos.Board, m) {
		score -= tactics.PieceValue(pos.Board.At(m.FromRow, m.FromCol).Type)
	}
	return score
}
