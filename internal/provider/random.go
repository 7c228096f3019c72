package provider

import (
	"github.com/premkumardevadason/chess-go/internal/model"
)

// Random picks uniformly over the candidate set. It is the cheapest
// provider and the baseline opponent in self-play.
type Random struct {
	rng *lockedRand
}

func NewRandom() *Random {
	return &Random{rng: newLockedRand()}
}

func (r *Random) Name() string { return "random" }

func (r *Random) SelectMove(pos *model.Position, legal []model.Move) *model.Move {
	if len(legal) == 0 {
		return nil
	}
	m := legal[r.rng.Intn(len(legal))]
	return &m
}
