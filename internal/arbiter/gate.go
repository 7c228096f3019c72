package arbiter

import (
	"github.com/premkumardevadason/chess-go/internal/engine"
	"github.com/premkumardevadason/chess-go/internal/model"
	"github.com/premkumardevadason/chess-go/internal/tactics"
)

// choose walks the preference order: the game's selected provider, the
// remaining providers in registration order, then any safe legal move.
// The first pass honors the repetition veto; if that rejects every
// candidate the second pass runs without it, so a necessary shuffle is
// never lost to the veto.
func (a *Arbiter) choose(pos *model.Position, side model.Color, candidates []model.Move, proposals []proposal, req Request) Decision {
	ordered := make([]proposal, 0, len(proposals))
	for _, p := range proposals {
		if p.name == req.Selected {
			ordered = append(ordered, p)
		}
	}
	for _, p := range proposals {
		if p.name != req.Selected {
			ordered = append(ordered, p)
		}
	}
	fallback := tactics.SafeNonBlunderMoves(pos, candidates)

	for _, honorVeto := range []bool{true, false} {
		for _, p := range ordered {
			if p.move == nil {
				continue
			}
			if reason, ok := a.validate(pos, side, *p.move, req.Over); !ok {
				a.log.Debug().
					Str("provider", p.name).
					Str("move", p.move.Algebraic()).
					Str("reason", reason).
					Msg("proposal rejected")
				continue
			}
			if honorVeto && isFlipFlop(req.Rep, *p.move) {
				a.log.Debug().Str("provider", p.name).Str("move", p.move.Algebraic()).Msg("flip-flop vetoed")
				continue
			}
			return Decision{Move: p.move, Source: SourceProvider, Provider: p.name}
		}
		for _, m := range fallback {
			if _, ok := a.validate(pos, side, m, req.Over); !ok {
				continue
			}
			if honorVeto && isFlipFlop(req.Rep, m) {
				continue
			}
			mm := m
			a.log.Debug().Str("move", mm.Algebraic()).Msg("fallback move")
			return Decision{Move: &mm, Source: SourceFallback}
		}
	}

	// Every proposal and every safe move failed the gate. Any legal
	// move beats a false terminal call.
	mm := candidates[0]
	a.log.Warn().Str("move", mm.Algebraic()).Msg("nothing survived the gate, playing first candidate")
	return Decision{Move: &mm, Source: SourceFallback}
}

// validate is the acceptance gate, run in fixed order: bounds, source
// occupancy, side ownership, full legality, King capture, Queen
// blunder screen, Queen safety veto, hanging-piece logging, game-over,
// turn. The returned name of the failing step feeds the rejection log.
func (a *Arbiter) validate(pos *model.Position, side model.Color, m model.Move, over bool) (string, bool) {
	if !m.InBounds() {
		return "bounds", false
	}
	piece := pos.Board.At(m.FromRow, m.FromCol)
	if piece.IsEmpty() {
		return "empty_source", false
	}
	if piece.Color != side {
		return "wrong_side", false
	}
	if !engine.IsValidMove(pos, m) {
		return "illegal", false
	}
	if pos.Board.At(m.ToRow, m.ToCol).Type == model.King {
		return "king_capture", false
	}
	if tactics.IsBlunderSacrifice(pos, m) {
		return "queen_blunder", false
	}
	if tactics.QueenSafetyVeto(pos, m) {
		return "queen_safety", false
	}
	if tactics.HangsPiece(&pos.Board, m) {
		a.log.Debug().Str("move", m.Algebraic()).Msg("accepted move hangs a piece")
	}
	if over {
		return "game_over", false
	}
	if pos.Turn != side {
		return "not_your_turn", false
	}
	return "", true
}

func isFlipFlop(rep Repetition, m model.Move) bool {
	return rep != nil && rep.IsFlipFlop(m)
}
