// Package arbiter runs the per-ply move arbitration cascade: opening
// book lookup, mandatory check response, forced piece defense, fork
// handling, then a concurrent provider fan-out whose results pass a
// fixed validation gate and a repetition veto before one is committed.
package arbiter

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/premkumardevadason/chess-go/internal/engine"
	"github.com/premkumardevadason/chess-go/internal/model"
	"github.com/premkumardevadason/chess-go/internal/tactics"
)

// openingPlies is how deep into the game the book stays in play.
const openingPlies = 20

// Source tells where a decided move came from.
type Source string

const (
	SourceOpening       Source = "opening"
	SourceCheckResponse Source = "check_response"
	SourceForcedDefense Source = "forced_defense"
	SourceForkDefense   Source = "fork_defense"
	SourceProvider      Source = "provider"
	SourceFallback      Source = "fallback"
)

// Request carries one ply's inputs. Pos must not be shared with
// concurrent writers for the duration of the call; the fan-out hands
// every provider its own clone.
type Request struct {
	Pos      *model.Position
	Side     model.Color
	Ply      int    // 1-based half-move number being decided
	Selected string // preferred provider for this game instance
	Book     OpeningBook
	Rep      Repetition
	Over     bool
}

// Decision is the outcome of one arbitration pass. Move is nil when
// the position is terminal (Terminal set) or the request was moot
// because the game was over or the context already cancelled.
type Decision struct {
	Move     *model.Move
	Source   Source
	Provider string
	Opening  string
	Terminal model.Status
}

// Arbiter drives the cascade against a provider registry. One instance
// serves every game; all per-game state, the opening book included,
// arrives in the Request.
type Arbiter struct {
	registry *Registry
	log      zerolog.Logger
}

func New(registry *Registry, log zerolog.Logger) *Arbiter {
	return &Arbiter{registry: registry, log: log}
}

// Decide runs the cascade for one ply and returns the move to commit,
// or the terminal status when the side to move has no legal move.
func (a *Arbiter) Decide(ctx context.Context, req Request) Decision {
	if req.Over || ctx.Err() != nil {
		return Decision{}
	}
	pos := req.Pos
	side := req.Side

	legal := engine.GenerateLegalMoves(pos, side)
	inCheck := engine.IsKingInCheck(&pos.Board, side)
	if len(legal) == 0 {
		return terminal(side, inCheck)
	}

	// Opening lookup.
	if req.Book != nil && req.Ply <= openingPlies {
		if m, name := req.Book.GetOpeningMove(pos, legal, side); m != nil && engine.IsValidMove(pos, *m) {
			a.log.Debug().Str("opening", name).Str("move", m.Algebraic()).Msg("book move")
			return Decision{Move: m, Source: SourceOpening, Opening: name}
		}
	}

	// A check must be answered before anything else.
	if inCheck {
		m := a.checkResponse(pos, side, legal)
		a.log.Debug().Str("move", m.Algebraic()).Msg("check response")
		return Decision{Move: m, Source: SourceCheckResponse}
	}

	override, source := a.forcedDefense(pos, side, legal)

	candidates := tactics.FilterCriticalDefenders(&pos.Board, legal)
	if len(candidates) == 0 {
		candidates = legal
	}

	if override != nil {
		a.log.Debug().Str("move", override.Algebraic()).Str("source", string(source)).Msg("defensive override")
		return Decision{Move: override, Source: source}
	}

	proposals := a.fanOut(ctx, pos, candidates)
	if ctx.Err() != nil {
		return Decision{}
	}
	return a.choose(pos, side, candidates, proposals, req)
}

// forcedDefense hunts a defense for the most valuable piece under
// attack, the Queen ahead of Rooks, Bishops and Knights, then for
// multi-piece forks.
func (a *Arbiter) forcedDefense(pos *model.Position, side model.Color, legal []model.Move) (*model.Move, Source) {
	for _, sq := range tactics.ThreatenedPieces(&pos.Board, side) {
		if m := tactics.ForcedDefensiveMove(pos, sq, legal); m != nil {
			return m, SourceForcedDefense
		}
	}
	if m := tactics.FindForkDefense(pos, side, legal); m != nil {
		return m, SourceForkDefense
	}
	return nil, ""
}

// checkResponse picks the escape in fixed order: capture the checking
// piece, step the King away, otherwise interpose. Every legal move in
// check resolves it, so the last resort is simply the first one.
func (a *Arbiter) checkResponse(pos *model.Position, side model.Color, legal []model.Move) *model.Move {
	if king, ok := pos.Board.FindKing(side); ok {
		attackers := engine.FindAttackers(&pos.Board, king, side.Opponent())
		if len(attackers) == 1 {
			for _, m := range legal {
				if m.To() == attackers[0] {
					mm := m
					return &mm
				}
			}
		}
		for _, m := range legal {
			if m.From() == king {
				mm := m
				return &mm
			}
		}
	}
	mm := legal[0]
	return &mm
}

func terminal(side model.Color, inCheck bool) Decision {
	if !inCheck {
		return Decision{Terminal: model.StatusStalemate}
	}
	if side == model.White {
		return Decision{Terminal: model.StatusBlackWins}
	}
	return Decision{Terminal: model.StatusWhiteWins}
}
