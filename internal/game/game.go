// Package game owns the per-game aggregate: the live position, undo
// and repetition history, the opening line, subscribed clients and the
// asynchronous reply loop that asks the arbiter for the engine's move.
package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/premkumardevadason/chess-go/internal/arbiter"
	"github.com/premkumardevadason/chess-go/internal/engine"
	"github.com/premkumardevadason/chess-go/internal/history"
	"github.com/premkumardevadason/chess-go/internal/model"
	"github.com/premkumardevadason/chess-go/internal/opening"
	"github.com/premkumardevadason/chess-go/internal/tactics"
)

// The human always owns White; the engine answers as Black.
const (
	humanSide  = model.White
	engineSide = model.Black
)

// Game is one human-versus-engine session. Every mutation runs under
// the game mutex; the engine reply is computed off-lock on cloned
// state, and a generation counter lets Undo and Reset discard replies
// that started before the rewind.
type Game struct {
	ID string

	mu       sync.Mutex
	pos      *model.Position
	stack    *history.Stack
	window   *history.Window
	history  []string
	status   model.Status
	lastAI   *model.Move
	lastMove model.Move
	selected string
	gen      int
	cancel   context.CancelFunc

	registry *arbiter.Registry
	arb      *arbiter.Arbiter
	book     *opening.Book

	conns connRegistry

	log zerolog.Logger
}

// NewGame starts a fresh game and fixes its engine provider for the
// whole session by drawing one name from the registry. The book is
// per-game: opening lines are session state, not shared data.
func NewGame(id string, arb *arbiter.Arbiter, reg *arbiter.Registry, book *opening.Book, log zerolog.Logger) *Game {
	return &Game{
		ID:       id,
		pos:      model.NewPosition(),
		stack:    history.NewStack(),
		window:   history.NewWindow(),
		status:   model.StatusActive,
		selected: reg.Pick(),
		registry: reg,
		arb:      arb,
		book:     book,
		conns:    newConnRegistry(),
		log:      log.With().Str("game", id).Logger(),
	}
}

// MakeMove validates and commits a human move, then schedules the
// engine reply if the game is still running.
func (g *Game) MakeMove(m model.Move, promotion model.PieceType) error {
	g.mu.Lock()
	if g.status != model.StatusActive {
		g.mu.Unlock()
		return model.ErrGameOver
	}
	if g.pos.Turn != humanSide {
		g.mu.Unlock()
		return model.ErrNotYourTurn
	}
	if !engine.IsValidMove(g.pos, m) {
		g.mu.Unlock()
		return model.ErrIllegalMove
	}
	g.commit(m, promotion, false)
	reply := g.status == model.StatusActive
	g.mu.Unlock()

	g.Broadcast()
	if reply {
		g.scheduleReply()
	}
	return nil
}

// commit applies a validated move. Callers hold the game mutex.
func (g *Game) commit(m model.Move, promotion model.PieceType, byEngine bool) {
	g.stack.Record(model.MakeSnapshot(g.pos, g.history))
	g.pos.Apply(m, promotion)
	alg := m.Algebraic()
	g.history = append(g.history, alg)
	g.window.TrackMove(m)
	g.lastMove = m
	if g.book != nil {
		g.book.AddMoveToHistory(alg)
	}
	if byEngine {
		mv := m
		g.lastAI = &mv
	} else {
		g.lastAI = nil
	}
	g.settleOutcome()
}

// settleOutcome checks whether the committed move ended the game.
// Callers hold the game mutex.
func (g *Game) settleOutcome() {
	next := g.pos.Turn
	switch {
	case engine.IsCheckmate(g.pos, next):
		g.status = winsFor(next.Opponent())
	case engine.IsStalemate(g.pos, next):
		g.status = model.StatusStalemate
	default:
		return
	}
	g.finish()
}

// finish reports the result to the provider that played this game and
// feeds the finished move list back into the opening book. Callers
// hold the game mutex.
func (g *Game) finish() {
	won := g.status == winsFor(engineSide) || g.status == model.StatusResigned
	if e, ok := g.registry.Get(g.selected); ok {
		if r, ok := e.Provider.(arbiter.OutcomeReporter); ok {
			r.ReportOutcome(won, g.lastMove, g.selected)
		}
	}
	if g.book != nil {
		g.book.AddGameMoves(append([]string(nil), g.history...))
	}
	g.log.Info().
		Str("status", string(g.status)).
		Int("plies", len(g.history)).
		Msg("game over")
}

// scheduleReply hands a cloned position to the arbiter and commits the
// decision, unless a rewind superseded it while the providers ran.
func (g *Game) scheduleReply() {
	g.mu.Lock()
	if g.status != model.StatusActive || g.pos.Turn != engineSide {
		g.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	gen := g.gen
	req := arbiter.Request{
		Pos:      g.pos.Clone(),
		Side:     engineSide,
		Ply:      len(g.history) + 1,
		Selected: g.selected,
		Rep:      g.window.Clone(),
	}
	if g.book != nil {
		req.Book = g.book
	}
	g.mu.Unlock()

	go func() {
		defer cancel()
		d := g.arb.Decide(ctx, req)

		g.mu.Lock()
		if g.gen != gen || g.status != model.StatusActive {
			g.mu.Unlock()
			return
		}
		switch {
		case d.Terminal != "":
			g.status = d.Terminal
			g.finish()
		case d.Move != nil && engine.IsValidMove(g.pos, *d.Move):
			g.commit(*d.Move, "", true)
			g.log.Info().
				Str("move", d.Move.Algebraic()).
				Str("source", string(d.Source)).
				Str("provider", d.Provider).
				Msg("engine move committed")
		default:
			g.mu.Unlock()
			return
		}
		g.mu.Unlock()
		g.Broadcast()
	}()
}

// Undo takes back the human's last move. It rewinds one snapshot, and
// a second when the first lands on the engine's turn, so the visible
// state is always the human to move. An engine reply still being
// computed is cancelled and discarded.
func (g *Game) Undo() error {
	g.mu.Lock()
	snap, ok := g.stack.Undo(model.MakeSnapshot(g.pos, g.history))
	if !ok {
		g.mu.Unlock()
		return model.ErrEmptyStack
	}
	g.supersede()
	g.history = snap.Restore(g.pos)
	if g.pos.Turn == engineSide {
		if prev, ok := g.stack.Undo(model.MakeSnapshot(g.pos, g.history)); ok {
			g.history = prev.Restore(g.pos)
		}
	}
	g.rebuildDerived()
	g.mu.Unlock()
	g.Broadcast()
	return nil
}

// Redo replays what Undo took back, pulling the stored engine reply
// along when there is one. When the redo lands on the engine's turn
// with nothing stored the engine simply thinks again.
func (g *Game) Redo() error {
	g.mu.Lock()
	snap, ok := g.stack.Redo(model.MakeSnapshot(g.pos, g.history))
	if !ok {
		g.mu.Unlock()
		return model.ErrEmptyStack
	}
	g.supersede()
	g.history = snap.Restore(g.pos)
	if g.pos.Turn == engineSide {
		if next, ok := g.stack.Redo(model.MakeSnapshot(g.pos, g.history)); ok {
			g.history = next.Restore(g.pos)
		}
	}
	g.rebuildDerived()
	reply := g.status == model.StatusActive && g.pos.Turn == engineSide
	g.mu.Unlock()

	g.Broadcast()
	if reply {
		g.scheduleReply()
	}
	return nil
}

// Reset rewinds to the initial position. The game keeps its provider.
func (g *Game) Reset() {
	g.mu.Lock()
	g.supersede()
	g.pos = model.NewPosition()
	g.stack.Reset()
	g.window.Reset()
	g.history = nil
	g.status = model.StatusActive
	g.lastAI = nil
	g.lastMove = model.Move{}
	if g.book != nil {
		g.book.ResetOpeningLine()
	}
	g.mu.Unlock()
	g.Broadcast()
}

// Resign ends the game in the engine's favour.
func (g *Game) Resign() error {
	g.mu.Lock()
	if g.status != model.StatusActive {
		g.mu.Unlock()
		return model.ErrGameOver
	}
	g.supersede()
	g.status = model.StatusResigned
	g.finish()
	g.mu.Unlock()
	g.Broadcast()
	return nil
}

// supersede invalidates any in-flight arbitration. Callers hold the
// game mutex.
func (g *Game) supersede() {
	g.gen++
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// rebuildDerived recomputes status and move markers after a restore.
// Callers hold the game mutex.
func (g *Game) rebuildDerived() {
	g.lastAI = nil
	g.lastMove = model.Move{}
	if n := len(g.history); n > 0 {
		if m, ok := model.MoveFromAlgebraic(g.history[n-1]); ok {
			g.lastMove = m
		}
	}
	next := g.pos.Turn
	switch {
	case engine.IsCheckmate(g.pos, next):
		g.status = winsFor(next.Opponent())
	case engine.IsStalemate(g.pos, next):
		g.status = model.StatusStalemate
	default:
		g.status = model.StatusActive
	}
}

// State builds the client snapshot.
func (g *Game) State() model.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	st := model.GameState{
		ID:          g.ID,
		Board:       g.pos.Board,
		Turn:        g.pos.Turn,
		GameOver:    g.status != model.StatusActive,
		Status:      g.status,
		LastAIMove:  g.lastAI,
		MoveHistory: append([]string(nil), g.history...),
		AIName:      g.selected,
	}
	if engine.IsKingInCheck(&g.pos.Board, g.pos.Turn) {
		if sq, ok := g.pos.Board.FindKing(g.pos.Turn); ok {
			st.CheckSquare = &sq
		}
	}
	st.Threatened = tactics.ThreatenedPieces(&g.pos.Board, g.pos.Turn)
	if g.book != nil {
		st.Opening = g.book.CurrentLine()
	}
	return st
}

// LegalMovesFrom lists the legal moves for the piece on the given
// square in coordinate algebraic form, for the move-hint endpoint.
func (g *Game) LegalMovesFrom(notation string) ([]string, error) {
	sq, ok := model.SquareFromNotation(notation)
	if !ok {
		return nil, fmt.Errorf("%w: bad square %q", model.ErrIllegalMove, notation)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	moves := engine.LegalMovesFrom(g.pos, sq)
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.Algebraic())
	}
	return out, nil
}

func winsFor(side model.Color) model.Status {
	if side == model.White {
		return model.StatusWhiteWins
	}
	return model.StatusBlackWins
}
