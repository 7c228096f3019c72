package game

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/premkumardevadason/chess-go/internal/arbiter"
	"github.com/premkumardevadason/chess-go/internal/model"
	"github.com/premkumardevadason/chess-go/internal/opening"
)

func mv(fromRow, fromCol, toRow, toCol int) model.Move {
	return model.Move{FromRow: fromRow, FromCol: fromCol, ToRow: toRow, ToCol: toCol}
}

// scriptedProvider replays a fixed queue of replies and records the
// outcome reports it receives.
type scriptedProvider struct {
	name  string
	delay time.Duration

	mu    sync.Mutex
	queue []model.Move

	stopped  int32
	reportMu sync.Mutex
	reported []bool
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) SelectMove(pos *model.Position, legal []model.Move) *model.Move {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) == 0 {
		return nil
	}
	m := p.queue[0]
	p.queue = p.queue[1:]
	return &m
}

func (p *scriptedProvider) StopThinking() { atomic.StoreInt32(&p.stopped, 1) }

func (p *scriptedProvider) ReportOutcome(won bool, move model.Move, name string) {
	p.reportMu.Lock()
	p.reported = append(p.reported, won)
	p.reportMu.Unlock()
}

func (p *scriptedProvider) outcomes() []bool {
	p.reportMu.Lock()
	defer p.reportMu.Unlock()
	return append([]bool(nil), p.reported...)
}

func newTestGame(p *scriptedProvider, deadline time.Duration, book *opening.Book) *Game {
	reg := arbiter.NewRegistry()
	reg.Register(p, deadline)
	return NewGame("test-game", arbiter.New(reg, zerolog.Nop()), reg, book, zerolog.Nop())
}

func waitState(t *testing.T, g *Game, cond func(model.GameState) bool) model.GameState {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		st := g.State()
		if cond(st) {
			return st
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition never reached; last state: %+v", g.State())
	return model.GameState{}
}

func TestNewGameFixesProvider(t *testing.T) {
	g := newTestGame(&scriptedProvider{name: "scripted"}, time.Second, nil)
	if st := g.State(); st.AIName != "scripted" {
		t.Fatalf("AIName = %q, want scripted", st.AIName)
	}
}

func TestMakeMoveCommitsAndEngineReplies(t *testing.T) {
	p := &scriptedProvider{name: "scripted", queue: []model.Move{mv(1, 4, 3, 4)}}
	g := newTestGame(p, time.Second, nil)

	if err := g.MakeMove(mv(6, 4, 4, 4), ""); err != nil {
		t.Fatalf("MakeMove(e2e4) = %v", err)
	}
	st := waitState(t, g, func(s model.GameState) bool { return len(s.MoveHistory) == 2 })

	if diff := cmp.Diff([]string{"e2e4", "e7e5"}, st.MoveHistory); diff != "" {
		t.Errorf("move history mismatch (-want +got):\n%s", diff)
	}
	if st.Turn != model.White {
		t.Errorf("turn = %v after the reply, want White", st.Turn)
	}
	if st.LastAIMove == nil || *st.LastAIMove != mv(1, 4, 3, 4) {
		t.Errorf("lastAIMove = %v, want e7e5", st.LastAIMove)
	}
}

func TestMakeMoveRejections(t *testing.T) {
	p := &scriptedProvider{name: "scripted", delay: 200 * time.Millisecond, queue: []model.Move{mv(1, 4, 3, 4)}}
	g := newTestGame(p, time.Second, nil)

	if err := g.MakeMove(mv(6, 4, 3, 4), ""); !errors.Is(err, model.ErrIllegalMove) {
		t.Errorf("MakeMove(e2e5) = %v, want ErrIllegalMove", err)
	}
	if err := g.MakeMove(mv(6, 4, 4, 4), ""); err != nil {
		t.Fatalf("MakeMove(e2e4) = %v", err)
	}
	// The engine is still thinking, so the turn is not the human's.
	if err := g.MakeMove(mv(6, 3, 4, 3), ""); !errors.Is(err, model.ErrNotYourTurn) {
		t.Errorf("MakeMove on the engine's turn = %v, want ErrNotYourTurn", err)
	}
}

func TestScriptedMateFinishesGame(t *testing.T) {
	// 1.e4 f6 2.d4 g5 3.Qh5#.
	p := &scriptedProvider{name: "scripted", queue: []model.Move{
		mv(1, 5, 2, 5), // f7f6
		mv(1, 6, 3, 6), // g7g5
	}}
	g := newTestGame(p, time.Second, nil)

	if err := g.MakeMove(mv(6, 4, 4, 4), ""); err != nil {
		t.Fatalf("1.e4: %v", err)
	}
	waitState(t, g, func(s model.GameState) bool { return len(s.MoveHistory) == 2 })
	if err := g.MakeMove(mv(6, 3, 4, 3), ""); err != nil {
		t.Fatalf("2.d4: %v", err)
	}
	waitState(t, g, func(s model.GameState) bool { return len(s.MoveHistory) == 4 })
	if err := g.MakeMove(mv(7, 3, 3, 7), ""); err != nil {
		t.Fatalf("3.Qh5: %v", err)
	}

	st := g.State()
	if !st.GameOver || st.Status != model.StatusWhiteWins {
		t.Fatalf("status = %q, want white_wins", st.Status)
	}
	if st.CheckSquare == nil || *st.CheckSquare != (model.Square{Row: 0, Col: 4}) {
		t.Errorf("checkSquare = %v, want the mated king on e8", st.CheckSquare)
	}
	if got := p.outcomes(); len(got) != 1 || got[0] {
		t.Errorf("outcome reports = %v, want a single loss", got)
	}
	if err := g.MakeMove(mv(6, 0, 5, 0), ""); !errors.Is(err, model.ErrGameOver) {
		t.Errorf("MakeMove after mate = %v, want ErrGameOver", err)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	p := &scriptedProvider{name: "scripted", queue: []model.Move{mv(1, 4, 3, 4)}}
	g := newTestGame(p, time.Second, nil)

	if err := g.Undo(); !errors.Is(err, model.ErrEmptyStack) {
		t.Fatalf("Undo on a fresh game = %v, want ErrEmptyStack", err)
	}

	if err := g.MakeMove(mv(6, 4, 4, 4), ""); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	waitState(t, g, func(s model.GameState) bool { return len(s.MoveHistory) == 2 })

	// Undo takes back the engine reply and the human move together.
	if err := g.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	st := g.State()
	if len(st.MoveHistory) != 0 || st.Turn != model.White {
		t.Fatalf("after undo: history %v turn %v, want the initial position", st.MoveHistory, st.Turn)
	}

	if err := g.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	st = g.State()
	if diff := cmp.Diff([]string{"e2e4", "e7e5"}, st.MoveHistory); diff != "" {
		t.Errorf("after redo (-want +got):\n%s", diff)
	}
	if st.Turn != model.White {
		t.Errorf("after redo turn = %v, want White", st.Turn)
	}

	if err := g.Redo(); !errors.Is(err, model.ErrEmptyStack) {
		t.Errorf("Redo past the top = %v, want ErrEmptyStack", err)
	}
}

func TestUndoDiscardsInFlightReply(t *testing.T) {
	p := &scriptedProvider{name: "scripted", delay: 250 * time.Millisecond, queue: []model.Move{mv(1, 4, 3, 4)}}
	g := newTestGame(p, 2*time.Second, nil)

	if err := g.MakeMove(mv(6, 4, 4, 4), ""); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	if err := g.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	waitState(t, g, func(model.GameState) bool { return atomic.LoadInt32(&p.stopped) == 1 })
	time.Sleep(300 * time.Millisecond) // let the superseded reply run out

	st := g.State()
	if len(st.MoveHistory) != 0 || st.Turn != model.White {
		t.Errorf("discarded reply reached the game: history %v turn %v", st.MoveHistory, st.Turn)
	}
}

func TestResignReportsEngineWin(t *testing.T) {
	p := &scriptedProvider{name: "scripted"}
	g := newTestGame(p, time.Second, nil)

	if err := g.Resign(); err != nil {
		t.Fatalf("Resign: %v", err)
	}
	st := g.State()
	if !st.GameOver || st.Status != model.StatusResigned {
		t.Fatalf("status = %q, want resigned", st.Status)
	}
	if got := p.outcomes(); len(got) != 1 || !got[0] {
		t.Errorf("outcome reports = %v, want a single win", got)
	}
	if err := g.Resign(); !errors.Is(err, model.ErrGameOver) {
		t.Errorf("second Resign = %v, want ErrGameOver", err)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	p := &scriptedProvider{name: "scripted", queue: []model.Move{mv(1, 4, 3, 4), mv(1, 3, 3, 3)}}
	g := newTestGame(p, time.Second, nil)

	if err := g.MakeMove(mv(6, 4, 4, 4), ""); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	waitState(t, g, func(s model.GameState) bool { return len(s.MoveHistory) == 2 })

	g.Reset()
	st := g.State()
	if len(st.MoveHistory) != 0 || st.Turn != model.White || st.GameOver {
		t.Fatalf("after reset: %+v, want a fresh game", st)
	}

	// The same session is immediately playable again.
	if err := g.MakeMove(mv(6, 3, 4, 3), ""); err != nil {
		t.Fatalf("MakeMove after reset: %v", err)
	}
	st = waitState(t, g, func(s model.GameState) bool { return len(s.MoveHistory) == 2 })
	if st.MoveHistory[0] != "d2d4" {
		t.Errorf("history after reset = %v", st.MoveHistory)
	}
}

func TestBookServesEngineReply(t *testing.T) {
	bookReplies := map[string]bool{
		"e7e5": true, "c7c5": true, "e7e6": true, "c7c6": true,
		"g8f6": true, "d7d6": true, "g7g6": true, "d7d5": true,
	}
	// The provider proposes a6, which the book never plays here; seeing
	// any main-line reply proves the lookup short-circuited the fan-out.
	p := &scriptedProvider{name: "scripted", queue: []model.Move{mv(1, 0, 2, 0)}}
	g := newTestGame(p, time.Second, opening.NewBook(zerolog.Nop()))

	if err := g.MakeMove(mv(6, 4, 4, 4), ""); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	st := waitState(t, g, func(s model.GameState) bool { return len(s.MoveHistory) == 2 })

	if reply := st.MoveHistory[1]; !bookReplies[reply] {
		t.Errorf("reply %q did not come from the opening database", reply)
	}
}

func TestLegalMovesFrom(t *testing.T) {
	g := newTestGame(&scriptedProvider{name: "scripted"}, time.Second, nil)

	got, err := g.LegalMovesFrom("e2")
	if err != nil {
		t.Fatalf("LegalMovesFrom(e2) = %v", err)
	}
	sort.Strings(got)
	if diff := cmp.Diff([]string{"e2e3", "e2e4"}, got); diff != "" {
		t.Errorf("moves from e2 (-want +got):\n%s", diff)
	}

	if _, err := g.LegalMovesFrom("j9"); err == nil {
		t.Error("LegalMovesFrom(j9) succeeded, want an error")
	}
}
