package training

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/premkumardevadason/chess-go/internal/arbiter"
	"github.com/premkumardevadason/chess-go/internal/history"
	"github.com/premkumardevadason/chess-go/internal/model"
	"github.com/premkumardevadason/chess-go/internal/opening"
)

// defaultMaxPlies caps runaway self-play games. A game undecided at
// the cap is reported as a win for neither side.
const defaultMaxPlies = 200

// Runner plays one engine-versus-engine game per job. The shared book
// learns from every finished game; decisions themselves skip the book
// so concurrent workers cannot fight over its line state.
type Runner struct {
	registry *arbiter.Registry
	book     *opening.Book
	maxPlies int
	log      zerolog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithMaxPlies caps the length of a self-play game.
func WithMaxPlies(n int) RunnerOption {
	return func(r *Runner) {
		if n >= 1 {
			r.maxPlies = n
		}
	}
}

func NewRunner(reg *arbiter.Registry, book *opening.Book, log zerolog.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: reg,
		book:     book,
		maxPlies: defaultMaxPlies,
		log:      log.With().Str("component", "training").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Play runs one game between the job's providers and reports the
// outcome to both.
func (r *Runner) Play(job Job) Result {
	white, okW := r.registry.Get(job.White)
	black, okB := r.registry.Get(job.Black)
	if !okW || !okB {
		return Result{Job: job, Err: fmt.Errorf("unknown pairing %q vs %q", job.White, job.Black)}
	}

	// A private two-provider registry keeps the fan-out from dragging
	// every registered engine into each ply.
	reg := arbiter.NewRegistry()
	reg.Register(white.Provider, white.Deadline)
	reg.Register(black.Provider, black.Deadline)
	arb := arbiter.New(reg, r.log)

	pos := model.NewPosition()
	window := history.NewWindow()
	var moves []string
	status := model.StatusActive

	for ply := 1; ply <= r.maxPlies; ply++ {
		side := pos.Turn
		selected := job.White
		if side == model.Black {
			selected = job.Black
		}
		d := arb.Decide(context.Background(), arbiter.Request{
			Pos:      pos,
			Side:     side,
			Ply:      ply,
			Selected: selected,
			Rep:      window.Clone(),
		})
		if d.Terminal != "" {
			status = d.Terminal
			break
		}
		if d.Move == nil {
			return Result{Job: job, Status: status, Moves: moves, Err: fmt.Errorf("no move for ply %d", ply)}
		}
		pos.Apply(*d.Move, "")
		window.TrackMove(*d.Move)
		moves = append(moves, d.Move.Algebraic())
	}

	r.report(job, status, moves)
	r.log.Debug().
		Int("job", job.ID).
		Str("white", job.White).
		Str("black", job.Black).
		Str("status", string(status)).
		Int("plies", len(moves)).
		Msg("self-play game finished")
	return Result{Job: job, Status: status, Moves: moves}
}

func (r *Runner) report(job Job, status model.Status, moves []string) {
	if r.book != nil {
		r.book.AddGameMoves(append([]string(nil), moves...))
	}
	var last model.Move
	if len(moves) > 0 {
		last, _ = model.MoveFromAlgebraic(moves[len(moves)-1])
	}
	r.reportTo(job.White, status == model.StatusWhiteWins, last)
	r.reportTo(job.Black, status == model.StatusBlackWins, last)
}

func (r *Runner) reportTo(name string, won bool, last model.Move) {
	e, ok := r.registry.Get(name)
	if !ok {
		return
	}
	if rep, ok := e.Provider.(arbiter.OutcomeReporter); ok {
		rep.ReportOutcome(won, last, name)
	}
}
