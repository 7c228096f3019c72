package training

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/premkumardevadason/chess-go/internal/arbiter"
	"github.com/premkumardevadason/chess-go/internal/model"
)

func mv(fromRow, fromCol, toRow, toCol int) model.Move {
	return model.Move{FromRow: fromRow, FromCol: fromCol, ToRow: toRow, ToCol: toCol}
}

// scripted replays a queue of moves and counts outcome reports.
type scripted struct {
	name string

	mu    sync.Mutex
	queue []model.Move

	wins   int32
	losses int32
}

func (s *scripted) Name() string { return s.name }

func (s *scripted) SelectMove(pos *model.Position, legal []model.Move) *model.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return nil
	}
	m := s.queue[0]
	s.queue = s.queue[1:]
	return &m
}

func (s *scripted) ReportOutcome(won bool, move model.Move, name string) {
	if won {
		atomic.AddInt32(&s.wins, 1)
	} else {
		atomic.AddInt32(&s.losses, 1)
	}
}

func newRegistry(providers ...arbiter.MoveProvider) *arbiter.Registry {
	reg := arbiter.NewRegistry()
	for _, p := range providers {
		reg.Register(p, time.Second)
	}
	return reg
}

func TestRunnerPlaysToMate(t *testing.T) {
	// 1.f3 e5 2.g4 Qh4#.
	white := &scripted{name: "white", queue: []model.Move{mv(6, 5, 5, 5), mv(6, 6, 4, 6)}}
	black := &scripted{name: "black", queue: []model.Move{mv(1, 4, 3, 4), mv(0, 3, 4, 7)}}
	r := NewRunner(newRegistry(white, black), nil, zerolog.Nop())

	got := r.Play(Job{ID: 1, White: "white", Black: "black"})

	if got.Err != nil {
		t.Fatalf("Play returned error: %v", got.Err)
	}
	if got.Status != model.StatusBlackWins {
		t.Fatalf("status = %q, want black_wins", got.Status)
	}
	if len(got.Moves) != 4 || got.Moves[3] != "d8h4" {
		t.Errorf("moves = %v, want the four-ply mate", got.Moves)
	}
	if atomic.LoadInt32(&black.wins) != 1 || atomic.LoadInt32(&white.losses) != 1 {
		t.Errorf("reports: black wins %d, white losses %d; want 1 and 1",
			atomic.LoadInt32(&black.wins), atomic.LoadInt32(&white.losses))
	}
}

func TestRunnerCapsGameLength(t *testing.T) {
	// Providers with no opinion leave every ply to the fallback, so the
	// game runs until the cap.
	white := &scripted{name: "white"}
	black := &scripted{name: "black"}
	r := NewRunner(newRegistry(white, black), nil, zerolog.Nop(), WithMaxPlies(6))

	got := r.Play(Job{ID: 2, White: "white", Black: "black"})

	if got.Err != nil {
		t.Fatalf("Play returned error: %v", got.Err)
	}
	if len(got.Moves) != 6 {
		t.Errorf("len(moves) = %d, want the 6-ply cap", len(got.Moves))
	}
	if got.Status != model.StatusActive {
		t.Errorf("status = %q, want active at the cap", got.Status)
	}
	if atomic.LoadInt32(&white.wins)+atomic.LoadInt32(&black.wins) != 0 {
		t.Error("a capped game reported a winner")
	}
}

func TestRunnerUnknownPairing(t *testing.T) {
	r := NewRunner(newRegistry(&scripted{name: "white"}), nil, zerolog.Nop())
	if got := r.Play(Job{White: "white", Black: "ghost"}); got.Err == nil {
		t.Error("Play with an unregistered provider returned no error")
	}
}

func TestPoolProcessesAllJobs(t *testing.T) {
	var played int32
	pool := NewPool(func(j Job) Result {
		atomic.AddInt32(&played, 1)
		return Result{Job: j}
	}, WithWorkers(4), WithBufferSize(8))
	pool.Start()

	const jobs = 20
	go func() {
		for i := 0; i < jobs; i++ {
			pool.Submit(Job{ID: i})
		}
		pool.Close()
	}()

	seen := make(map[int]bool)
	for res := range pool.Results() {
		seen[res.Job.ID] = true
	}
	if len(seen) != jobs {
		t.Fatalf("got %d results, want %d", len(seen), jobs)
	}
	if got := atomic.LoadInt32(&played); got != jobs {
		t.Errorf("played = %d, want %d", got, jobs)
	}
}

func TestPoolStopDrainsWithoutPlaying(t *testing.T) {
	var played int32
	pool := NewPool(func(j Job) Result {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&played, 1)
		return Result{Job: j}
	}, WithWorkers(1), WithBufferSize(64))
	pool.Start()

	for i := 0; i < 30; i++ {
		pool.Submit(Job{ID: i})
	}
	pool.Stop()
	go pool.Close()
	for range pool.Results() {
	}

	if got := atomic.LoadInt32(&played); got >= 30 {
		t.Errorf("stop did not keep queued jobs from playing: %d", got)
	}
	if !pool.IsStopped() {
		t.Error("IsStopped() = false after Stop")
	}
}

func TestPoolTrySubmit(t *testing.T) {
	block := make(chan struct{})
	pool := NewPool(func(j Job) Result {
		<-block
		return Result{Job: j}
	}, WithWorkers(1), WithBufferSize(1))
	pool.Start()

	pool.Submit(Job{ID: 0})
	accepted := 0
	for i := 1; i <= 3; i++ {
		if pool.TrySubmit(Job{ID: i}) {
			accepted++
		}
	}
	if accepted == 3 {
		t.Error("TrySubmit never reported a full buffer")
	}

	pool.Stop()
	if pool.TrySubmit(Job{ID: 9}) {
		t.Error("TrySubmit accepted a job after Stop")
	}

	close(block)
	pool.Close()
	for range pool.Results() {
	}
}

func TestPoolDefaults(t *testing.T) {
	pool := NewPool(func(j Job) Result { return Result{Job: j} })
	if pool.NumWorkers() != 1 {
		t.Errorf("NumWorkers() = %d, want 1", pool.NumWorkers())
	}
	if pool.bufferSize != 16 {
		t.Errorf("bufferSize = %d, want 16", pool.bufferSize)
	}

	pool = NewPool(func(j Job) Result { return Result{Job: j} }, WithWorkers(0), WithBufferSize(-1))
	if pool.NumWorkers() != 1 || pool.bufferSize != 16 {
		t.Errorf("invalid options changed defaults: %d workers, buffer %d", pool.NumWorkers(), pool.bufferSize)
	}
}
