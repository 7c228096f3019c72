package service

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/premkumardevadason/chess-go/internal/arbiter"
	"github.com/premkumardevadason/chess-go/internal/opening"
	"github.com/premkumardevadason/chess-go/internal/training"
)

// TrainingService owns the self-play pool. It starts the workers at
// construction, drains results into the log and feeds finished games
// to the shared learning book via the runner.
type TrainingService struct {
	registry *arbiter.Registry
	pool     *training.Pool
	log      zerolog.Logger

	mu     sync.Mutex
	nextID int
}

func NewTrainingService(registry *arbiter.Registry, book *opening.Book, workers, buffer int, log zerolog.Logger, opts ...training.RunnerOption) *TrainingService {
	runner := training.NewRunner(registry, book, log, opts...)
	ts := &TrainingService{
		registry: registry,
		pool: training.NewPool(runner.Play,
			training.WithWorkers(workers),
			training.WithBufferSize(buffer)),
		log: log.With().Str("component", "training").Logger(),
	}
	ts.pool.Start()
	go ts.drain()
	return ts
}

// StartSelfPlay enqueues up to n games with pairings drawn from the
// provider registry and reports how many the pool accepted. It never
// blocks: once the buffer is full the remainder is dropped.
func (ts *TrainingService) StartSelfPlay(n int) int {
	accepted := 0
	for i := 0; i < n; i++ {
		job := training.Job{
			ID:    ts.claimID(),
			White: ts.registry.Pick(),
			Black: ts.registry.Pick(),
		}
		if !ts.pool.TrySubmit(job) {
			break
		}
		accepted++
	}
	if accepted < n {
		ts.log.Warn().Int("requested", n).Int("accepted", accepted).Msg("self-play queue full")
	}
	return accepted
}

func (ts *TrainingService) claimID() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.nextID++
	return ts.nextID
}

func (ts *TrainingService) drain() {
	for res := range ts.pool.Results() {
		if res.Err != nil {
			ts.log.Warn().Err(res.Err).Int("job", res.Job.ID).Msg("self-play game failed")
			continue
		}
		ts.log.Info().
			Int("job", res.Job.ID).
			Str("white", res.Job.White).
			Str("black", res.Job.Black).
			Str("status", string(res.Status)).
			Int("plies", len(res.Moves)).
			Msg("self-play game finished")
	}
}

// Shutdown stops accepting jobs and waits for in-flight games to
// finish. Call once, after the HTTP listener has stopped.
func (ts *TrainingService) Shutdown() {
	ts.pool.Stop()
	ts.pool.Close()
}
