// Package training runs engine self-play in a worker pool and feeds
// finished games back into the opening book.
package training

import (
	"sync"
	"sync/atomic"

	"github.com/premkumardevadason/chess-go/internal/model"
)

// Job is one self-play pairing: a provider name per color.
type Job struct {
	ID    int
	White string
	Black string
}

// Result is a finished self-play game.
type Result struct {
	Job    Job
	Status model.Status
	Moves  []string
	Err    error
}

// PlayFunc runs one job to completion.
type PlayFunc func(Job) Result

// Pool fans jobs out to worker goroutines. Stop makes workers drain
// queued jobs without playing them; Close waits for the workers and
// then closes the result channel.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	play       PlayFunc
	wg         sync.WaitGroup
	stopFlag   int32
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the job and result channel buffers.
func WithBufferSize(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.bufferSize = n
		}
	}
}

// NewPool builds a pool around the play function. Defaults: one
// worker, a buffer of 16.
func NewPool(play PlayFunc, opts ...Option) *Pool {
	p := &Pool{numWorkers: 1, bufferSize: 16, play: play}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		if p.IsStopped() {
			continue // drain without playing
		}
		p.results <- p.play(job)
	}
}

// Submit blocks when the job buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// TrySubmit reports false when the buffer is full or the pool has been
// stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop makes workers skip anything still queued. Games already being
// played run to completion.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results is the channel finished games arrive on.
func (p *Pool) Results() <-chan Result {
	return p.results
}

func (p *Pool) NumWorkers() int { return p.numWorkers }
