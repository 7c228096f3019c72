package arbiter

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/premkumardevadason/chess-go/internal/model"
)

// proposal is one provider's answer; a nil move means it failed, timed
// out or had nothing to say.
type proposal struct {
	move *model.Move
	name string
}

// fanOut launches every registered provider concurrently, each against
// its own position clone and candidate copy, each bounded by its
// configured deadline. Wall time is bounded by the largest deadline,
// never by a straggler: a task that misses its window is asked to stop
// and its eventual result is discarded unread.
func (a *Arbiter) fanOut(ctx context.Context, pos *model.Position, candidates []model.Move) []proposal {
	entries := a.registry.Entries()
	proposals := make([]proposal, len(entries))

	g := new(errgroup.Group)
	for i, e := range entries {
		i, e := i, e
		proposals[i].name = e.Provider.Name()
		g.Go(func() error {
			tctx, cancel := context.WithTimeout(ctx, e.Deadline)
			defer cancel()

			ch := make(chan *model.Move, 1)
			go func() {
				own := append([]model.Move(nil), candidates...)
				ch <- e.Provider.SelectMove(pos.Clone(), own)
			}()

			start := time.Now()
			select {
			case m := <-ch:
				proposals[i].move = m
				a.log.Debug().
					Str("provider", e.Provider.Name()).
					Dur("took", time.Since(start)).
					Bool("proposed", m != nil).
					Msg("provider answered")
			case <-tctx.Done():
				if s, ok := e.Provider.(Stopper); ok {
					s.StopThinking()
				}
				a.log.Warn().
					Str("provider", e.Provider.Name()).
					Dur("deadline", e.Deadline).
					Msg("provider deadline exceeded")
			}
			return nil
		})
	}
	g.Wait()
	return proposals
}
