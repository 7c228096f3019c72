package provider

import (
	"sync/atomic"

	"github.com/premkumardevadason/chess-go/internal/engine"
	"github.com/premkumardevadason/chess-go/internal/model"
	"github.com/premkumardevadason/chess-go/internal/tactics"
)

const (
	defaultDepth = 3
	mateScore    = 1 << 20
)

// Negamax is a fixed-depth alpha-beta search over material and
// mobility. StopThinking raises an atomic flag the search polls at
// every node; an interrupted search returns the best root move found
// so far rather than nothing.
type Negamax struct {
	depth   int
	stopped int32
	wins    int64
	losses  int64
}

func NewNegamax(depth int) *Negamax {
	if depth <= 0 {
		depth = defaultDepth
	}
	return &Negamax{depth: depth}
}

func (n *Negamax) Name() string { return "negamax" }

// StopThinking aborts the running search. Safe from any goroutine,
// including when no search is in flight.
func (n *Negamax) StopThinking() {
	atomic.StoreInt32(&n.stopped, 1)
}

// ReportOutcome keeps a running win/loss record across games.
func (n *Negamax) ReportOutcome(won bool, move model.Move, name string) {
	if won {
		atomic.AddInt64(&n.wins, 1)
	} else {
		atomic.AddInt64(&n.losses, 1)
	}
}

// Record returns games won and lost since construction.
func (n *Negamax) Record() (won, lost int64) {
	return atomic.LoadInt64(&n.wins), atomic.LoadInt64(&n.losses)
}

func (n *Negamax) SelectMove(pos *model.Position, legal []model.Move) *model.Move {
	if len(legal) == 0 {
		return nil
	}
	atomic.StoreInt32(&n.stopped, 0)

	var best model.Move
	haveBest := false
	bestScore := -2 * mateScore
	for _, m := range legal {
		if haveBest && n.stopRequested() {
			break
		}
		child := pos.Clone()
		child.Apply(m, "")
		score := -n.search(child, n.depth-1, -2*mateScore, 2*mateScore)
		if score > bestScore {
			bestScore = score
			best = m
			haveBest = true
		}
	}
	if !haveBest {
		return nil
	}
	return &best
}

func (n *Negamax) stopRequested() bool {
	return atomic.LoadInt32(&n.stopped) != 0
}

func (n *Negamax) search(pos *model.Position, depth, alpha, beta int) int {
	moves := engine.GenerateLegalMoves(pos, pos.Turn)
	if len(moves) == 0 {
		if engine.IsKingInCheck(&pos.Board, pos.Turn) {
			// Mated. Deeper remaining depth means the mate is
			// closer to the root, so punish it harder.
			return -(mateScore + depth)
		}
		return 0
	}
	if depth <= 0 || n.stopRequested() {
		return evaluate(pos, moves)
	}
	for _, m := range moves {
		child := pos.Clone()
		child.Apply(m, "")
		score := -n.search(child, depth-1, -beta, -alpha)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// evaluate scores the position for the side to move: centipawn
// material plus a small mobility edge. The caller already generated
// the mover's legal moves, so only the opponent's need counting.
func evaluate(pos *model.Position, own []model.Move) int {
	material := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := pos.Board.At(r, c)
			if p.IsEmpty() || p.Type == model.King {
				continue
			}
			v := tactics.PieceValue(p.Type)
			if p.Color == pos.Turn {
				material += v
			} else {
				material -= v
			}
		}
	}
	opp := engine.GenerateLegalMoves(pos, pos.Turn.Opponent())
	return material + 2*(len(own)-len(opp))
}
