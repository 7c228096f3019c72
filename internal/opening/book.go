// Package opening holds a weighted opening database keyed by piece
// placement, with named line following for the move arbiter.
package opening

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/premkumardevadason/chess-go/internal/model"
	"github.com/premkumardevadason/chess-go/internal/tactics"
)

// minGames is the master-game count a database move needs before it is
// eligible for selection.
const minGames = 5

// learnPlies caps how many plies of a finished game feed back into the
// database.
const learnPlies = 15

// Book is a weighted opening database. Positions are keyed by piece
// placement and candidate moves carry master-game counts. Once a named
// line is selected the book follows its sequence ply by ply until a
// move is illegal or unsafe, or either side deviates from it.
type Book struct {
	mu        sync.Mutex
	positions map[string]map[string]int
	names     map[string]string
	sequences map[string][]string
	line      string
	lineIndex int
	history   []string
	rng       *rand.Rand
	log       zerolog.Logger
}

func NewBook(log zerolog.Logger) *Book {
	b := &Book{
		positions: make(map[string]map[string]int),
		names:     make(map[string]string),
		sequences: lineSequences,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       log,
	}
	for _, l := range mainLines {
		b.addLine(l.placement, l.move, l.games, l.name)
	}
	log.Info().Int("positions", len(b.positions)).Msg("opening book initialized")
	return b
}

func (b *Book) addLine(placement, move string, games int, name string) {
	moves, ok := b.positions[placement]
	if !ok {
		moves = make(map[string]int)
		b.positions[placement] = moves
	}
	moves[move] = games
	b.names[placement+":"+move] = name
}

// GetOpeningMove returns a database move for the position, or nil when
// the book has nothing to offer. While a named line is active its next
// move is proposed as long as it is legal for side and not a blunder;
// otherwise the line is abandoned and the database consulted fresh.
func (b *Book) GetOpeningMove(pos *model.Position, legal []model.Move, side model.Color) (*model.Move, string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	byAlg := make(map[string]model.Move, len(legal))
	for _, m := range legal {
		if pos.Board.At(m.FromRow, m.FromCol).Color != side {
			continue
		}
		byAlg[m.Algebraic()] = m
	}

	if b.line != "" {
		seq := b.sequences[b.line]
		if b.lineIndex < len(seq) {
			next := seq[b.lineIndex]
			if m, ok := byAlg[next]; ok && !tactics.IsBlunderSacrifice(pos, m) {
				return &m, b.line
			}
			b.log.Info().Str("line", b.line).Str("move", next).Msg("opening line abandoned")
		}
		b.line = ""
		b.lineIndex = 0
	}

	key := pos.Board.PlacementFEN()
	known := b.positions[key]
	if len(known) == 0 {
		return nil, ""
	}

	var candidates []string
	var weights []int
	for alg, games := range known {
		if games < minGames {
			continue
		}
		if _, ok := byAlg[alg]; !ok {
			continue
		}
		candidates = append(candidates, alg)
		weights = append(weights, games)
	}
	if len(candidates) == 0 {
		return nil, ""
	}

	chosen := b.weightedPick(candidates, weights)
	move := byAlg[chosen]
	name := b.names[key+":"+chosen]
	if _, ok := b.sequences[name]; ok {
		b.line = name
		b.lineIndex = 0
	}
	return &move, name
}

func (b *Book) weightedPick(moves []string, weights []int) string {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := b.rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return moves[i]
		}
		n -= w
	}
	return moves[0]
}

// AddMoveToHistory records a committed move from either side. When a
// line is active the move either advances it or, on deviation, breaks
// it.
func (b *Book) AddMoveToHistory(alg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.history = append(b.history, alg)
	if b.line == "" {
		return
	}
	seq := b.sequences[b.line]
	if b.lineIndex < len(seq) && seq[b.lineIndex] == alg {
		b.lineIndex++
		return
	}
	b.log.Debug().Str("line", b.line).Str("move", alg).Msg("line broken by deviation")
	b.line = ""
	b.lineIndex = 0
}

// ResetOpeningLine clears the active line and the recorded history.
func (b *Book) ResetOpeningLine() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.line = ""
	b.lineIndex = 0
	b.history = nil
}

// CurrentLine names the opening being followed, empty when none.
func (b *Book) CurrentLine() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.line
}

// AddGameMoves replays the opening phase of a finished game from the
// start position and bumps the database count of every move on the
// way, so self-play shifts the weights over time. Short games are
// ignored.
func (b *Book) AddGameMoves(history []string) {
	if len(history) < 10 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	pos := model.NewPosition()
	plies := len(history)
	if plies > learnPlies {
		plies = learnPlies
	}
	for i := 0; i < plies; i++ {
		m, ok := model.MoveFromAlgebraic(history[i])
		if !ok {
			b.log.Warn().Str("move", history[i]).Msg("unparsable move in finished game, learning aborted")
			return
		}
		key := pos.Board.PlacementFEN()
		moves, found := b.positions[key]
		if !found {
			moves = make(map[string]int)
			b.positions[key] = moves
		}
		moves[history[i]]++
		pos.Apply(m, "")
	}
	b.log.Debug().Int("plies", plies).Msg("finished game folded into the book")
}
