package provider

import (
	"strings"
	"sync"

	"github.com/freeeve/uci"
	"github.com/rs/zerolog"

	"github.com/premkumardevadason/chess-go/internal/model"
)

const defaultUCIDepth = 10

// UCI adapts an external engine binary (stockfish, lc0, ...) to the
// provider contract. The process is started lazily on first use and
// reused across games; any protocol failure drops it so the next
// request starts fresh.
type UCI struct {
	path  string
	depth int
	log   zerolog.Logger

	mu    sync.Mutex // serializes searches
	engMu sync.Mutex // guards eng so StopThinking never waits on a search
	eng   *uci.Engine
}

func NewUCI(path string, depth int, log zerolog.Logger) *UCI {
	if depth <= 0 {
		depth = defaultUCIDepth
	}
	return &UCI{
		path:  path,
		depth: depth,
		log:   log.With().Str("provider", "uci").Logger(),
	}
}

func (u *UCI) Name() string { return "uci" }

// StopThinking kills the engine process. A search blocked in GoDepth
// fails over the closed pipe and SelectMove returns nil; the next
// request restarts the engine.
func (u *UCI) StopThinking() {
	u.engMu.Lock()
	defer u.engMu.Unlock()
	if u.eng != nil {
		u.eng.Close()
		u.eng = nil
	}
}

func (u *UCI) SelectMove(pos *model.Position, legal []model.Move) *model.Move {
	if len(legal) == 0 {
		return nil
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	eng, err := u.engine()
	if err != nil {
		u.log.Error().Err(err).Str("path", u.path).Msg("engine start failed")
		return nil
	}
	if err := eng.SetFEN(pos.FEN(0)); err != nil {
		u.log.Warn().Err(err).Msg("set position failed")
		u.drop(eng)
		return nil
	}
	results, err := eng.GoDepth(u.depth, uci.HighestDepthOnly)
	if err != nil {
		u.log.Warn().Err(err).Msg("search failed")
		u.drop(eng)
		return nil
	}
	alg := strings.TrimSpace(results.BestMove)
	m, ok := model.MoveFromAlgebraic(alg)
	if !ok {
		u.log.Warn().Str("best_move", alg).Msg("unparsable best move")
		return nil
	}
	return &m
}

// engine returns the running process, starting one if needed.
func (u *UCI) engine() (*uci.Engine, error) {
	u.engMu.Lock()
	defer u.engMu.Unlock()
	if u.eng != nil {
		return u.eng, nil
	}
	eng, err := uci.NewEngine(u.path)
	if err != nil {
		return nil, err
	}
	opts := uci.Options{
		Hash:    128,
		Threads: 1,
		MultiPV: 1,
		Ponder:  false,
		OwnBook: false,
	}
	if err := eng.SetOptions(opts); err != nil {
		eng.Close()
		return nil, err
	}
	u.eng = eng
	u.log.Info().Str("path", u.path).Msg("engine started")
	return eng, nil
}

// drop discards a failed engine unless StopThinking already swapped it
// out.
func (u *UCI) drop(eng *uci.Engine) {
	u.engMu.Lock()
	defer u.engMu.Unlock()
	if u.eng == eng {
		u.eng.Close()
		u.eng = nil
	}
}
