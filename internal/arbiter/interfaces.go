package arbiter

import (
	"github.com/premkumardevadason/chess-go/internal/model"
)

// MoveProvider is the strategy contract. SelectMove receives a private
// position snapshot and the candidate set; nil means no proposal.
type MoveProvider interface {
	Name() string
	SelectMove(pos *model.Position, legal []model.Move) *model.Move
}

// Stopper is an optional provider capability: implementations that can
// cut a search short get told when their deadline passes.
type Stopper interface {
	StopThinking()
}

// OutcomeReporter is an optional provider capability for keeping a
// record across finished games.
type OutcomeReporter interface {
	ReportOutcome(won bool, move model.Move, name string)
}

// OpeningBook is the book collaborator consulted during the first
// plies of a game.
type OpeningBook interface {
	GetOpeningMove(pos *model.Position, legal []model.Move, side model.Color) (*model.Move, string)
	AddMoveToHistory(alg string)
	ResetOpeningLine()
	AddGameMoves(history []string)
}

// Repetition is the rolling move window that vetoes shuffling.
type Repetition interface {
	IsFlipFlop(m model.Move) bool
}
