// Package service sits between the HTTP/websocket controllers and the
// game aggregates: a registry of live games plus the self-play
// training facade.
package service

import (
	"fmt"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/premkumardevadason/chess-go/internal/arbiter"
	"github.com/premkumardevadason/chess-go/internal/game"
	"github.com/premkumardevadason/chess-go/internal/model"
	"github.com/premkumardevadason/chess-go/internal/opening"
)

// GameManager owns the map of live games. Its lock guards the map
// only; each game serializes its own state, so one game's broadcast
// never stalls another's move.
type GameManager struct {
	mu    sync.RWMutex
	games map[string]*game.Game

	arb      *arbiter.Arbiter
	registry *arbiter.Registry
	log      zerolog.Logger
}

func NewGameManager(arb *arbiter.Arbiter, registry *arbiter.Registry, log zerolog.Logger) *GameManager {
	return &GameManager{
		games:    make(map[string]*game.Game),
		arb:      arb,
		registry: registry,
		log:      log,
	}
}

// CreateGame registers a fresh game under the given ID. Every game
// gets its own opening book: line following is session state.
func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return fmt.Errorf("%w: %s", model.ErrGameExists, gameID)
	}
	gm.games[gameID] = game.NewGame(gameID, gm.arb, gm.registry, opening.NewBook(gm.log), gm.log)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*game.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	g, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", model.ErrGameNotFound, gameID)
	}
	return g, nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return g.State(), nil
}

func (gm *GameManager) MakeMove(gameID string, move model.WSMove) error {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return g.MakeMove(move.Move(), move.Promotion)
}

func (gm *GameManager) Undo(gameID string) error {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return g.Undo()
}

func (gm *GameManager) Redo(gameID string) error {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return g.Redo()
}

func (gm *GameManager) Reset(gameID string) error {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	g.Reset()
	return nil
}

func (gm *GameManager) Resign(gameID string) error {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return g.Resign()
}

func (gm *GameManager) LegalMoves(gameID, from string) ([]string, error) {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return g.LegalMovesFrom(from)
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	g.RegisterConnection(playerID, conn)
	return nil
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string, conn *websocket.Conn) {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	g.UnregisterConnection(playerID, conn)
}
