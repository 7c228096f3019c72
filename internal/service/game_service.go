package service

import (
	"fmt"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/premkumardevadason/chess-go/internal/model"
)

// GameService is the controller-facing facade over the game manager.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, move model.WSMove) error {
	return gs.gameManager.MakeMove(gameID, move)
}

func (gs *GameService) Undo(gameID string) error {
	return gs.gameManager.Undo(gameID)
}

func (gs *GameService) Redo(gameID string) error {
	return gs.gameManager.Redo(gameID)
}

func (gs *GameService) Reset(gameID string) error {
	return gs.gameManager.Reset(gameID)
}

func (gs *GameService) Resign(gameID string) error {
	return gs.gameManager.Resign(gameID)
}

func (gs *GameService) LegalMoves(gameID, from string) ([]string, error) {
	return gs.gameManager.LegalMoves(gameID, from)
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string, conn *websocket.Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}
