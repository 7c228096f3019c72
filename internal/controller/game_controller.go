// Package controller exposes the game service over REST and
// websocket endpoints.
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/premkumardevadason/chess-go/internal/model"
	"github.com/premkumardevadason/chess-go/internal/service"
)

type GameController struct {
	gameService *service.GameService
	log         zerolog.Logger
}

func NewGameController(gameService *service.GameService, log zerolog.Logger) *GameController {
	return &GameController{gameService: gameService, log: log}
}

// statusFor maps the model sentinels onto HTTP statuses. Rule
// violations are conflicts with the current game state, not bad
// requests.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrGameExists):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrIllegalMove):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrGameOver),
		errors.Is(err, model.ErrEmptyStack):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return fail(c, err)
	}
	gc.log.Info().Str("game_id", gameID).Msg("game created")
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(gameState)
}

// MakeMove commits the human move. The engine reply is arbitrated
// asynchronously, so the returned state carries the position right
// after the human ply; clients follow the reply over the websocket.
func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var move model.WSMove
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move payload",
		})
	}

	if err := gc.gameService.HandleMove(gameID, move); err != nil {
		return fail(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	if err := gc.gameService.Undo(c.Params("gameId")); err != nil {
		return fail(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) Redo(c *fiber.Ctx) error {
	if err := gc.gameService.Redo(c.Params("gameId")); err != nil {
		return fail(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) Reset(c *fiber.Ctx) error {
	if err := gc.gameService.Reset(c.Params("gameId")); err != nil {
		return fail(c, err)
	}
	return gc.GetGameState(c)
}

// LegalMoves answers GET /api/games/:gameId/moves?from=e2 with the
// legal destinations for the given square.
func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	from := c.Query("from")
	if from == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing from parameter",
		})
	}

	moves, err := gc.gameService.LegalMoves(gameID, from)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"from":  from,
		"moves": moves,
	})
}
