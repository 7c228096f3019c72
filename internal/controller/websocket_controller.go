package controller

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/premkumardevadason/chess-go/internal/model"
	"github.com/premkumardevadason/chess-go/internal/service"
	"github.com/premkumardevadason/chess-go/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
	log         zerolog.Logger
}

func NewWebSocketController(gameService *service.GameService, log zerolog.Logger) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		log:         log,
	}
}

// HandleConnection runs the read loop for one client connection. The
// registration broadcast delivers the current state immediately, so a
// reconnecting client needs no separate sync request.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals("playerID").(string)
	log := wsc.log.With().Str("game_id", gameID).Str("player_id", playerID).Logger()

	if playerID == "" {
		log.Warn().Msg("websocket without player id")
		c.Close()
		return
	}

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Warn().Err(err).Msg("websocket register failed")
		c.WriteJSON(ws.NewErrorMessage(err))
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, c)

	log.Debug().Msg("websocket connected")

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Msg("websocket closed")
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debug().Err(err).Msg("unparseable websocket message")
			c.WriteJSON(ws.NewErrorMessage(err))
			continue
		}

		if err := wsc.handleMessage(gameID, msg); err != nil {
			log.Debug().Err(err).Str("type", string(msg.Type)).Msg("websocket message rejected")
			c.WriteJSON(ws.NewErrorMessage(err))
		}
	}
}

func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.WSMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("bad move payload: %w", err)
		}
		return wsc.gameService.HandleMove(gameID, move)

	case ws.MessageTypeResign:
		return wsc.gameService.Resign(gameID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
