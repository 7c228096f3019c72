// Package ws defines the websocket message envelope shared by the
// controllers and the game broadcast path.
package ws

import (
	"encoding/json"
)

// MessageType discriminates the envelope payload.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeResign    MessageType = "resign"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope every websocket frame carries.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ErrorPayload is the body of MessageTypeError frames.
type ErrorPayload struct {
	Message string `json:"message"`
}

// NewErrorMessage wraps err in an error envelope. Marshalling a flat
// string payload cannot fail.
func NewErrorMessage(err error) Message {
	raw, _ := json.Marshal(ErrorPayload{Message: err.Error()})
	return Message{Type: MessageTypeError, Payload: raw}
}

// NewGameStateMessage marshals a state snapshot into its envelope.
func NewGameStateMessage(state any) (Message, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: MessageTypeGameState, Payload: raw}, nil
}
