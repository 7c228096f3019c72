package game

import (
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/premkumardevadason/chess-go/internal/ws"
)

// connRegistry tracks the websocket connections subscribed to one
// game. It has its own lock so broadcasts never contend with the game
// mutex.
type connRegistry struct {
	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

func newConnRegistry() connRegistry {
	return connRegistry{conns: make(map[string]*websocket.Conn)}
}

// RegisterConnection subscribes a client to state broadcasts. A second
// connection for the same player supersedes the first, which covers
// page reloads and reconnects.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) {
	g.conns.mu.Lock()
	if old, ok := g.conns.conns[playerID]; ok && old != conn {
		old.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "superseded by a new connection"))
		old.Close()
	}
	g.conns.conns[playerID] = conn
	g.conns.mu.Unlock()

	g.log.Debug().Str("player", playerID).Msg("connection registered")
	g.Broadcast()
}

// UnregisterConnection drops a client. The conn argument guards
// against a stale handler unregistering its successor; nil skips the
// identity check.
func (g *Game) UnregisterConnection(playerID string, conn *websocket.Conn) {
	g.conns.mu.Lock()
	if cur, ok := g.conns.conns[playerID]; ok && (conn == nil || cur == conn) {
		delete(g.conns.conns, playerID)
	}
	g.conns.mu.Unlock()
	g.log.Debug().Str("player", playerID).Msg("connection unregistered")
}

// Broadcast pushes the current state to every subscribed connection.
// Writes happen under the registry lock so frames from concurrent
// commits cannot interleave on one socket; sockets that fail to take
// the write are pruned in the same pass.
func (g *Game) Broadcast() {
	msg, err := ws.NewGameStateMessage(g.State())
	if err != nil {
		g.log.Error().Err(err).Msg("marshal game state")
		return
	}

	g.conns.mu.Lock()
	defer g.conns.mu.Unlock()
	var dead []string
	for id, conn := range g.conns.conns {
		if err := conn.WriteJSON(msg); err != nil {
			g.log.Warn().Str("player", id).Err(err).Msg("dropping dead connection")
			dead = append(dead, id)
		}
	}
	for _, id := range dead {
		if c := g.conns.conns[id]; c != nil {
			c.Close()
		}
		delete(g.conns.conns, id)
	}
}
