package server

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/al63/everdell/internal/game"
)

// client is one websocket subscription: a viewer watching a single game.
// Snapshots are rendered per viewer, so the secret rides along.
type client struct {
	conn         *websocket.Conn
	send         chan []byte
	gameID       string
	viewerSecret string
}

// hub tracks websocket subscriptions and fans per-viewer snapshots out to
// every client watching a game.
type hub struct {
	logger     *zap.Logger
	manager    *game.Manager
	register   chan *client
	unregister chan *client

	mu      sync.RWMutex
	clients map[*client]bool
}

func newHub(manager *game.Manager, logger *zap.Logger) *hub {
	return &hub{
		logger:     logger,
		manager:    manager,
		register:   make(chan *client),
		unregister: make(chan *client),
		clients:    make(map[*client]bool),
	}
}

func (h *hub) run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
			h.logger.Debug("websocket client registered", zap.String("game_id", c.gameID))

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.logger.Debug("websocket client unregistered", zap.String("game_id", c.gameID))
		}
	}
}

// broadcastGame pushes a fresh per-viewer snapshot to every client watching
// the game.
func (h *hub) broadcastGame(g *game.Game) {
	h.mu.RLock()
	var watchers []*client
	for c := range h.clients {
		if c.gameID == g.GameID {
			watchers = append(watchers, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range watchers {
		snapshot, err := game.MarshalSnapshot(g, c.viewerSecret)
		if err != nil {
			h.logger.Error("marshal snapshot", zap.String("game_id", g.GameID), zap.Error(err))
			continue
		}
		select {
		case c.send <- snapshot:
		default:
			// Slow consumer; drop the update rather than block the game.
		}
	}
}

func (c *client) readPump(h *hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	// Viewers are read-only over the socket; inputs arrive over HTTP.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
