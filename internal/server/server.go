package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/al63/everdell/internal/config"
	"github.com/al63/everdell/internal/game"
	"github.com/al63/everdell/internal/repository"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server is the HTTP and websocket boundary: REST endpoints translate
// requests into GameInputs for the Manager, and a websocket per game pushes
// fresh per-viewer snapshots after every applied input.
type Server struct {
	logger  *zap.Logger
	manager *game.Manager
	hub     *hub
	http    *http.Server
}

// New wires the routes and subscribes the hub to the manager's
// notifications.
func New(cfg config.ServerConfig, manager *game.Manager, logger *zap.Logger) *Server {
	s := &Server{
		logger:  logger,
		manager: manager,
		hub:     newHub(manager, logger),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/games", s.handleCreateGame)
	mux.HandleFunc("GET /api/games/{id}", s.handleGetGame)
	mux.HandleFunc("POST /api/games/{id}/inputs", s.handleSubmitInput)
	mux.HandleFunc("GET /ws/games/{id}", s.handleWS)

	s.http = &http.Server{Addr: cfg.Address, Handler: mux}

	manager.SetNotificationHandler(func(n game.GameNotification) {
		g, err := manager.GetGame(context.Background(), n.GameID)
		if err != nil {
			logger.Error("notification for unknown game", zap.String("game_id", n.GameID), zap.Error(err))
			return
		}
		s.hub.broadcastGame(g)
	})
	return s
}

// ListenAndServe starts the hub and blocks serving HTTP.
func (s *Server) ListenAndServe() error {
	go s.hub.run()
	s.logger.Info("http server listening", zap.String("address", s.http.Addr))
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

type createGameRequest struct {
	PlayerNames    []string `json:"playerNames"`
	RealtimePoints bool     `json:"realtimePoints"`
}

type createGamePlayer struct {
	PlayerID     string `json:"playerId"`
	Name         string `json:"name"`
	PlayerSecret string `json:"playerSecret"`
}

type createGameResponse struct {
	GameID     string             `json:"gameId"`
	GameSecret string             `json:"gameSecret"`
	Players    []createGamePlayer `json:"players"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	g, err := s.manager.CreateGame(r.Context(), req.PlayerNames, game.GameOptions{
		RealtimePoints: req.RealtimePoints,
	})
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	resp := createGameResponse{GameID: g.GameID, GameSecret: g.Secret()}
	for _, p := range g.State().Players {
		resp.Players = append(resp.Players, createGamePlayer{
			PlayerID:     p.PlayerID,
			Name:         p.Name,
			PlayerSecret: p.Secret(),
		})
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.manager.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	snapshot, err := game.MarshalSnapshot(g, r.URL.Query().Get("secret"))
	if err != nil {
		httpError(w, http.StatusInternalServerError, "unable to render snapshot")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(snapshot)
}

type submitInputRequest struct {
	PlayerSecret string          `json:"playerSecret"`
	Input        *game.GameInput `json:"input"`
}

func (s *Server) handleSubmitInput(w http.ResponseWriter, r *http.Request) {
	var req submitInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Input == nil {
		httpError(w, http.StatusBadRequest, "missing input")
		return
	}
	g, err := s.manager.ApplyGameInput(r.Context(), r.PathValue("id"), req.PlayerSecret, req.Input)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	snapshot, err := game.MarshalSnapshot(g, req.PlayerSecret)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "unable to render snapshot")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(snapshot)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	if _, err := s.manager.GetGame(r.Context(), gameID); err != nil {
		s.writeEngineError(w, err)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	c := &client{
		conn:         conn,
		send:         make(chan []byte, 16),
		gameID:       gameID,
		viewerSecret: r.URL.Query().Get("secret"),
	}
	s.hub.register <- c
	go c.writePump()
	go c.readPump(s.hub)

	// Seed the subscription with the current snapshot.
	if g, err := s.manager.GetGame(context.Background(), gameID); err == nil {
		if snapshot, err := game.MarshalSnapshot(g, c.viewerSecret); err == nil {
			c.send <- snapshot
		}
	}
}

func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		httpError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrInvalidInput), errors.Is(err, game.ErrOverpay):
		httpError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, game.ErrIllegalAction):
		httpError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error("request failed", zap.Error(err))
		httpError(w, http.StatusInternalServerError, "internal error")
	}
}

func httpError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
