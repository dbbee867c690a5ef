package game

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GameOptions are per-game settings chosen at creation time.
type GameOptions struct {
	// RealtimePoints exposes live scores in non-private snapshots.
	RealtimePoints bool `json:"realtimePoints"`
}

// Game pairs a GameState with its identity and settings. Access goes through
// the Manager, which applies one input at a time per game.
type Game struct {
	GameID  string
	Options GameOptions

	gameSecret string
	state      *GameState
	mu         sync.Mutex
}

// Secret returns the game's admin token.
func (g *Game) Secret() string {
	return g.gameSecret
}

// State returns the current snapshot. The returned state must be treated as
// read-only; mutations go through ApplyGameInput.
func (g *Game) State() *GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// GameJSON is the persisted form of a Game.
type GameJSON struct {
	GameID      string        `json:"gameId"`
	GameSecret  string        `json:"gameSecret,omitempty"`
	GameState   GameStateJSON `json:"gameState"`
	GameOptions GameOptions   `json:"gameOptions"`
}

// ToJSON serializes the game. Non-private snapshots omit the secret and all
// hidden information.
func (g *Game) ToJSON(includePrivate bool) GameJSON {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := GameJSON{
		GameID:      g.GameID,
		GameState:   g.state.ToJSON(includePrivate),
		GameOptions: g.Options,
	}
	if includePrivate {
		out.GameSecret = g.gameSecret
	}
	return out
}

// GameFromJSON rebuilds a game from a full-fidelity snapshot.
func GameFromJSON(j GameJSON) *Game {
	return &Game{
		GameID:     j.GameID,
		Options:    j.GameOptions,
		gameSecret: j.GameSecret,
		state:      GameStateFromJSON(j.GameState),
	}
}

// Store persists full-fidelity game snapshots keyed by game id.
type Store interface {
	SaveGame(ctx context.Context, g GameJSON) error
	LoadGame(ctx context.Context, gameID string) (GameJSON, error)
}

// GameNotification is pushed to the registered handler after every applied
// input so transports can fan fresh snapshots out to viewers.
type GameNotification struct {
	GameID         string    `json:"gameId"`
	GameStateID    int       `json:"gameStateId"`
	ActivePlayerID string    `json:"activePlayerId"`
	Timestamp      time.Time `json:"timestamp"`
}

// NotificationHandler receives game notifications.
type NotificationHandler func(notification GameNotification)

// Manager is the concurrency boundary around the engine: a registry of live
// games that applies one input at a time per game and persists the result.
type Manager struct {
	logger *zap.Logger
	store  Store

	mu                  sync.RWMutex
	games               map[string]*Game
	notificationHandler NotificationHandler
}

// NewManager creates a game registry. store may be nil for in-memory play.
func NewManager(logger *zap.Logger, store Store) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		logger: logger,
		store:  store,
		games:  make(map[string]*Game),
	}
}

// SetNotificationHandler registers the handler transports use to learn about
// applied inputs. The handler runs on its own goroutine and may safely call
// back into the manager.
func (m *Manager) SetNotificationHandler(handler NotificationHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notificationHandler = handler
}

func (m *Manager) emitNotification(n GameNotification) {
	m.mu.RLock()
	handler := m.notificationHandler
	m.mu.RUnlock()
	if handler != nil {
		go handler(n)
	}
}

// CreateGame builds a fresh game for the named players, registers it and
// persists the initial snapshot.
func (m *Manager) CreateGame(ctx context.Context, playerNames []string, opts GameOptions) (*Game, error) {
	players := make([]*Player, 0, len(playerNames))
	for _, name := range playerNames {
		players = append(players, NewPlayer(name))
	}
	gs, err := NewGameState(players, nil)
	if err != nil {
		return nil, err
	}
	game := &Game{
		GameID:     uuid.NewString(),
		Options:    opts,
		gameSecret: uuid.NewString(),
		state:      gs,
	}

	m.mu.Lock()
	m.games[game.GameID] = game
	m.mu.Unlock()

	if err := m.saveGame(ctx, game); err != nil {
		return nil, err
	}
	m.logger.Info("game created",
		zap.String("game_id", game.GameID),
		zap.Int("num_players", len(playerNames)))
	return game, nil
}

// GetGame returns a registered game, falling back to the store for games not
// yet loaded into this process.
func (m *Manager) GetGame(ctx context.Context, gameID string) (*Game, error) {
	m.mu.RLock()
	game, ok := m.games[gameID]
	m.mu.RUnlock()
	if ok {
		return game, nil
	}
	if m.store == nil {
		return nil, fmt.Errorf("%w: game %s not found", ErrInvalidInput, gameID)
	}
	j, err := m.store.LoadGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", gameID, err)
	}
	game = GameFromJSON(j)

	m.mu.Lock()
	// Another request may have loaded it while we read the store.
	if existing, ok := m.games[gameID]; ok {
		game = existing
	} else {
		m.games[gameID] = game
	}
	m.mu.Unlock()
	return game, nil
}

// ApplyGameInput validates that the secret belongs to the active player,
// applies the input, persists the new snapshot and notifies transports.
// Exactly one input is in flight per game at a time.
func (m *Manager) ApplyGameInput(ctx context.Context, gameID, playerSecret string, input *GameInput) (*Game, error) {
	game, err := m.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game.mu.Lock()
	p, ok := game.state.GetPlayerBySecret(playerSecret)
	if !ok {
		game.mu.Unlock()
		return nil, fmt.Errorf("%w: unrecognized player", ErrInvalidInput)
	}
	if p.PlayerID != game.state.ActivePlayerID {
		game.mu.Unlock()
		return nil, fmt.Errorf("%w: it is not %s's turn", ErrIllegalAction, p.Name)
	}
	next, err := game.state.Next(input)
	if err != nil {
		game.mu.Unlock()
		m.logger.Info("input rejected",
			zap.String("game_id", gameID),
			zap.String("input_type", string(input.InputType)),
			zap.Error(err))
		return nil, err
	}
	game.state = next
	stateID := next.GameStateID
	activeID := next.ActivePlayerID
	game.mu.Unlock()

	if err := m.saveGame(ctx, game); err != nil {
		return nil, err
	}
	m.logger.Info("input applied",
		zap.String("game_id", gameID),
		zap.String("input_type", string(input.InputType)),
		zap.Int("game_state_id", stateID))
	m.emitNotification(GameNotification{
		GameID:         gameID,
		GameStateID:    stateID,
		ActivePlayerID: activeID,
		Timestamp:      time.Now(),
	})
	return game, nil
}

func (m *Manager) saveGame(ctx context.Context, game *Game) error {
	if m.store == nil {
		return nil
	}
	if err := m.store.SaveGame(ctx, game.ToJSON(true)); err != nil {
		return fmt.Errorf("save game %s: %w", game.GameID, err)
	}
	return nil
}

// MarshalSnapshot renders the per-viewer JSON sent over the wire: private
// for the requesting player's own seat, public otherwise. Possible inputs
// are included only for the active player.
func MarshalSnapshot(game *Game, viewerSecret string) ([]byte, error) {
	game.mu.Lock()
	gs := game.state
	viewer, known := gs.GetPlayerBySecret(viewerSecret)
	view := struct {
		GameID      string        `json:"gameId"`
		GameState   GameStateJSON `json:"gameState"`
		GameOptions GameOptions   `json:"gameOptions"`
		ViewerID    string        `json:"viewerId,omitempty"`
		Hand        []CardName    `json:"hand,omitempty"`
		Inputs      []*GameInput  `json:"possibleGameInputs,omitempty"`
	}{
		GameID:      game.GameID,
		GameState:   gs.ToJSON(false),
		GameOptions: game.Options,
	}
	if known {
		view.ViewerID = viewer.PlayerID
		view.Hand = append([]CardName{}, viewer.CardsInHand...)
		if viewer.PlayerID == gs.ActivePlayerID {
			view.Inputs = gs.GetPossibleGameInputs()
		}
	}
	game.mu.Unlock()
	return json.Marshal(view)
}
