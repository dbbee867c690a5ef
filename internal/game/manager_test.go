package game

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStore is an in-process Store for tests.
type memoryStore struct {
	mu    sync.Mutex
	games map[string]GameJSON
}

func newMemoryStore() *memoryStore {
	return &memoryStore{games: map[string]GameJSON{}}
}

func (s *memoryStore) SaveGame(ctx context.Context, g GameJSON) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.GameID] = g
	return nil
}

func (s *memoryStore) LoadGame(ctx context.Context, gameID string) (GameJSON, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[gameID]
	if !ok {
		return GameJSON{}, ErrInvalidInput
	}
	return g, nil
}

func TestManagerCreateGame(t *testing.T) {
	m := NewManager(zap.NewNop(), nil)
	g, err := m.CreateGame(context.Background(), []string{"alice", "bob"}, GameOptions{})
	require.NoError(t, err)

	assert.NotEmpty(t, g.GameID)
	assert.NotEmpty(t, g.Secret())
	assert.Len(t, g.State().Players, 2)

	loaded, err := m.GetGame(context.Background(), g.GameID)
	require.NoError(t, err)
	assert.Same(t, g, loaded)
}

func TestManagerCreateGameTooFewPlayers(t *testing.T) {
	m := NewManager(zap.NewNop(), nil)
	_, err := m.CreateGame(context.Background(), []string{"solo"}, GameOptions{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestManagerGetGameUnknown(t *testing.T) {
	m := NewManager(zap.NewNop(), nil)
	_, err := m.GetGame(context.Background(), "missing")
	assert.Error(t, err)
}

func TestManagerApplyGameInput(t *testing.T) {
	m := NewManager(zap.NewNop(), nil)
	g, err := m.CreateGame(context.Background(), []string{"alice", "bob"}, GameOptions{})
	require.NoError(t, err)

	state := g.State()
	active, err := state.GetPlayer(state.ActivePlayerID)
	require.NoError(t, err)
	var other *Player
	for _, p := range state.Players {
		if p.PlayerID != active.PlayerID {
			other = p
		}
	}

	input := &GameInput{InputType: InputPlaceWorker, Location: LocationBasicOneBerry}

	_, err = m.ApplyGameInput(context.Background(), g.GameID, "not-a-secret", input)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.ApplyGameInput(context.Background(), g.GameID, other.Secret(), input)
	assert.ErrorIs(t, err, ErrIllegalAction, "only the active player may act")

	updated, err := m.ApplyGameInput(context.Background(), g.GameID, active.Secret(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.State().GameStateID)
	assert.Equal(t, other.PlayerID, updated.State().ActivePlayerID)
}

func TestManagerNotifiesOnInput(t *testing.T) {
	m := NewManager(zap.NewNop(), nil)
	g, err := m.CreateGame(context.Background(), []string{"alice", "bob"}, GameOptions{})
	require.NoError(t, err)

	got := make(chan GameNotification, 1)
	m.SetNotificationHandler(func(n GameNotification) { got <- n })

	state := g.State()
	active, err := state.GetPlayer(state.ActivePlayerID)
	require.NoError(t, err)
	_, err = m.ApplyGameInput(context.Background(), g.GameID, active.Secret(),
		&GameInput{InputType: InputPlaceWorker, Location: LocationBasicOneBerry})
	require.NoError(t, err)

	n := <-got
	assert.Equal(t, g.GameID, n.GameID)
	assert.Equal(t, 1, n.GameStateID)
}

func TestManagerPersistsAndReloads(t *testing.T) {
	store := newMemoryStore()
	m := NewManager(zap.NewNop(), store)
	g, err := m.CreateGame(context.Background(), []string{"alice", "bob"}, GameOptions{})
	require.NoError(t, err)

	// A second manager over the same store sees the game.
	m2 := NewManager(zap.NewNop(), store)
	loaded, err := m2.GetGame(context.Background(), g.GameID)
	require.NoError(t, err)
	assert.Equal(t, g.GameID, loaded.GameID)
	assert.Equal(t, g.Secret(), loaded.Secret())
	assert.Len(t, loaded.State().Players, 2)
	assert.Equal(t, g.State().ActivePlayerID, loaded.State().ActivePlayerID)
}

func TestMarshalSnapshotPerViewer(t *testing.T) {
	m := NewManager(zap.NewNop(), nil)
	g, err := m.CreateGame(context.Background(), []string{"alice", "bob"}, GameOptions{})
	require.NoError(t, err)

	state := g.State()
	active, err := state.GetPlayer(state.ActivePlayerID)
	require.NoError(t, err)

	raw, err := MarshalSnapshot(g, active.Secret())
	require.NoError(t, err)
	var view struct {
		GameID    string       `json:"gameId"`
		ViewerID  string       `json:"viewerId"`
		Hand      []CardName   `json:"hand"`
		Inputs    []*GameInput `json:"possibleGameInputs"`
		GameState struct {
			Players []struct {
				CardsInHand    []CardName `json:"cardsInHand"`
				NumCardsInHand int        `json:"numCardsInHand"`
				PlayerSecret   string     `json:"playerSecret"`
			} `json:"players"`
		} `json:"gameState"`
	}
	require.NoError(t, json.Unmarshal(raw, &view))

	assert.Equal(t, g.GameID, view.GameID)
	assert.Equal(t, active.PlayerID, view.ViewerID)
	assert.Len(t, view.Hand, 5)
	assert.NotEmpty(t, view.Inputs, "the active player sees their legal moves")
	for _, p := range view.GameState.Players {
		assert.Empty(t, p.CardsInHand, "snapshots never leak hands")
		assert.Empty(t, p.PlayerSecret)
		assert.NotZero(t, p.NumCardsInHand)
	}

	// A spectator gets neither a seat nor moves.
	raw, err = MarshalSnapshot(g, "")
	require.NoError(t, err)
	var spec struct {
		ViewerID string       `json:"viewerId"`
		Hand     []CardName   `json:"hand"`
		Inputs   []*GameInput `json:"possibleGameInputs"`
	}
	require.NoError(t, json.Unmarshal(raw, &spec))
	assert.Empty(t, spec.ViewerID)
	assert.Empty(t, spec.Hand)
	assert.Empty(t, spec.Inputs)
}
