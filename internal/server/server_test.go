package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/al63/everdell/internal/config"
	"github.com/al63/everdell/internal/game"
)

func newTestServer(t *testing.T) (*httptest.Server, *game.Manager) {
	t.Helper()
	manager := game.NewManager(zap.NewNop(), nil)
	s := New(config.ServerConfig{Address: ":0"}, manager, zap.NewNop())
	ts := httptest.NewServer(s.http.Handler)
	t.Cleanup(ts.Close)
	return ts, manager
}

func createTestGame(t *testing.T, ts *httptest.Server) createGameResponse {
	t.Helper()
	body := bytes.NewBufferString(`{"playerNames":["alice","bob"]}`)
	resp, err := http.Post(ts.URL+"/api/games", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created createGameResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created
}

func TestCreateGameEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)
	created := createTestGame(t, ts)

	assert.NotEmpty(t, created.GameID)
	assert.NotEmpty(t, created.GameSecret)
	require.Len(t, created.Players, 2)
	for _, p := range created.Players {
		assert.NotEmpty(t, p.PlayerID)
		assert.NotEmpty(t, p.PlayerSecret)
	}
	assert.Equal(t, "alice", created.Players[0].Name)
}

func TestCreateGameRejectsBadBody(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/games", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/api/games", "application/json",
		bytes.NewBufferString(`{"playerNames":["solo"]}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetGameSnapshot(t *testing.T) {
	ts, _ := newTestServer(t)
	created := createTestGame(t, ts)

	resp, err := http.Get(ts.URL + "/api/games/" + created.GameID + "?secret=" + created.Players[0].PlayerSecret)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view struct {
		GameID    string          `json:"gameId"`
		ViewerID  string          `json:"viewerId"`
		Hand      []game.CardName `json:"hand"`
		GameState struct {
			MeadowCards []game.CardName `json:"meadowCards"`
		} `json:"gameState"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, created.GameID, view.GameID)
	assert.Equal(t, created.Players[0].PlayerID, view.ViewerID)
	assert.Len(t, view.Hand, 5)
	assert.Len(t, view.GameState.MeadowCards, game.MeadowSize)
}

func TestGetGameNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/games/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitInputEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)
	created := createTestGame(t, ts)

	submit := func(secret string, input map[string]any) *http.Response {
		payload, err := json.Marshal(map[string]any{
			"playerSecret": secret,
			"input":        input,
		})
		require.NoError(t, err)
		resp, err := http.Post(ts.URL+"/api/games/"+created.GameID+"/inputs",
			"application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		return resp
	}

	place := map[string]any{"inputType": "PLACE_WORKER", "location": "BASIC_ONE_BERRY"}

	// Out-of-turn inputs conflict.
	resp := submit(created.Players[1].PlayerSecret, place)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = submit(created.Players[0].PlayerSecret, place)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view struct {
		GameState struct {
			GameStateID    int    `json:"gameStateId"`
			ActivePlayerID string `json:"activePlayerId"`
		} `json:"gameState"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	resp.Body.Close()
	assert.Equal(t, 1, view.GameState.GameStateID)
	assert.Equal(t, created.Players[1].PlayerID, view.GameState.ActivePlayerID)

	// Replays of the same placement are fine on an unlimited spot, but a
	// bogus location is a bad request.
	resp = submit(created.Players[1].PlayerSecret, map[string]any{
		"inputType": "PLACE_WORKER", "location": "NOWHERE",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
