package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/al63/everdell/internal/config"
	"github.com/al63/everdell/internal/game"
)

// ErrNotFound is returned when no game exists for the requested id.
var ErrNotFound = errors.New("game not found")

// NewPool connects a pgx connection pool per the database config.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("database connection pool initialized",
		zap.Int32("max_conns", poolCfg.MaxConns))
	return pool, nil
}

// GameStore persists full-fidelity game snapshots in a games table keyed by
// game id. It implements game.Store.
type GameStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewGameStore wraps a connection pool.
func NewGameStore(pool *pgxpool.Pool, logger *zap.Logger) *GameStore {
	return &GameStore{pool: pool, logger: logger}
}

// Migrate creates the games table if it does not exist yet.
func (s *GameStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS games (
			id         TEXT PRIMARY KEY,
			secret     TEXT NOT NULL,
			state      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("migrate games table: %w", err)
	}
	return nil
}

// SaveGame upserts the snapshot for a game.
func (s *GameStore) SaveGame(ctx context.Context, g game.GameJSON) error {
	state, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal game %s: %w", g.GameID, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO games (id, secret, state, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE SET state = $3, updated_at = now()`,
		g.GameID, g.GameSecret, state)
	if err != nil {
		return fmt.Errorf("save game %s: %w", g.GameID, err)
	}
	return nil
}

// LoadGame fetches the snapshot for a game.
func (s *GameStore) LoadGame(ctx context.Context, gameID string) (game.GameJSON, error) {
	var state []byte
	err := s.pool.QueryRow(ctx,
		`SELECT state FROM games WHERE id = $1`, gameID).Scan(&state)
	if errors.Is(err, pgx.ErrNoRows) {
		return game.GameJSON{}, fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	if err != nil {
		return game.GameJSON{}, fmt.Errorf("load game %s: %w", gameID, err)
	}
	var out game.GameJSON
	if err := json.Unmarshal(state, &out); err != nil {
		return game.GameJSON{}, fmt.Errorf("unmarshal game %s: %w", gameID, err)
	}
	return out, nil
}
