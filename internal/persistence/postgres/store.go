package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/tindwyr/crafthall/internal/persistence"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store keeps the snapshot in a single-row game_saves table as a JSONB blob
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a postgres-backed snapshot store and runs migrations
func NewStore(ctx context.Context, db *pgxpool.Pool) (*Store, error) {
	if err := migrate(db); err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgPingFailed, err)
	}
	return &Store{db: db}, nil
}

func migrate(db *pgxpool.Pool) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrateFailed, err)
	}

	sqlDB := stdlib.OpenDBFromPool(db)
	defer sqlDB.Close()

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrateFailed, err)
	}
	return nil
}

// Save upserts the snapshot row
func (s *Store) Save(ctx context.Context, data []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO game_saves (save_id, snapshot, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (save_id) DO UPDATE
		SET snapshot = EXCLUDED.snapshot, updated_at = NOW()`,
		defaultSaveID, data)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveFailed, err)
	}
	return nil
}

// Load reads the snapshot row
func (s *Store) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(ctx,
		`SELECT snapshot FROM game_saves WHERE save_id = $1`, defaultSaveID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, persistence.ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadFailed, err)
	}
	return data, nil
}
