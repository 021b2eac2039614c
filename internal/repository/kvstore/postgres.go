package kvstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key   TEXT PRIMARY KEY,
	value JSONB NOT NULL
)`

type postgresStore struct {
	db *sqlx.DB
}

// NewDB connects to postgres and ensures the kv_store table exists.
func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure kv_store table: %w", err)
	}

	return db, nil
}

// NewPostgresStore wraps an open connection as a Store.
func NewPostgresStore(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Get(ctx context.Context, key string) (model.Record, error) {
	var raw []byte
	query := `SELECT value FROM kv_store WHERE key = $1`
	if err := s.db.GetContext(ctx, &raw, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	var rec model.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode value for key %s: %w", key, err)
	}
	return rec, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value model.Record) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %s: %w", key, err)
	}

	query := `
		INSERT INTO kv_store (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := s.db.ExecContext(ctx, query, key, raw); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_store WHERE key = $1`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *postgresStore) GetByPrefix(ctx context.Context, prefix string) ([]model.Record, error) {
	var raws [][]byte
	// LIKE with an escaped prefix; prefixes are fixed namespace constants
	// so the only metacharacter risk is the underscore.
	query := `SELECT value FROM kv_store WHERE key LIKE $1 || '%'`
	if err := s.db.SelectContext(ctx, &raws, query, escapeLike(prefix)); err != nil {
		return nil, fmt.Errorf("failed to scan prefix %s: %w", prefix, err)
	}

	records := make([]model.Record, 0, len(raws))
	for _, raw := range raws {
		var rec model.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode value under prefix %s: %w", prefix, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
