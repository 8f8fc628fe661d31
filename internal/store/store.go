// Package store persists analyzed component models in Postgres for the
// API. The engine itself never writes; this is pipeline periphery.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UILens-hq/uilens/pkg/model"
)

// Store provides database operations over a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect opens a pool, verifies connectivity and ensures the schema.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Ping verifies database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS component_models (
		id UUID PRIMARY KEY,
		file_path TEXT NOT NULL,
		class_name TEXT NOT NULL,
		tag_name TEXT NOT NULL,
		model_data JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_component_models_tag_name ON component_models(tag_name);
	`
	_, err := s.pool.Exec(ctx, schema)
	return err
}

// ComponentRecord is one stored component model.
type ComponentRecord struct {
	ID        uuid.UUID       `json:"id"`
	FilePath  string          `json:"file_path"`
	ClassName string          `json:"class_name"`
	TagName   string          `json:"tag_name"`
	ModelData json.RawMessage `json:"model_data"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveComponent persists an analyzed model.
func (s *Store) SaveComponent(ctx context.Context, m *model.ComponentModel) (*ComponentRecord, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model: %w", err)
	}

	rec := &ComponentRecord{
		ID:        uuid.New(),
		FilePath:  m.FilePath,
		ClassName: m.ClassName,
		TagName:   m.TagName,
		ModelData: data,
		CreatedAt: time.Now(),
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO component_models (id, file_path, class_name, tag_name, model_data, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.FilePath, rec.ClassName, rec.TagName, rec.ModelData, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert component: %w", err)
	}
	return rec, nil
}

// ListComponents returns the stored models, newest first.
func (s *Store) ListComponents(ctx context.Context, limit int) ([]ComponentRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, file_path, class_name, tag_name, model_data, created_at
		 FROM component_models ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}
	defer rows.Close()

	var records []ComponentRecord
	for rows.Next() {
		var rec ComponentRecord
		if err := rows.Scan(&rec.ID, &rec.FilePath, &rec.ClassName, &rec.TagName, &rec.ModelData, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan component: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetByTag returns the most recent model registered under a tag name.
func (s *Store) GetByTag(ctx context.Context, tag string) (*ComponentRecord, error) {
	var rec ComponentRecord
	err := s.pool.QueryRow(ctx,
		`SELECT id, file_path, class_name, tag_name, model_data, created_at
		 FROM component_models WHERE tag_name = $1 ORDER BY created_at DESC LIMIT 1`, tag).
		Scan(&rec.ID, &rec.FilePath, &rec.ClassName, &rec.TagName, &rec.ModelData, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("component not found for tag %s: %w", tag, err)
	}
	return &rec, nil
}
