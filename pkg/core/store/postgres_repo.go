package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"financial_planner/pkg/core/assumption"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS financial_inputs (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	inputs_json JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_financial_inputs_created ON financial_inputs(created_at);
`

// PostgresRepo stores assumption sets as JSONB rows.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresRepo creates the repository and makes sure its table exists.
func NewPostgresRepo(ctx context.Context, pool *pgxpool.Pool) (*PostgresRepo, error) {
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &PostgresRepo{pool: pool}, nil
}

func (r *PostgresRepo) Driver() string { return DriverPostgres }

// Save upserts the set by id.
func (r *PostgresRepo) Save(ctx context.Context, a assumption.AssumptionSet) error {
	jsonData, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal assumptions: %w", err)
	}

	query := `
		INSERT INTO financial_inputs (id, name, inputs_json, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			inputs_json = EXCLUDED.inputs_json,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.pool.Exec(ctx, query, a.ID, a.Name, jsonData, a.CreatedAt, a.UpdatedAt); err != nil {
		return fmt.Errorf("failed to save assumptions: %w", err)
	}
	return nil
}

// Get loads one set by id.
func (r *PostgresRepo) Get(ctx context.Context, id string) (assumption.AssumptionSet, error) {
	var jsonData []byte
	err := r.pool.QueryRow(ctx, `SELECT inputs_json FROM financial_inputs WHERE id = $1`, id).Scan(&jsonData)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assumption.AssumptionSet{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return assumption.AssumptionSet{}, fmt.Errorf("failed to load assumptions: %w", err)
	}

	var a assumption.AssumptionSet
	if err := json.Unmarshal(jsonData, &a); err != nil {
		return assumption.AssumptionSet{}, fmt.Errorf("failed to unmarshal assumptions: %w", err)
	}
	return a, nil
}

// List returns up to limit sets, oldest first.
func (r *PostgresRepo) List(ctx context.Context, limit int) ([]assumption.AssumptionSet, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT inputs_json FROM financial_inputs ORDER BY created_at, id LIMIT $1`, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list assumptions: %w", err)
	}
	defer rows.Close()

	var sets []assumption.AssumptionSet
	for rows.Next() {
		var jsonData []byte
		if err := rows.Scan(&jsonData); err != nil {
			return nil, fmt.Errorf("failed to scan assumptions: %w", err)
		}
		var a assumption.AssumptionSet
		if err := json.Unmarshal(jsonData, &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assumptions: %w", err)
		}
		sets = append(sets, a)
	}
	return sets, rows.Err()
}

// Close releases the shared pool.
func (r *PostgresRepo) Close() error {
	Close()
	return nil
}
