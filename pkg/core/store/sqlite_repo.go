package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"financial_planner/pkg/core/assumption"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Fixed width so created_at sorts lexically.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteRepo stores assumption sets in a local SQLite database.
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo opens or creates the database at dbPath.
func NewSQLiteRepo(dbPath string) (*SQLiteRepo, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

func (r *SQLiteRepo) Driver() string { return DriverSQLite }

// Close closes the database.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// Save upserts the set by id.
func (r *SQLiteRepo) Save(ctx context.Context, a assumption.AssumptionSet) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshaling assumptions: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO financial_inputs (id, name, inputs_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			inputs_json = excluded.inputs_json,
			updated_at = excluded.updated_at`,
		a.ID, a.Name, string(data),
		a.CreatedAt.UTC().Format(sqliteTimeLayout),
		a.UpdatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("saving assumptions: %w", err)
	}
	return nil
}

// Get loads one set by id.
func (r *SQLiteRepo) Get(ctx context.Context, id string) (assumption.AssumptionSet, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT inputs_json FROM financial_inputs WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return assumption.AssumptionSet{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return assumption.AssumptionSet{}, fmt.Errorf("loading assumptions: %w", err)
	}

	var a assumption.AssumptionSet
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return assumption.AssumptionSet{}, fmt.Errorf("decoding assumptions: %w", err)
	}
	return a, nil
}

// List returns up to limit sets, oldest first.
func (r *SQLiteRepo) List(ctx context.Context, limit int) ([]assumption.AssumptionSet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT inputs_json FROM financial_inputs ORDER BY created_at, id LIMIT ?`, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing assumptions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sets []assumption.AssumptionSet
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var a assumption.AssumptionSet
		if err := json.Unmarshal([]byte(data), &a); err != nil {
			return nil, fmt.Errorf("decoding assumptions: %w", err)
		}
		sets = append(sets, a)
	}
	return sets, rows.Err()
}
