// Package store persists named assumption sets. Three backends share one
// interface: Postgres (pgx), a local SQLite file, and plain JSON files.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"financial_planner/pkg/core/assumption"

	"k8s.io/klog/v2"
)

// ErrNotFound is returned by Get when no set has the requested id.
var ErrNotFound = errors.New("assumption set not found")

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 100

// AssumptionRepository stores assumption sets by id.
type AssumptionRepository interface {
	// Save inserts or replaces the set with a.ID.
	Save(ctx context.Context, a assumption.AssumptionSet) error
	// Get returns ErrNotFound (wrapped) when id is unknown.
	Get(ctx context.Context, id string) (assumption.AssumptionSet, error)
	// List returns up to limit sets, oldest first.
	List(ctx context.Context, limit int) ([]assumption.AssumptionSet, error)
	// Close releases the backend.
	Close() error
	// Driver names the backend ("postgres", "sqlite", "file").
	Driver() string
}

// Driver names.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverFile     = "file"
)

// Config selects and configures a backend.
type Config struct {
	Driver      string `yaml:"driver"`
	DatabaseURL string `yaml:"database_url"`
	SQLitePath  string `yaml:"sqlite_path"`
	FileDir     string `yaml:"file_dir"`
	ListLimit   int    `yaml:"list_limit"`
}

// Open creates the configured repository. When the database backend cannot
// be opened it logs a warning and falls back to the file store, so the
// service still runs on a laptop without a database.
func Open(ctx context.Context, cfg Config) (AssumptionRepository, error) {
	var (
		repo AssumptionRepository
		err  error
	)

	switch cfg.Driver {
	case DriverPostgres:
		if err = InitDB(ctx, cfg.DatabaseURL); err == nil {
			repo, err = NewPostgresRepo(ctx, GetPool())
		}
	case DriverSQLite, "":
		path := cfg.SQLitePath
		if path == "" {
			path = filepath.Join(".data", "planner.db")
		}
		repo, err = NewSQLiteRepo(path)
	case DriverFile:
		return NewFileRepo(cfg.FileDir)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	if err != nil {
		klog.Warningf("[STORE] %s backend unavailable (%v); falling back to file store", cfg.Driver, err)
		return NewFileRepo(cfg.FileDir)
	}
	klog.Infof("[STORE] using %s backend", repo.Driver())
	return repo, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

// sortOldestFirst orders sets by creation time, then id for stable output.
func sortOldestFirst(sets []assumption.AssumptionSet) {
	sort.SliceStable(sets, func(i, j int) bool {
		if sets[i].CreatedAt.Equal(sets[j].CreatedAt) {
			return sets[i].ID < sets[j].ID
		}
		return sets[i].CreatedAt.Before(sets[j].CreatedAt)
	})
}
