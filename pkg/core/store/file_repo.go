package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"financial_planner/pkg/core/assumption"
)

// FileRepo keeps one JSON document per assumption set in a directory.
type FileRepo struct {
	mu  sync.RWMutex
	dir string
}

// NewFileRepo creates the repository, defaulting dir to .data/inputs.
func NewFileRepo(dir string) (*FileRepo, error) {
	if dir == "" {
		dir = filepath.Join(".data", "inputs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}
	return &FileRepo{dir: dir}, nil
}

func (r *FileRepo) Driver() string { return DriverFile }

func (r *FileRepo) Close() error { return nil }

func (r *FileRepo) path(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("invalid id %q", id)
	}
	return filepath.Join(r.dir, id+".json"), nil
}

// Save writes the set to <dir>/<id>.json, replacing any earlier version.
func (r *FileRepo) Save(_ context.Context, a assumption.AssumptionSet) error {
	path, err := r.path(a.ID)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal assumptions: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write assumptions: %w", err)
	}
	return os.Rename(tmp, path)
}

// Get reads one set by id.
func (r *FileRepo) Get(_ context.Context, id string) (assumption.AssumptionSet, error) {
	path, err := r.path(id)
	if err != nil {
		return assumption.AssumptionSet{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	r.mu.RLock()
	data, err := os.ReadFile(path)
	r.mu.RUnlock()
	if errors.Is(err, os.ErrNotExist) {
		return assumption.AssumptionSet{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return assumption.AssumptionSet{}, fmt.Errorf("failed to read assumptions: %w", err)
	}

	var a assumption.AssumptionSet
	if err := json.Unmarshal(data, &a); err != nil {
		return assumption.AssumptionSet{}, fmt.Errorf("failed to unmarshal assumptions: %w", err)
	}
	return a, nil
}

// List returns up to limit sets, oldest first. Unreadable files are skipped.
func (r *FileRepo) List(_ context.Context, limit int) ([]assumption.AssumptionSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read store dir: %w", err)
	}

	var sets []assumption.AssumptionSet
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(r.dir, e.Name()))
		if err != nil {
			continue
		}
		var a assumption.AssumptionSet
		if err := json.Unmarshal(data, &a); err != nil {
			continue
		}
		sets = append(sets, a)
	}

	sortOldestFirst(sets)
	if n := normalizeLimit(limit); len(sets) > n {
		sets = sets[:n]
	}
	return sets, nil
}
