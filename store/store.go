// Package store persists game snapshots as JSON files, one per game,
// keyed by a generated id.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"boardgame/game"
)

// FileStore keeps each saved game in <dir>/<id>.json.
type FileStore struct {
	dir string
}

// New creates the store directory if needed.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save serializes g under a fresh uuid and returns the id.
func (s *FileStore) Save(g *game.Game) (string, error) {
	data, err := g.Save()
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	if err := os.WriteFile(s.path(id), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot %s: %w", id, err)
	}
	return id, nil
}

// Load reads and validates the snapshot with the given id. A missing id is
// an error; a snapshot that fails validation surfaces game.ErrCorruptState
// and installs nothing.
func (s *FileStore) Load(id string) (*game.Game, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", id, err)
	}
	return game.Load(data)
}

// List returns the ids of every stored snapshot.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list store directory: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}

// Delete removes the snapshot with the given id.
func (s *FileStore) Delete(id string) error {
	if err := os.Remove(s.path(id)); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", id, err)
	}
	return nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}
