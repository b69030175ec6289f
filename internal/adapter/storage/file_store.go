// Package storage provides the durable session stores.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/port"
)

// FileStore keeps the session as a JSON file on disk. Writes go through a
// temp file and rename so a crash never leaves a half-written session.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) port.SessionStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("FileStore.Load: failed to read %s: %w", s.path, err)
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("FileStore.Load: corrupt session file %s: %w", s.path, err)
	}
	return &session, nil
}

func (s *FileStore) Save(_ context.Context, session *entity.Session) error {
	if session == nil {
		return fmt.Errorf("FileStore.Save: %w: nil session", entity.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("FileStore.Save: failed to create session dir: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("FileStore.Save: failed to marshal session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("FileStore.Save: failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("FileStore.Save: failed to replace %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("FileStore.Clear: failed to remove %s: %w", s.path, err)
	}
	return nil
}
