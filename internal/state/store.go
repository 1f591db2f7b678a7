// Package state provides the durable client-side key-value store that
// survives between invocations, the terminal equivalent of the browser's
// localStorage. Each key maps to one file under the state directory and
// every write replaces the previous value wholesale.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// Well-known keys. The names match the ones the web client used in
// localStorage so a reader of the backend logs sees familiar identifiers.
const (
	TokenKey   = "access_token"
	SessionKey = "auth-storage"
	CartKey    = "cart-storage"
)

// Store persists values on the local filesystem, one file per key.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at baseDir.
// If baseDir is empty, uses ~/.tienda/
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".tienda")
	}

	// Create directory with 0700 permissions
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	log.Debug().Str("baseDir", baseDir).Msg("state store initialized")

	return &Store{baseDir: baseDir}, nil
}

// Get returns the stored value for key, or ErrKeyNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Put replaces the value for key atomically: the value is written to a temp
// file and renamed over the previous one, so a reader never observes a
// partial write.
func (s *Store) Put(key string, value []byte) error {
	path := s.path(key)
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, value, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

// Delete removes the value for key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// path maps a key to its backing file. Keys are fixed constants, but path
// separators are rejected anyway so a corrupt key can never escape baseDir.
func (s *Store) path(key string) string {
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.baseDir, key)
}
