// Package settings persists player preferences between runs.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const bindingsItem = "bindings"

// Store is the key/value storage the settings live in.
// *gdata.Manager satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Settings reads and writes saved preferences
type Settings struct {
	store Store
}

// Open opens the per-user data directory for appName
func Open(appName string) (*Settings, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings storage: %w", err)
	}
	return New(m), nil
}

// New wraps an existing store
func New(store Store) *Settings {
	return &Settings{store: store}
}

// SavedBindings is the on-disk form of key bindings: action name to key names
type SavedBindings struct {
	Version  int                 `json:"version"`
	Bindings map[string][]string `json:"bindings"`
}

// LoadBindings returns the saved bindings, or nil when nothing was saved yet
func (s *Settings) LoadBindings() (map[string][]string, error) {
	data, err := s.store.LoadItem(bindingsItem)
	if err != nil {
		return nil, fmt.Errorf("failed to load bindings: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var saved SavedBindings
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("failed to parse bindings: %w", err)
	}
	return saved.Bindings, nil
}

// SaveBindings writes bindings, replacing any previous save
func (s *Settings) SaveBindings(bindings map[string][]string) error {
	data, err := json.Marshal(SavedBindings{Version: 1, Bindings: bindings})
	if err != nil {
		return fmt.Errorf("failed to serialize bindings: %w", err)
	}
	if err := s.store.SaveItem(bindingsItem, data); err != nil {
		return fmt.Errorf("failed to save bindings: %w", err)
	}
	return nil
}
