// Package adapterstore resolves the wireless adapter a hotspot toggle
// operates on and persists the selection across runs, so unattended
// invocations keep toggling the same adapter the user picked once.
package adapterstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v2"

	hotspot "github.com/axondata/go-hotspot"
)

// Common errors returned by the store
var (
	// ErrNoSelection indicates no adapter has been persisted yet
	ErrNoSelection = errors.New("adapterstore: no adapter selected")

	// ErrNoAdapters indicates the enumerator returned no WiFi adapters
	ErrNoAdapters = errors.New("adapterstore: no wifi adapters enumerated")
)

// FileMode is the mode for the persisted selection file
const FileMode = 0o644

// Enumerator lists the host's WiFi adapters. Supplied by the caller;
// the store never talks to the platform itself.
type Enumerator interface {
	WifiAdapters() ([]hotspot.WifiAdapter, error)
}

// selection is the on-disk YAML shape of a persisted adapter choice
type selection struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	ChosenAt    time.Time `yaml:"chosenAt"`
}

// Store persists one adapter selection as a YAML file, written
// atomically so a crashed writer never leaves a torn selection behind.
type Store struct {
	// Path is the selection file location
	Path string
}

// New creates a Store for the selection file at path
func New(path string) *Store {
	return &Store{Path: path}
}

// Load reads the persisted selection. A missing file is ErrNoSelection.
func (s *Store) Load() (hotspot.WifiAdapter, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return hotspot.WifiAdapter{}, ErrNoSelection
		}
		return hotspot.WifiAdapter{}, fmt.Errorf("reading selection: %w", err)
	}

	var sel selection
	if err := yaml.Unmarshal(data, &sel); err != nil {
		return hotspot.WifiAdapter{}, fmt.Errorf("decoding selection: %w", err)
	}
	if sel.Name == "" && sel.Description == "" {
		return hotspot.WifiAdapter{}, ErrNoSelection
	}

	return hotspot.WifiAdapter{Name: sel.Name, Description: sel.Description}, nil
}

// Save writes the selection atomically, creating parent directories as
// needed.
func (s *Store) Save(adapter hotspot.WifiAdapter) error {
	data, err := yaml.Marshal(selection{
		Name:        adapter.Name,
		Description: adapter.Description,
		ChosenAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding selection: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating selection dir: %w", err)
		}
	}

	if err := renameio.WriteFile(s.Path, data, FileMode); err != nil {
		return fmt.Errorf("writing selection: %w", err)
	}
	return nil
}

// Resolve returns the adapter a toggle should operate on. A persisted
// selection wins unless preferred names a different adapter; otherwise
// the enumeration is consulted and the chosen adapter is persisted for
// next time. preferred matches an adapter name exactly or a description
// case-insensitively as a substring.
func (s *Store) Resolve(enum Enumerator, preferred string) (hotspot.WifiAdapter, error) {
	if saved, err := s.Load(); err == nil {
		if preferred == "" || matches(saved, preferred) {
			return saved, nil
		}
	} else if !errors.Is(err, ErrNoSelection) {
		return hotspot.WifiAdapter{}, err
	}

	adapters, err := enum.WifiAdapters()
	if err != nil {
		return hotspot.WifiAdapter{}, fmt.Errorf("enumerating adapters: %w", err)
	}
	if len(adapters) == 0 {
		return hotspot.WifiAdapter{}, ErrNoAdapters
	}

	chosen := adapters[0]
	if preferred != "" {
		found := false
		for _, a := range adapters {
			if matches(a, preferred) {
				chosen = a
				found = true
				break
			}
		}
		if !found {
			return hotspot.WifiAdapter{}, fmt.Errorf("adapterstore: no adapter matching %q", preferred)
		}
	}

	if err := s.Save(chosen); err != nil {
		return hotspot.WifiAdapter{}, err
	}
	return chosen, nil
}

func matches(a hotspot.WifiAdapter, preferred string) bool {
	if a.Name == preferred {
		return true
	}
	return a.Description != "" &&
		strings.Contains(strings.ToLower(a.Description), strings.ToLower(preferred))
}
