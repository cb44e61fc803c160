package config

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const preferencesKey = "preferences"

// Preferences are the settings remembered from the previous session.
type Preferences struct {
	RenderMultiplier uint32 `json:"renderMultiplier"`
	AutomaticShadows bool   `json:"automaticShadows"`
	LastSaveName     string `json:"lastSaveName"`
}

// ItemStore is the key/value storage preferences live in.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes Preferences.
type Store struct {
	items ItemStore
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// OpenStore opens the per-user data directory for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("config: open store: %w", err)
	}
	return NewStore(m), nil
}

// Load returns the saved preferences, or ok=false when none were saved or
// they could not be read.
func (s *Store) Load() (Preferences, bool) {
	var p Preferences
	if s == nil {
		return p, false
	}
	data, err := s.items.LoadItem(preferencesKey)
	if err != nil {
		log.Printf("config: load preferences: %v", err)
		return p, false
	}
	if len(data) == 0 {
		return p, false
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("config: parse preferences: %v", err)
		return Preferences{}, false
	}
	return p, true
}

func (s *Store) Save(p Preferences) error {
	if s == nil {
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: encode preferences: %w", err)
	}
	if err := s.items.SaveItem(preferencesKey, data); err != nil {
		return fmt.Errorf("config: save preferences: %w", err)
	}
	return nil
}

// Apply overrides the configured start values with saved ones. A saved
// multiplier is only used when scaling is supported.
func (p Preferences) Apply(cfg *Config) {
	if cfg.SupportsScaling && (p.RenderMultiplier == 1 || p.RenderMultiplier == 2) {
		cfg.RenderMultiplier = p.RenderMultiplier
	}
}
