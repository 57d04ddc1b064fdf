package systems

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const settingsKey = "settings"

// SavedSettings represents the viewer preferences stored on disk. Combat
// state is never persisted.
type SavedSettings struct {
	ShowDebug      bool `json:"showDebug"`
	ShowRadii      bool `json:"showRadii"`
	TimeScaleIndex int  `json:"timeScaleIndex"`
	WindowScale    int  `json:"windowScale"`
}

// itemStore is the part of gdata.Manager the settings need.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SettingsStore reads and writes SavedSettings. A store without a backend
// loads nothing and saves nowhere.
type SettingsStore struct {
	items itemStore
}

// OpenSettings opens the per-user data directory for appName.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
		return &SettingsStore{}, fmt.Errorf("open settings: %w", err)
	}
	return &SettingsStore{items: m}, nil
}

// Load returns the saved settings, or nil when there are none.
func (s *SettingsStore) Load() (*SavedSettings, error) {
	if s == nil || s.items == nil {
		return nil, nil
	}

	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Msg("could not parse saved settings")
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

func (s *SettingsStore) Save(settings *SavedSettings) error {
	if s == nil || s.items == nil || settings == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
